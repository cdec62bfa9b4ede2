package application

import (
	"time"

	"github.com/xviridev-art/Portofolio/internal/ports"
)

// Config carries the tunable auth and lockout policy values.
type Config struct {
	TokenTTL             time.Duration
	FailedLoginThreshold int
	LockoutDuration      time.Duration
	ServerLockoutEnabled bool
}

type Service struct {
	cfg           Config
	admins        ports.AdminRepository
	loginAttempts ports.LoginAttemptRepository
	comments      ports.CommentRepository
	messages      ports.ContactMessageRepository
	portfolios    ports.PortfolioRepository
	certificates  ports.CertificateRepository
	lockouts      ports.LockoutStore
	hasher        ports.PasswordHasher
	tokenSigner   ports.TokenSigner
	nowFn         func() time.Time
}

type Dependencies struct {
	Config        Config
	Admins        ports.AdminRepository
	LoginAttempts ports.LoginAttemptRepository
	Comments      ports.CommentRepository
	Messages      ports.ContactMessageRepository
	Portfolios    ports.PortfolioRepository
	Certificates  ports.CertificateRepository
	Lockouts      ports.LockoutStore
	Hasher        ports.PasswordHasher
	TokenSigner   ports.TokenSigner
}

func NewService(deps Dependencies) *Service {
	return &Service{
		cfg:           deps.Config,
		admins:        deps.Admins,
		loginAttempts: deps.LoginAttempts,
		comments:      deps.Comments,
		messages:      deps.Messages,
		portfolios:    deps.Portfolios,
		certificates:  deps.Certificates,
		lockouts:      deps.Lockouts,
		hasher:        deps.Hasher,
		tokenSigner:   deps.TokenSigner,
		nowFn:         func() time.Time { return time.Now().UTC() },
	}
}
