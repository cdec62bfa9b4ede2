package postgres

import (
	"gorm.io/gorm"

	"github.com/xviridev-art/Portofolio/internal/ports"
)

// Repositories bundles all Postgres-backed repository implementations.
type Repositories struct {
	Admins        ports.AdminRepository
	LoginAttempts ports.LoginAttemptRepository
	Comments      ports.CommentRepository
	Messages      ports.ContactMessageRepository
	Portfolios    ports.PortfolioRepository
	Certificates  ports.CertificateRepository
}

// NewRepositories wires repositories onto one shared connection pool.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Admins:        &adminRepository{db: db},
		LoginAttempts: &loginAttemptRepository{db: db},
		Comments:      &commentRepository{db: db},
		Messages:      &contactMessageRepository{db: db},
		Portfolios:    &portfolioRepository{db: db},
		Certificates:  &certificateRepository{db: db},
	}
}
