package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/xviridev-art/Portofolio/internal/domain"
)

// AdminRepository defines read/seed access to the single admin identity.
// Upsert exists only for startup provisioning; login paths never write.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (domain.Admin, error)
	Upsert(ctx context.Context, username, passwordHash string, now time.Time) (domain.Admin, error)
}

// LoginAttemptRepository stores login outcomes used for audit.
type LoginAttemptRepository interface {
	Insert(ctx context.Context, attempt domain.LoginAttempt) error
	ListRecent(ctx context.Context, limit int) ([]domain.LoginAttempt, error)
}

// CommentCreateParams captures visitor-supplied comment inputs.
type CommentCreateParams struct {
	Name      string
	Message   string
	Photo     string
	CreatedAt time.Time
}

// CommentRepository manages visitor comment persistence and moderation state.
type CommentRepository interface {
	Create(ctx context.Context, params CommentCreateParams) (domain.Comment, error)
	ListVisible(ctx context.Context) ([]domain.Comment, error)
	ListAll(ctx context.Context) ([]domain.Comment, error)
	SetVisibility(ctx context.Context, commentID uuid.UUID, visible bool, updatedAt time.Time) error
	Delete(ctx context.Context, commentID uuid.UUID) error
}

// ContactMessageCreateParams captures contact-form inputs.
type ContactMessageCreateParams struct {
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// ContactMessageRepository manages contact-form submissions.
type ContactMessageRepository interface {
	Create(ctx context.Context, params ContactMessageCreateParams) (domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	SetStatus(ctx context.Context, messageID uuid.UUID, status string, updatedAt time.Time) error
	Delete(ctx context.Context, messageID uuid.UUID) error
}

// PortfolioRepository lists showcased projects, newest first.
type PortfolioRepository interface {
	List(ctx context.Context) ([]domain.Portfolio, error)
}

// CertificateRepository lists credentials ordered by issue date.
type CertificateRepository interface {
	List(ctx context.Context) ([]domain.Certificate, error)
}
