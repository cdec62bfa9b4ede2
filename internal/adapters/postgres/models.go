package postgres

import (
	"time"

	"github.com/google/uuid"
)

type adminModel struct {
	AdminID      uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string    `gorm:"column:username"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminModel) TableName() string { return "admins" }

type loginAttemptModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Username      string    `gorm:"column:username"`
	AttemptAt     time.Time `gorm:"column:attempt_at"`
	IPAddress     *string   `gorm:"column:ip_address"`
	Status        string    `gorm:"column:status"`
	FailureReason string    `gorm:"column:failure_reason"`
	UserAgent     string    `gorm:"column:user_agent"`
}

func (loginAttemptModel) TableName() string { return "login_attempts" }

type commentModel struct {
	CommentID uuid.UUID `gorm:"column:comment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name"`
	Message   string    `gorm:"column:message"`
	Photo     *string   `gorm:"column:photo"`
	Likes     int       `gorm:"column:likes"`
	IsVisible bool      `gorm:"column:is_visible"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (commentModel) TableName() string { return "comments" }

type contactMessageModel struct {
	MessageID uuid.UUID `gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Message   string    `gorm:"column:message"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (contactMessageModel) TableName() string { return "contact_messages" }

type portfolioModel struct {
	PortfolioID uuid.UUID `gorm:"column:portfolio_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	ImageURL    string    `gorm:"column:image_url"`
	ProjectURL  string    `gorm:"column:project_url"`
	TechStack   string    `gorm:"column:tech_stack"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (portfolioModel) TableName() string { return "portfolios" }

type certificateModel struct {
	CertificateID uuid.UUID `gorm:"column:certificate_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title         string    `gorm:"column:title"`
	Issuer        string    `gorm:"column:issuer"`
	ImageURL      string    `gorm:"column:image_url"`
	IssueDate     time.Time `gorm:"column:issue_date"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (certificateModel) TableName() string { return "certificates" }
