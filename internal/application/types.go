package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/xviridev-art/Portofolio/internal/domain"
)

type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// AdminView is the minimal public identity returned to authenticated callers.
type AdminView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role,omitempty"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	Admin AdminView `json:"user"`
}

type CreateCommentRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Photo   string `json:"photo"`
}

type CommentItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Photo     string    `json:"photo,omitempty"`
	Likes     int       `json:"likes"`
	IsVisible bool      `json:"isVisible"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactMessageItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type PortfolioItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	ProjectURL  string    `json:"projectUrl,omitempty"`
	TechStack   string    `json:"techStack,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CertificateItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Issuer    string    `json:"issuer"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	IssueDate time.Time `json:"issueDate"`
}

func toCommentItem(c domain.Comment) CommentItem {
	return CommentItem{
		ID:        c.CommentID,
		Name:      c.Name,
		Message:   c.Message,
		Photo:     c.Photo,
		Likes:     c.Likes,
		IsVisible: c.IsVisible,
		CreatedAt: c.CreatedAt,
	}
}

func toContactMessageItem(m domain.ContactMessage) ContactMessageItem {
	return ContactMessageItem{
		ID:        m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func toPortfolioItem(p domain.Portfolio) PortfolioItem {
	return PortfolioItem{
		ID:          p.PortfolioID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		ProjectURL:  p.ProjectURL,
		TechStack:   p.TechStack,
		CreatedAt:   p.CreatedAt,
	}
}

func toCertificateItem(c domain.Certificate) CertificateItem {
	return CertificateItem{
		ID:        c.CertificateID,
		Title:     c.Title,
		Issuer:    c.Issuer,
		ImageURL:  c.ImageURL,
		IssueDate: c.IssueDate,
	}
}
