package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is a visitor comment shown on the public page.
// Hidden comments stay in storage so moderation is reversible.
type Comment struct {
	CommentID uuid.UUID
	Name      string
	Message   string
	Photo     string
	Likes     int
	IsVisible bool
	CreatedAt time.Time
}

// ContactMessage is a contact-form submission awaiting admin review.
type ContactMessage struct {
	MessageID uuid.UUID
	Name      string
	Email     string
	Message   string
	Status    string
	CreatedAt time.Time
}

// Contact message review states.
const (
	MessageStatusUnread = "unread"
	MessageStatusRead   = "read"
)

// Portfolio is a showcased project entry.
type Portfolio struct {
	PortfolioID uuid.UUID
	Title       string
	Description string
	ImageURL    string
	ProjectURL  string
	TechStack   string
	CreatedAt   time.Time
}

// Certificate is a displayed credential entry, ordered by issue date.
type Certificate struct {
	CertificateID uuid.UUID
	Title         string
	Issuer        string
	ImageURL      string
	IssueDate     time.Time
	CreatedAt     time.Time
}

// ValidateComment checks required comment fields before persistence.
func ValidateComment(name, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: name and message are required", ErrInvalidInput)
	}
	return nil
}

// ValidateContactMessage checks required fields and email shape.
func ValidateContactMessage(name, email, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: name, email, and message are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return nil
}
