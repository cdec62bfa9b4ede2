package application

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/xviridev-art/Portofolio/internal/domain"
	"github.com/xviridev-art/Portofolio/internal/ports"
)

const serviceName = "portfolio-backend"

// CreateComment stores a visitor comment; new comments start visible with zero likes.
func (s *Service) CreateComment(ctx context.Context, req CreateCommentRequest) (CommentItem, error) {
	if err := domain.ValidateComment(req.Name, req.Message); err != nil {
		return CommentItem{}, err
	}
	comment, err := s.comments.Create(ctx, ports.CommentCreateParams{
		Name:      strings.TrimSpace(req.Name),
		Message:   strings.TrimSpace(req.Message),
		Photo:     strings.TrimSpace(req.Photo),
		CreatedAt: s.nowFn(),
	})
	if err != nil {
		return CommentItem{}, err
	}
	return toCommentItem(comment), nil
}

// ListComments returns comments newest first. Hidden comments are included
// only for moderation callers.
func (s *Service) ListComments(ctx context.Context, includeHidden bool) ([]CommentItem, error) {
	var (
		comments []domain.Comment
		err      error
	)
	if includeHidden {
		comments, err = s.comments.ListAll(ctx)
	} else {
		comments, err = s.comments.ListVisible(ctx)
	}
	if err != nil {
		return nil, err
	}
	items := make([]CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, toCommentItem(c))
	}
	return items, nil
}

// SetCommentVisibility toggles moderation state without deleting content.
func (s *Service) SetCommentVisibility(ctx context.Context, commentID uuid.UUID, visible bool) error {
	return s.comments.SetVisibility(ctx, commentID, visible, s.nowFn())
}

// DeleteComment removes a comment permanently.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	return s.comments.Delete(ctx, commentID)
}

// SubmitContactMessage stores a contact-form submission in the unread state.
func (s *Service) SubmitContactMessage(ctx context.Context, req ContactRequest) (ContactMessageItem, error) {
	if err := domain.ValidateContactMessage(req.Name, req.Email, req.Message); err != nil {
		return ContactMessageItem{}, err
	}
	msg, err := s.messages.Create(ctx, ports.ContactMessageCreateParams{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: s.nowFn(),
	})
	if err != nil {
		return ContactMessageItem{}, err
	}
	return toContactMessageItem(msg), nil
}

// ListContactMessages returns all submissions, newest first.
func (s *Service) ListContactMessages(ctx context.Context) ([]ContactMessageItem, error) {
	messages, err := s.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]ContactMessageItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, toContactMessageItem(m))
	}
	return items, nil
}

// MarkContactMessageRead transitions a submission out of the unread state.
func (s *Service) MarkContactMessageRead(ctx context.Context, messageID uuid.UUID) error {
	return s.messages.SetStatus(ctx, messageID, domain.MessageStatusRead, s.nowFn())
}

// DeleteContactMessage removes a submission permanently.
func (s *Service) DeleteContactMessage(ctx context.Context, messageID uuid.UUID) error {
	return s.messages.Delete(ctx, messageID)
}

// ListPortfolios returns showcased projects, newest first.
func (s *Service) ListPortfolios(ctx context.Context) ([]PortfolioItem, error) {
	portfolios, err := s.portfolios.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]PortfolioItem, 0, len(portfolios))
	for _, p := range portfolios {
		items = append(items, toPortfolioItem(p))
	}
	return items, nil
}

// ListCertificates returns credentials ordered by issue date, newest first.
func (s *Service) ListCertificates(ctx context.Context) ([]CertificateItem, error) {
	certificates, err := s.certificates.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]CertificateItem, 0, len(certificates))
	for _, c := range certificates {
		items = append(items, toCertificateItem(c))
	}
	return items, nil
}
