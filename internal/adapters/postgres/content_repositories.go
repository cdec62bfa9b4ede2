package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xviridev-art/Portofolio/internal/domain"
	"github.com/xviridev-art/Portofolio/internal/ports"
)

type commentRepository struct {
	db *gorm.DB
}

func (r *commentRepository) Create(ctx context.Context, params ports.CommentCreateParams) (domain.Comment, error) {
	model := commentModel{
		Name:      params.Name,
		Message:   params.Message,
		Likes:     0,
		IsVisible: true,
		CreatedAt: params.CreatedAt,
		UpdatedAt: params.CreatedAt,
	}
	if params.Photo != "" {
		photo := params.Photo
		model.Photo = &photo
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Comment{}, err
	}
	return toDomainComment(model), nil
}

func (r *commentRepository) ListVisible(ctx context.Context) ([]domain.Comment, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("is_visible = ?", true))
}

func (r *commentRepository) ListAll(ctx context.Context) ([]domain.Comment, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *commentRepository) list(_ context.Context, tx *gorm.DB) ([]domain.Comment, error) {
	var models []commentModel
	if err := tx.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	comments := make([]domain.Comment, 0, len(models))
	for _, m := range models {
		comments = append(comments, toDomainComment(m))
	}
	return comments, nil
}

func (r *commentRepository) SetVisibility(ctx context.Context, commentID uuid.UUID, visible bool, updatedAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&commentModel{}).
		Where("comment_id = ?", commentID).
		Updates(map[string]any{"is_visible": visible, "updated_at": updatedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("comment_id = ?", commentID).Delete(&commentModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type contactMessageRepository struct {
	db *gorm.DB
}

func (r *contactMessageRepository) Create(ctx context.Context, params ports.ContactMessageCreateParams) (domain.ContactMessage, error) {
	model := contactMessageModel{
		Name:      params.Name,
		Email:     params.Email,
		Message:   params.Message,
		Status:    domain.MessageStatusUnread,
		CreatedAt: params.CreatedAt,
		UpdatedAt: params.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.ContactMessage{}, err
	}
	return toDomainContactMessage(model), nil
}

func (r *contactMessageRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var models []contactMessageModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, err
	}
	messages := make([]domain.ContactMessage, 0, len(models))
	for _, m := range models {
		messages = append(messages, toDomainContactMessage(m))
	}
	return messages, nil
}

func (r *contactMessageRepository) SetStatus(ctx context.Context, messageID uuid.UUID, status string, updatedAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&contactMessageModel{}).
		Where("message_id = ?", messageID).
		Updates(map[string]any{"status": status, "updated_at": updatedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactMessageRepository) Delete(ctx context.Context, messageID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("message_id = ?", messageID).Delete(&contactMessageModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type portfolioRepository struct {
	db *gorm.DB
}

func (r *portfolioRepository) List(ctx context.Context) ([]domain.Portfolio, error) {
	var models []portfolioModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, err
	}
	portfolios := make([]domain.Portfolio, 0, len(models))
	for _, m := range models {
		portfolios = append(portfolios, toDomainPortfolio(m))
	}
	return portfolios, nil
}

type certificateRepository struct {
	db *gorm.DB
}

func (r *certificateRepository) List(ctx context.Context) ([]domain.Certificate, error) {
	var models []certificateModel
	err := r.db.WithContext(ctx).Order("issue_date DESC").Find(&models).Error
	if err != nil {
		return nil, err
	}
	certificates := make([]domain.Certificate, 0, len(models))
	for _, m := range models {
		certificates = append(certificates, toDomainCertificate(m))
	}
	return certificates, nil
}
