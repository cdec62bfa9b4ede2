package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/xviridev-art/Portofolio/internal/domain"
)

type loginAttemptRepository struct {
	db *gorm.DB
}

func (r *loginAttemptRepository) Insert(ctx context.Context, attempt domain.LoginAttempt) error {
	model := loginAttemptModel{
		Username:      attempt.Username,
		AttemptAt:     attempt.AttemptAt,
		Status:        attempt.Status,
		FailureReason: attempt.FailureReason,
		UserAgent:     attempt.UserAgent,
	}
	if attempt.IPAddress != "" {
		ip := attempt.IPAddress
		model.IPAddress = &ip
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *loginAttemptRepository) ListRecent(ctx context.Context, limit int) ([]domain.LoginAttempt, error) {
	var models []loginAttemptModel
	err := r.db.WithContext(ctx).
		Order("attempt_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	attempts := make([]domain.LoginAttempt, 0, len(models))
	for _, m := range models {
		attempts = append(attempts, toDomainLoginAttempt(m))
	}
	return attempts, nil
}
