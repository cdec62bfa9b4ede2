package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xviridev-art/Portofolio/internal/domain"
)

type adminRepository struct {
	db *gorm.DB
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (domain.Admin, error) {
	var model adminModel
	// Exact, case-sensitive match; lookups never normalize the username.
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Admin{}, domain.ErrNotFound
		}
		return domain.Admin{}, err
	}
	return toDomainAdmin(model), nil
}

func (r *adminRepository) Upsert(ctx context.Context, username, passwordHash string, now time.Time) (domain.Admin, error) {
	model := adminModel{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Provisioning is idempotent: an existing admin keeps its stored hash so
	// restarts cannot silently rotate credentials.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&model).Error
	if err != nil {
		return domain.Admin{}, err
	}

	var stored adminModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&stored).Error; err != nil {
		return domain.Admin{}, err
	}
	return toDomainAdmin(stored), nil
}
