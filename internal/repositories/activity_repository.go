package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalassist_backend/internal/models"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Activity, int64, error)
}

type activityRepository struct {
	base *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{base: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return translateError(dbFromContext(ctx, r.base).Create(activity).Error)
}

func (r *activityRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Activity, int64, error) {
	db := dbFromContext(ctx, r.base).Model(&models.Activity{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activities []models.Activity
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&activities).Error
	return activities, total, err
}
