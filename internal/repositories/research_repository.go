package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalassist_backend/internal/models"
)

type ResearchRepository interface {
	Create(ctx context.Context, research *models.LegalResearch) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LegalResearch, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.LegalResearch, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type researchRepository struct {
	base *gorm.DB
}

func NewResearchRepository(db *gorm.DB) ResearchRepository {
	return &researchRepository{base: db}
}

func (r *researchRepository) Create(ctx context.Context, research *models.LegalResearch) error {
	return translateError(dbFromContext(ctx, r.base).Create(research).Error)
}

func (r *researchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LegalResearch, error) {
	var research models.LegalResearch
	err := dbFromContext(ctx, r.base).First(&research, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &research, nil
}

func (r *researchRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.LegalResearch, int64, error) {
	db := dbFromContext(ctx, r.base).Model(&models.LegalResearch{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.LegalResearch
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

func (r *researchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := dbFromContext(ctx, r.base).Delete(&models.LegalResearch{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
