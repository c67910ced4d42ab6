package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalassist_backend/internal/models"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	AddMember(ctx context.Context, orgID, userID uuid.UUID) error
}

type organizationRepository struct {
	base *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{base: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *models.Organization) error {
	return translateError(dbFromContext(ctx, r.base).Create(org).Error)
}

func (r *organizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := dbFromContext(ctx, r.base).Preload("Members").First(&org, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &org, nil
}

func (r *organizationRepository) AddMember(ctx context.Context, orgID, userID uuid.UUID) error {
	res := dbFromContext(ctx, r.base).Model(&models.User{}).
		Where("id = ?", userID).
		Update("organization_id", orgID)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
