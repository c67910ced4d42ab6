package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalassist_backend/internal/models"
)

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]models.Client, int64, error)
}

type clientRepository struct {
	base *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{base: db}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return translateError(dbFromContext(ctx, r.base).Create(client).Error)
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := dbFromContext(ctx, r.base).Preload("Cases").First(&client, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &client, nil
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return translateError(dbFromContext(ctx, r.base).Save(client).Error)
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := dbFromContext(ctx, r.base).Delete(&models.Client{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context, limit, offset int) ([]models.Client, int64, error) {
	db := dbFromContext(ctx, r.base)

	var total int64
	if err := db.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []models.Client
	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&clients).Error
	return clients, total, err
}
