package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalassist_backend/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
	List(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type userRepository struct {
	base *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{base: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translateError(dbFromContext(ctx, r.base).Create(user).Error)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := dbFromContext(ctx, r.base).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := dbFromContext(ctx, r.base).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return translateError(dbFromContext(ctx, r.base).Save(user).Error)
}

func (r *userRepository) UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error {
	res := dbFromContext(ctx, r.base).Model(&models.User{}).
		Where("id = ?", id).
		Update("phone", phone)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	res := dbFromContext(ctx, r.base).Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	db := dbFromContext(ctx, r.base)

	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.base).Model(&models.User{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}
