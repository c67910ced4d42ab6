package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"legalassist_backend/internal/auth"
	"legalassist_backend/internal/logger"
	"legalassist_backend/internal/models"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/services/dto"
	"legalassist_backend/pkg/apperrors"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.UserNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

func (s *UserService) UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error {
	if err := s.users.UpdatePhone(ctx, id, phone); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.UserNotFound()
		}
		return apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "contact phone updated", "user_id", id)
	return nil
}

func (s *UserService) List(ctx context.Context, page dto.Pagination) ([]models.User, int64, error) {
	users, total, err := s.users.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return users, total, nil
}

// EnsureAdmin creates the configured admin account when no admin exists.
// Called once at startup.
func (s *UserService) EnsureAdmin(ctx context.Context, adminEmail, adminPassword string) error {
	count, err := s.users.CountByRole(ctx, auth.RoleAdmin)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	admin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		FirstName:    "Admin",
		Role:         auth.RoleAdmin,
		Status:       models.UserStatusActive,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "seeded first admin", "email", adminEmail)
	return nil
}

func (s *UserService) ChangeRole(ctx context.Context, id uuid.UUID, role string) error {
	if !auth.IsValidRole(role) {
		return apperrors.NewBadRequestError("Unknown role")
	}
	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.UserNotFound()
		}
		return apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "user role changed", "user_id", id, "role", role)
	return nil
}
