package services

import (
	"context"
	"errors"

	"legalassist_backend/internal/auth"
	"legalassist_backend/internal/logger"
	"legalassist_backend/internal/models"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/services/dto"
	"legalassist_backend/pkg/apperrors"
)

type AuthService struct {
	users  repositories.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         auth.RoleLegalProfessional,
		Status:       models.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status != models.UserStatusActive {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.AuthResponse, error) {
	claims, err := s.tokens.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != auth.TokenTypeRefresh {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{AccessToken: access, RefreshToken: refresh, User: user}, nil
}
