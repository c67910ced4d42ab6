package services

import (
	"context"

	"github.com/google/uuid"

	"legalassist_backend/internal/models"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/services/dto"
	"legalassist_backend/pkg/apperrors"
)

type ActivityService struct {
	activities repositories.ActivityRepository
}

func NewActivityService(activities repositories.ActivityRepository) *ActivityService {
	return &ActivityService{activities: activities}
}

func (s *ActivityService) ListByUser(ctx context.Context, userID uuid.UUID, page dto.Pagination) ([]models.Activity, int64, error) {
	activities, total, err := s.activities.ListByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return activities, total, nil
}
