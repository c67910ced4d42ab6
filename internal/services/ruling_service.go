package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"legalassist_backend/internal/models"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/services/dto"
	"legalassist_backend/pkg/apperrors"
)

type RulingService struct {
	rulings repositories.RulingRepository
}

func NewRulingService(rulings repositories.RulingRepository) *RulingService {
	return &RulingService{rulings: rulings}
}

func (s *RulingService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateRulingRequest) (*models.Ruling, error) {
	ruling := &models.Ruling{
		CaseNumber:   req.CaseNumber,
		Title:        req.Title,
		Court:        req.Court,
		DateOfRuling: req.DateOfRuling,
		Citation:     req.Citation,
		URL:          req.URL,
		Summary:      req.Summary,
		FullText:     req.FullText,
		Outcome:      req.Outcome,
		Category:     req.Category,
		IsLandmark:   req.IsLandmark,
		UserID:       &userID,
	}
	if err := s.rulings.Create(ctx, ruling); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return ruling, nil
}

func (s *RulingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Ruling, error) {
	ruling, err := s.rulings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.RulingNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	return ruling, nil
}

func (s *RulingService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRulingRequest) (*models.Ruling, error) {
	ruling, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		ruling.Title = *req.Title
	}
	if req.Court != nil {
		ruling.Court = *req.Court
	}
	if req.DateOfRuling != nil {
		ruling.DateOfRuling = req.DateOfRuling
	}
	if req.Citation != nil {
		ruling.Citation = *req.Citation
	}
	if req.Summary != nil {
		ruling.Summary = *req.Summary
	}
	if req.Outcome != nil {
		ruling.Outcome = *req.Outcome
	}
	if req.Category != nil {
		ruling.Category = *req.Category
	}
	if req.ImportanceScore != nil {
		ruling.ImportanceScore = *req.ImportanceScore
	}
	if req.IsLandmark != nil {
		ruling.IsLandmark = *req.IsLandmark
	}

	if err := s.rulings.Update(ctx, ruling); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return ruling, nil
}

func (s *RulingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rulings.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.RulingNotFound()
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *RulingService) List(ctx context.Context, req dto.ListRulingsRequest) ([]models.Ruling, int64, error) {
	criteria := repositories.RulingCriteria{
		Court:    req.Court,
		Category: req.Category,
		Landmark: req.Landmark,
		Search:   req.Search,
		Limit:    req.Limit(),
		Offset:   req.Offset(),
	}
	rulings, total, err := s.rulings.List(ctx, criteria)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return rulings, total, nil
}

func (s *RulingService) Annotate(ctx context.Context, userID, rulingID uuid.UUID, text string) (*models.RulingAnnotation, error) {
	if _, err := s.GetByID(ctx, rulingID); err != nil {
		return nil, err
	}

	annotation := &models.RulingAnnotation{
		RulingID: rulingID,
		UserID:   userID,
		Text:     text,
	}
	if err := s.rulings.CreateAnnotation(ctx, annotation); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return annotation, nil
}

func (s *RulingService) ListAnnotations(ctx context.Context, rulingID uuid.UUID) ([]models.RulingAnnotation, error) {
	if _, err := s.GetByID(ctx, rulingID); err != nil {
		return nil, err
	}
	annotations, err := s.rulings.ListAnnotations(ctx, rulingID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return annotations, nil
}

func (s *RulingService) ListJudges(ctx context.Context) ([]models.Judge, error) {
	judges, err := s.rulings.ListJudges(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return judges, nil
}

func (s *RulingService) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.rulings.ListTags(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return tags, nil
}
