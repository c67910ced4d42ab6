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

type ResearchService struct {
	research repositories.ResearchRepository
	cases    repositories.CaseRepository
}

func NewResearchService(research repositories.ResearchRepository, cases repositories.CaseRepository) *ResearchService {
	return &ResearchService{research: research, cases: cases}
}

func (s *ResearchService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateResearchRequest) (*models.LegalResearch, error) {
	if req.CaseID != nil {
		kase, err := s.cases.GetByID(ctx, *req.CaseID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return nil, apperrors.CaseNotFound()
			}
			return nil, apperrors.DatabaseError(err)
		}
		if kase.UserID != userID {
			return nil, apperrors.CaseAccessDenied()
		}
	}

	record := &models.LegalResearch{
		Title:   req.Title,
		Query:   req.Query,
		Results: req.Results,
		Source:  req.Source,
		UserID:  userID,
		CaseID:  req.CaseID,
	}
	if err := s.research.Create(ctx, record); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return record, nil
}

func (s *ResearchService) GetOwned(ctx context.Context, userID, id uuid.UUID) (*models.LegalResearch, error) {
	record, err := s.research.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.ResearchNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	if record.UserID != userID {
		return nil, apperrors.NewForbiddenError("You do not have access to this research record")
	}
	return record, nil
}

func (s *ResearchService) List(ctx context.Context, userID uuid.UUID, page dto.Pagination) ([]models.LegalResearch, int64, error) {
	records, total, err := s.research.ListByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return records, total, nil
}

func (s *ResearchService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.research.Delete(ctx, id); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}
