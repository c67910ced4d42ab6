package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"legalassist_backend/internal/logger"
	"legalassist_backend/internal/models"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/services/dto"
	"legalassist_backend/pkg/apperrors"
)

type CaseService struct {
	cases         repositories.CaseRepository
	clients       repositories.ClientRepository
	users         repositories.UserRepository
	activities    repositories.ActivityRepository
	notifications *NotificationService
}

func NewCaseService(
	cases repositories.CaseRepository,
	clients repositories.ClientRepository,
	users repositories.UserRepository,
	activities repositories.ActivityRepository,
	notifications *NotificationService,
) *CaseService {
	return &CaseService{
		cases:         cases,
		clients:       clients,
		users:         users,
		activities:    activities,
		notifications: notifications,
	}
}

func (s *CaseService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateCaseRequest) (*models.Case, error) {
	if _, err := s.cases.GetByNumber(ctx, req.CaseNumber); err == nil {
		return nil, apperrors.CaseNumberTaken(req.CaseNumber)
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	kase := &models.Case{
		CaseNumber:   req.CaseNumber,
		Title:        req.Title,
		Description:  req.Description,
		CourtLevel:   req.CourtLevel,
		CaseType:     req.CaseType,
		PracticeArea: req.PracticeArea,
		FilingDate:   req.FilingDate,
		Status:       models.CaseStatusOpen,
		CourtStage:   req.CourtStage,
		UserID:       userID,
	}
	if err := s.cases.Create(ctx, kase); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.audit(ctx, userID, kase, models.ActivityTypeCaseCreated,
		fmt.Sprintf("Created case #%s", kase.CaseNumber))
	return kase, nil
}

// GetOwned loads a case and verifies the caller owns it.
func (s *CaseService) GetOwned(ctx context.Context, userID, caseID uuid.UUID) (*models.Case, error) {
	kase, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.CaseNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	if kase.UserID != userID {
		return nil, apperrors.CaseAccessDenied()
	}
	return kase, nil
}

func (s *CaseService) Update(ctx context.Context, userID, caseID uuid.UUID, req dto.UpdateCaseRequest) (*models.Case, error) {
	kase, err := s.GetOwned(ctx, userID, caseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		kase.Title = *req.Title
	}
	if req.Description != nil {
		kase.Description = *req.Description
	}
	if req.CourtLevel != nil {
		kase.CourtLevel = *req.CourtLevel
	}
	if req.CaseType != nil {
		kase.CaseType = *req.CaseType
	}
	if req.PracticeArea != nil {
		kase.PracticeArea = *req.PracticeArea
	}
	if req.CourtStage != nil {
		kase.CourtStage = *req.CourtStage
	}
	if req.NextCourtDate != nil {
		kase.NextCourtDate = req.NextCourtDate
	}
	if req.Outcome != nil {
		kase.Outcome = *req.Outcome
	}

	if err := s.cases.Update(ctx, kase); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	s.audit(ctx, userID, kase, models.ActivityTypeCaseUpdated,
		fmt.Sprintf("Updated case #%s", kase.CaseNumber))
	return kase, nil
}

// ChangeStatus transitions the case and notifies the owner by SMS. The
// notification outcome never fails the transition.
func (s *CaseService) ChangeStatus(ctx context.Context, userID, caseID uuid.UUID, status string) (*models.Case, error) {
	if !models.IsValidCaseStatus(status) {
		return nil, apperrors.InvalidCaseStatus(status)
	}

	kase, err := s.GetOwned(ctx, userID, caseID)
	if err != nil {
		return nil, err
	}

	kase.Status = status
	if status == models.CaseStatusClosed && kase.ClosingDate == nil {
		now := time.Now().UTC()
		kase.ClosingDate = &now
	}

	if err := s.cases.Update(ctx, kase); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.audit(ctx, userID, kase, models.ActivityTypeStatusChange,
		fmt.Sprintf("Changed status of case #%s to %s", kase.CaseNumber, status))

	if owner, err := s.users.GetByID(ctx, kase.UserID); err == nil {
		result := s.notifications.SendCaseStatusUpdate(ctx, owner, kase, status)
		if !result.Success {
			logger.CtxWarn(ctx, "status change notification failed",
				"case_id", kase.ID, "error", result.Error)
		}
	}

	return kase, nil
}

func (s *CaseService) Delete(ctx context.Context, userID, caseID uuid.UUID) error {
	if _, err := s.GetOwned(ctx, userID, caseID); err != nil {
		return err
	}
	if err := s.cases.Delete(ctx, caseID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *CaseService) List(ctx context.Context, userID uuid.UUID, req dto.ListCasesRequest) ([]models.Case, int64, error) {
	criteria := repositories.CaseCriteria{
		UserID:       &userID,
		Status:       req.Status,
		CaseType:     req.CaseType,
		PracticeArea: req.PracticeArea,
		CourtLevel:   req.CourtLevel,
		Search:       req.Search,
		Limit:        req.Limit(),
		Offset:       req.Offset(),
	}
	cases, total, err := s.cases.List(ctx, criteria)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return cases, total, nil
}

func (s *CaseService) AttachClient(ctx context.Context, userID, caseID, clientID uuid.UUID) error {
	kase, err := s.GetOwned(ctx, userID, caseID)
	if err != nil {
		return err
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.ClientNotFound()
		}
		return apperrors.DatabaseError(err)
	}
	if err := s.cases.AttachClient(ctx, kase, client); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *CaseService) DetachClient(ctx context.Context, userID, caseID, clientID uuid.UUID) error {
	kase, err := s.GetOwned(ctx, userID, caseID)
	if err != nil {
		return err
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.ClientNotFound()
		}
		return apperrors.DatabaseError(err)
	}
	if err := s.cases.DetachClient(ctx, kase, client); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *CaseService) AddMilestone(ctx context.Context, userID, caseID uuid.UUID, req dto.CreateMilestoneRequest) (*models.CaseMilestone, error) {
	if _, err := s.GetOwned(ctx, userID, caseID); err != nil {
		return nil, err
	}

	milestone := &models.CaseMilestone{
		CaseID:      caseID,
		Title:       req.Title,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
		Status:      models.MilestoneStatusPending,
		DueDate:     req.DueDate,
	}
	if err := s.cases.CreateMilestone(ctx, milestone); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return milestone, nil
}

func (s *CaseService) ListMilestones(ctx context.Context, userID, caseID uuid.UUID) ([]models.CaseMilestone, error) {
	if _, err := s.GetOwned(ctx, userID, caseID); err != nil {
		return nil, err
	}
	milestones, err := s.cases.ListMilestones(ctx, caseID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return milestones, nil
}

func (s *CaseService) audit(ctx context.Context, userID uuid.UUID, kase *models.Case, activityType, description string) {
	caseID := kase.ID
	err := s.activities.Create(ctx, &models.Activity{
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		CaseID:       &caseID,
	})
	if err != nil {
		logger.CtxWarn(ctx, "failed to record case activity", "case_id", kase.ID, "error", err)
	}
}
