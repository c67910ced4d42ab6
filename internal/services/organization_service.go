package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"legalassist_backend/internal/logger"
	"legalassist_backend/internal/models"
	"legalassist_backend/internal/pkg/email"
	"legalassist_backend/internal/repositories"
	"legalassist_backend/internal/services/dto"
	"legalassist_backend/pkg/apperrors"
)

type OrganizationService struct {
	orgs  repositories.OrganizationRepository
	users repositories.UserRepository
	mail  email.Provider
}

func NewOrganizationService(orgs repositories.OrganizationRepository, users repositories.UserRepository, mail email.Provider) *OrganizationService {
	return &OrganizationService{orgs: orgs, users: users, mail: mail}
}

func (s *OrganizationService) Create(ctx context.Context, ownerID uuid.UUID, req dto.CreateOrganizationRequest) (*models.Organization, error) {
	org := &models.Organization{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// the owner is also a member
	if err := s.orgs.AddMember(ctx, org.ID, ownerID); err != nil {
		logger.CtxWarn(ctx, "could not attach owner as member", "org_id", org.ID, "error", err)
	}
	return org, nil
}

func (s *OrganizationService) Get(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	org, err := s.orgs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.OrganizationNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	return org, nil
}

// Invite adds an existing user to the organization and emails them about it.
// Only the owner may invite.
func (s *OrganizationService) Invite(ctx context.Context, callerID, orgID uuid.UUID, inviteeEmail string) error {
	org, err := s.Get(ctx, orgID)
	if err != nil {
		return err
	}
	if org.OwnerID != callerID {
		return apperrors.NewForbiddenError("Only the organization owner can invite members")
	}

	invitee, err := s.users.GetByEmail(ctx, inviteeEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.UserNotFound()
		}
		return apperrors.DatabaseError(err)
	}

	if err := s.orgs.AddMember(ctx, org.ID, invitee.ID); err != nil {
		return apperrors.DatabaseError(err)
	}

	owner, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}

	joinURL := fmt.Sprintf("/organizations/%s", org.ID)
	msg := email.OrganizationInvite(invitee.Email, org.Name, owner.FullName(), joinURL)
	if err := s.mail.Send(msg); err != nil {
		logger.CtxWarn(ctx, "invite email failed", "org_id", org.ID, "error", err)
	}

	logger.CtxInfo(ctx, "user invited to organization", "org_id", org.ID, "user_id", invitee.ID)
	return nil
}
