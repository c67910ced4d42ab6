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

type ClientService struct {
	clients repositories.ClientRepository
}

func NewClientService(clients repositories.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

func (s *ClientService) Create(ctx context.Context, req dto.CreateClientRequest) (*models.Client, error) {
	clientType := req.ClientType
	if clientType == "" {
		clientType = models.ClientTypeIndividual
	}

	client := &models.Client{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		ClientType: clientType,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return client, nil
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.ClientNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*models.Client, error) {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.ClientType != nil {
		client.ClientType = *req.ClientType
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.ClientNotFound()
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *ClientService) List(ctx context.Context, page dto.Pagination) ([]models.Client, int64, error) {
	clients, total, err := s.clients.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return clients, total, nil
}
