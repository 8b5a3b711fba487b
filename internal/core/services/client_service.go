package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// clientService provides business logic for the client directory.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

// CreateClient handles the creation of a new client.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	now := time.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		DisplayName: req.DisplayName,
		Company:     req.Company,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      domain.ClientActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client")
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "Client created", "client_id", client.ClientID)
	return &client, nil
}

// UpdateClient applies the provided partial update to a client.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}

	if req.DisplayName != nil {
		client.DisplayName = *req.DisplayName
	}
	if req.Company != nil {
		client.Company = *req.Company
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", "client_id", clientID)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// GetClient retrieves a client by ID.
func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// ListClients retrieves a page of clients.
func (s *clientService) ListClients(ctx context.Context, page, pageSize int) ([]domain.Client, int, error) {
	clients, total, err := s.clientRepo.ListClients(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, total, nil
}

// DeleteClient removes a client. The repository refuses the delete with
// ErrConflict while purchases, billing records or invoices reference it.
func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID string) error {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return fmt.Errorf("failed to find client for delete: %w", err)
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client", "client_id", clientID)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.LogInfo(ctx, "Client deleted", "client_id", clientID, "deleted_by", userID)
	return nil
}
