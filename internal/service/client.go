package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/repo"
)

// ClientService implements business logic for CRM client operations.
type ClientService struct {
	repo repo.ClientRepo
}

// NewClientService constructs a ClientService backed by the provided ClientRepo.
func NewClientService(r repo.ClientRepo) *ClientService {
	return &ClientService{repo: r}
}

// Create validates and persists a new client.
func (s *ClientService) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	if err := validateClient(client); err != nil {
		return domain.Client{}, err
	}
	result, err := s.repo.Create(ctx, client)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single client by ID.
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of clients ordered by name and the total count.
func (s *ClientService) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Client, int64, error) {
	clients, total, err := s.repo.ListPaged(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ClientService.ListPaged: %w", err)
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, total, nil
}

// Update validates and updates an existing client.
func (s *ClientService) Update(ctx context.Context, client domain.Client) (domain.Client, error) {
	if err := validateClient(client); err != nil {
		return domain.Client{}, err
	}
	result, err := s.repo.Update(ctx, client)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a client by ID.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ClientService.Delete: %w", err)
	}
	return nil
}

// validateClient enforces business rules common to Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Email, if set, must parse as an address.
func validateClient(client domain.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if client.Email != "" {
		if _, err := mail.ParseAddress(client.Email); err != nil {
			return fmt.Errorf("%w: email is not a valid address", domain.ErrValidation)
		}
	}
	return nil
}
