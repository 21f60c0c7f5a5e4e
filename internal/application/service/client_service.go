package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the input for creating a client
type CreateClientInput struct {
	UserID        uuid.UUID
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	GSTIN         *string
	Address       *string
	Notes         *string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	existing, err := s.clientRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A client with this name already exists")
	}

	client := &entity.Client{
		UserID:        input.UserID,
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		GSTIN:         input.GSTIN,
		Address:       input.Address,
		Notes:         input.Notes,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients lists clients with search and pagination
func (s *ClientService) ListClients(ctx context.Context, params *pagination.Params, search string) (*pagination.Result[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Page, params.PerPage, total)
	return pagination.NewResult(clients, pag), nil
}

// UpdateClientInput represents the input for updating a client
type UpdateClientInput struct {
	ID            uuid.UUID
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	GSTIN         *string
	Address       *string
	Notes         *string
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.Name != client.Name {
		existing, err := s.clientRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != client.ID {
			return nil, apperror.NewConflictError("A client with this name already exists")
		}
	}

	client.Name = input.Name
	client.ContactPerson = input.ContactPerson
	client.Email = input.Email
	client.Phone = input.Phone
	client.GSTIN = input.GSTIN
	client.Address = input.Address
	client.Notes = input.Notes

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}

	return s.clientRepo.Delete(ctx, id)
}
