package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/config"
	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
	"github.com/udyogbooks/backoffice-api/pkg/export"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
	"github.com/udyogbooks/backoffice-api/pkg/utils"
)

// ChallanService handles delivery challan operations
type ChallanService struct {
	challanRepo     repository.ChallanRepository
	challanItemRepo repository.ChallanItemRepository
	ticketRepo      repository.TicketRepository
	clientRepo      repository.ClientRepository
	business        config.BusinessConfig
}

// NewChallanService creates a new challan service
func NewChallanService(
	challanRepo repository.ChallanRepository,
	challanItemRepo repository.ChallanItemRepository,
	ticketRepo repository.TicketRepository,
	clientRepo repository.ClientRepository,
	business config.BusinessConfig,
) *ChallanService {
	return &ChallanService{
		challanRepo:     challanRepo,
		challanItemRepo: challanItemRepo,
		ticketRepo:      ticketRepo,
		clientRepo:      clientRepo,
		business:        business,
	}
}

// ChallanLineInput is one goods line of a challan. Challans track
// movement only, so there are no prices.
type ChallanLineInput struct {
	Description string
	HSNSACCode  string
	Quantity    float64
}

// CreateChallanInput represents the input for creating a challan
type CreateChallanInput struct {
	UserID      uuid.UUID
	ClientID    *uuid.UUID
	TicketID    *uuid.UUID
	Date        time.Time
	Destination *string
	VehicleNo   *string
	Notes       *string
	Goods       []ChallanLineInput
}

// CreateChallan creates a new delivery challan
func (s *ChallanService) CreateChallan(ctx context.Context, input *CreateChallanInput) (*entity.Challan, error) {
	if err := validateChallanGoods(input.Goods); err != nil {
		return nil, err
	}

	var clientName string
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client != nil {
			clientName = client.Name
		}
	}

	var totalQuantity float64
	for _, g := range input.Goods {
		totalQuantity += g.Quantity
	}

	var challan *entity.Challan
	for attempt := 1; ; attempt++ {
		nextNum, err := s.challanRepo.GetNextReferenceNumber(ctx)
		if err != nil {
			return nil, err
		}

		challan = &entity.Challan{
			UserID:        input.UserID,
			ClientID:      input.ClientID,
			TicketID:      input.TicketID,
			Date:          input.Date,
			Reference:     utils.FormatReference("DC", nextNum),
			ClientName:    clientName,
			Destination:   input.Destination,
			VehicleNo:     input.VehicleNo,
			TotalQuantity: totalQuantity,
			Status:        enum.ChallanStatusPending,
			Notes:         input.Notes,
		}

		err = s.challanRepo.Create(ctx, challan)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicateReference) && attempt < maxReferenceAttempts {
			continue
		}
		return nil, err
	}

	if err := s.challanItemRepo.CreateBatch(ctx, goodsToChallanItems(challan.ID, input.Goods)); err != nil {
		return nil, err
	}

	return s.challanRepo.GetWithGoods(ctx, challan.ID)
}

// CreateChallanFromTicket raises a challan carrying over a ticket's
// goods table, dropping the prices.
func (s *ChallanService) CreateChallanFromTicket(ctx context.Context, userID, ticketID uuid.UUID, date time.Time, destination, vehicleNo *string) (*entity.Challan, error) {
	ticket, err := s.ticketRepo.GetWithGoods(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}

	goods := make([]ChallanLineInput, 0, len(ticket.Goods))
	for _, g := range ticket.Goods {
		goods = append(goods, ChallanLineInput{
			Description: g.Description,
			HSNSACCode:  g.HSNSACCode,
			Quantity:    g.Quantity,
		})
	}

	return s.CreateChallan(ctx, &CreateChallanInput{
		UserID:      userID,
		ClientID:    ticket.ClientID,
		TicketID:    &ticket.ID,
		Date:        date,
		Destination: destination,
		VehicleNo:   vehicleNo,
		Goods:       goods,
	})
}

// GetChallan retrieves a challan by ID
func (s *ChallanService) GetChallan(ctx context.Context, id uuid.UUID) (*entity.Challan, error) {
	challan, err := s.challanRepo.GetWithGoods(ctx, id)
	if err != nil {
		return nil, err
	}
	if challan == nil {
		return nil, apperror.NewNotFoundError("Challan")
	}
	return challan, nil
}

// ListChallansInput represents the input for listing challans
type ListChallansInput struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.ChallanStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListChallans lists challans with filtering
func (s *ChallanService) ListChallans(ctx context.Context, input *ListChallansInput) (*pagination.Result[entity.Challan], error) {
	params := &repository.ChallanFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	challans, total, err := s.challanRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewResult(challans, pag), nil
}

// UpdateChallanInput represents the input for updating a challan
type UpdateChallanInput struct {
	ID          uuid.UUID
	ClientID    *uuid.UUID
	Date        time.Time
	Destination *string
	VehicleNo   *string
	Notes       *string
	Goods       []ChallanLineInput
}

// UpdateChallan updates a pending challan
func (s *ChallanService) UpdateChallan(ctx context.Context, input *UpdateChallanInput) (*entity.Challan, error) {
	challan, err := s.challanRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if challan == nil {
		return nil, apperror.NewNotFoundError("Challan")
	}

	if challan.Status != enum.ChallanStatusPending {
		return nil, apperror.NewConflictError("Only pending challans can be edited")
	}

	if err := validateChallanGoods(input.Goods); err != nil {
		return nil, err
	}

	var clientName string
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client != nil {
			clientName = client.Name
		}
	}

	var totalQuantity float64
	for _, g := range input.Goods {
		totalQuantity += g.Quantity
	}

	challan.ClientID = input.ClientID
	challan.Date = input.Date
	challan.ClientName = clientName
	challan.Destination = input.Destination
	challan.VehicleNo = input.VehicleNo
	challan.TotalQuantity = totalQuantity
	challan.Notes = input.Notes

	if err := s.challanRepo.Update(ctx, challan); err != nil {
		return nil, err
	}

	if err := s.challanItemRepo.DeleteByChallanID(ctx, challan.ID); err != nil {
		return nil, err
	}
	if err := s.challanItemRepo.CreateBatch(ctx, goodsToChallanItems(challan.ID, input.Goods)); err != nil {
		return nil, err
	}

	return s.challanRepo.GetWithGoods(ctx, challan.ID)
}

// DeleteChallan deletes a challan
func (s *ChallanService) DeleteChallan(ctx context.Context, id uuid.UUID) error {
	challan, err := s.challanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if challan == nil {
		return apperror.NewNotFoundError("Challan")
	}

	if err := s.challanItemRepo.DeleteByChallanID(ctx, id); err != nil {
		return err
	}

	return s.challanRepo.Delete(ctx, id)
}

// UpdateChallanStatus updates the status of a challan
func (s *ChallanService) UpdateChallanStatus(ctx context.Context, id uuid.UUID, status enum.ChallanStatus) error {
	challan, err := s.challanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if challan == nil {
		return apperror.NewNotFoundError("Challan")
	}

	return s.challanRepo.UpdateStatus(ctx, id, status)
}

// RenderChallanPDF renders a challan as a PDF document without prices
func (s *ChallanService) RenderChallanPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	challan, err := s.challanRepo.GetWithGoods(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if challan == nil {
		return nil, "", apperror.NewNotFoundError("Challan")
	}

	doc := export.Document{
		Title:           "DELIVERY CHALLAN",
		Reference:       challan.Reference,
		Date:            challan.Date.Format("02/01/2006"),
		ClientName:      challan.ClientName,
		HidePrices:      true,
		TotalQuantity:   challan.TotalQuantity,
		BusinessName:    s.business.Name,
		BusinessAddress: s.business.Address,
	}
	if challan.Destination != nil {
		doc.Address = *challan.Destination
	}
	if challan.Notes != nil {
		doc.Notes = *challan.Notes
	}
	for _, g := range challan.Goods {
		doc.Lines = append(doc.Lines, export.DocumentLine{
			SrNo:        g.SrNo,
			Description: g.Description,
			HSNSACCode:  g.HSNSACCode,
			Quantity:    g.Quantity,
		})
	}

	pdf, err := export.PDF(doc)
	if err != nil {
		return nil, "", err
	}
	return pdf, challan.Reference + ".pdf", nil
}

func validateChallanGoods(goods []ChallanLineInput) error {
	if len(goods) == 0 {
		return apperror.NewUnprocessableError("goods list cannot be empty")
	}
	for _, g := range goods {
		if strings.TrimSpace(g.Description) == "" {
			return apperror.NewUnprocessableError("description is required on every row")
		}
		if g.Quantity <= 0 {
			return apperror.NewUnprocessableError("quantity must be positive on every row")
		}
	}
	return nil
}

func goodsToChallanItems(challanID uuid.UUID, goods []ChallanLineInput) []entity.ChallanItem {
	items := make([]entity.ChallanItem, 0, len(goods))
	for i, g := range goods {
		items = append(items, entity.ChallanItem{
			ChallanID:   challanID,
			SrNo:        i + 1,
			Description: g.Description,
			HSNSACCode:  g.HSNSACCode,
			Quantity:    g.Quantity,
		})
	}
	return items
}
