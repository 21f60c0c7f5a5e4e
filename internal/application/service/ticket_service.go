package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/internal/domain/ledger"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
	"github.com/udyogbooks/backoffice-api/pkg/utils"
)

// TicketService handles sales ticket operations
type TicketService struct {
	ticketRepo     repository.TicketRepository
	ticketItemRepo repository.TicketItemRepository
	quotationRepo  repository.QuotationRepository
	clientRepo     repository.ClientRepository
	itemRepo       repository.ItemRepository
	settingsRepo   repository.SettingsRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(
	ticketRepo repository.TicketRepository,
	ticketItemRepo repository.TicketItemRepository,
	quotationRepo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	itemRepo repository.ItemRepository,
	settingsRepo repository.SettingsRepository,
) *TicketService {
	return &TicketService{
		ticketRepo:     ticketRepo,
		ticketItemRepo: ticketItemRepo,
		quotationRepo:  quotationRepo,
		clientRepo:     clientRepo,
		itemRepo:       itemRepo,
		settingsRepo:   settingsRepo,
	}
}

// CreateTicketInput represents the input for creating a ticket
type CreateTicketInput struct {
	UserID      uuid.UUID
	ClientID    *uuid.UUID
	QuotationID *uuid.UUID
	Date        time.Time
	VehicleNo   *string
	TaxRate     *float64
	Notes       *string
	Goods       []ledger.LineItem
}

// CreateTicket creates a new sales ticket and decrements stock for
// every goods line that matches an inventory item by HSN/SAC code.
// Tickets never carry packing charges; those belong to quotations.
func (s *TicketService) CreateTicket(ctx context.Context, input *CreateTicketInput) (*entity.Ticket, error) {
	goods := ledger.Recalculate(input.Goods)
	if err := ledger.Validate(goods); err != nil {
		return nil, apperror.NewUnprocessableError(err.Error())
	}

	taxRate := s.resolveTaxRate(ctx, input.UserID, input.TaxRate)
	totals := ledger.ComputeTotals(goods, 0, taxRate)

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

	decrements, err := s.stockDeltas(ctx, linesFromGoods(goods), -1)
	if err != nil {
		return nil, err
	}

	// Take the stock first in one transaction; every later failure puts
	// it back.
	if err := s.applyStockDeltas(ctx, decrements); err != nil {
		return nil, err
	}

	var ticket *entity.Ticket
	for attempt := 1; ; attempt++ {
		nextNum, err := s.ticketRepo.GetNextReferenceNumber(ctx)
		if err != nil {
			_ = s.applyStockDeltas(ctx, invertDeltas(decrements))
			return nil, err
		}

		ticket = &entity.Ticket{
			UserID:        input.UserID,
			ClientID:      input.ClientID,
			QuotationID:   input.QuotationID,
			Date:          input.Date,
			Reference:     utils.FormatReference("TK", nextNum),
			ClientName:    clientName,
			VehicleNo:     input.VehicleNo,
			TotalQuantity: totals.TotalQuantity,
			TotalAmount:   totals.TotalAmount,
			TaxRate:       taxRate,
			GSTAmount:     totals.GSTAmount,
			GrandTotal:    totals.GrandTotal,
			Status:        enum.TicketStatusOpen,
			Notes:         input.Notes,
		}

		err = s.ticketRepo.Create(ctx, ticket)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicateReference) && attempt < maxReferenceAttempts {
			continue
		}
		_ = s.applyStockDeltas(ctx, invertDeltas(decrements))
		return nil, err
	}

	if err := s.ticketItemRepo.CreateBatch(ctx, goodsToTicketItems(ticket.ID, goods)); err != nil {
		_ = s.ticketRepo.Delete(ctx, ticket.ID)
		_ = s.applyStockDeltas(ctx, invertDeltas(decrements))
		return nil, err
	}

	return s.ticketRepo.GetWithGoods(ctx, ticket.ID)
}

// CreateTicketFromQuotation raises a ticket carrying over the
// quotation's goods table and tax rate, and marks the quotation
// accepted. The quotation's packing charges stay behind.
func (s *TicketService) CreateTicketFromQuotation(ctx context.Context, userID, quotationID uuid.UUID, date time.Time, vehicleNo *string) (*entity.Ticket, error) {
	quotation, err := s.quotationRepo.GetWithGoods(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	goods := make([]ledger.LineItem, 0, len(quotation.Goods))
	for _, g := range quotation.Goods {
		goods = append(goods, ledger.LineItem{
			SrNo:        g.SrNo,
			Description: g.Description,
			HSNSACCode:  g.HSNSACCode,
			Quantity:    g.Quantity,
			Price:       g.Price,
			Amount:      g.Amount,
		})
	}

	ticket, err := s.CreateTicket(ctx, &CreateTicketInput{
		UserID:      userID,
		ClientID:    quotation.ClientID,
		QuotationID: &quotation.ID,
		Date:        date,
		VehicleNo:   vehicleNo,
		TaxRate:     &quotation.TaxRate,
		Notes:       quotation.Notes,
		Goods:       goods,
	})
	if err != nil {
		return nil, err
	}

	if err := s.quotationRepo.UpdateStatus(ctx, quotation.ID, enum.QuotationStatusAccepted); err != nil {
		return nil, err
	}

	return ticket, nil
}

// GetTicket retrieves a ticket by ID
func (s *TicketService) GetTicket(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	ticket, err := s.ticketRepo.GetWithGoods(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}
	return ticket, nil
}

// ListTicketsInput represents the input for listing tickets
type ListTicketsInput struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.TicketStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListTickets lists tickets with filtering
func (s *TicketService) ListTickets(ctx context.Context, input *ListTicketsInput) (*pagination.Result[entity.Ticket], error) {
	params := &repository.TicketFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	tickets, total, err := s.ticketRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewResult(tickets, pag), nil
}

// UpdateTicketInput represents the input for updating a ticket
type UpdateTicketInput struct {
	ID        uuid.UUID
	ClientID  *uuid.UUID
	Date      time.Time
	VehicleNo *string
	TaxRate   *float64
	Notes     *string
	Goods     []ledger.LineItem
}

// UpdateTicket updates an open ticket. The stock difference between the
// old and new goods tables is applied as a single batch; if a later
// step fails the batch is reversed.
func (s *TicketService) UpdateTicket(ctx context.Context, input *UpdateTicketInput) (*entity.Ticket, error) {
	ticket, err := s.ticketRepo.GetWithGoods(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}

	if ticket.Status != enum.TicketStatusOpen {
		return nil, apperror.NewConflictError("Only open tickets can be edited")
	}

	goods := ledger.Recalculate(input.Goods)
	if err := ledger.Validate(goods); err != nil {
		return nil, apperror.NewUnprocessableError(err.Error())
	}

	taxRate := s.resolveTaxRate(ctx, ticket.UserID, input.TaxRate)
	totals := ledger.ComputeTotals(goods, 0, taxRate)

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

	// Net stock movement: old quantities come back, new ones go out.
	returns, err := s.stockDeltas(ctx, linesFromTicketItems(ticket.Goods), 1)
	if err != nil {
		return nil, err
	}
	issues, err := s.stockDeltas(ctx, linesFromGoods(goods), -1)
	if err != nil {
		return nil, err
	}
	net := mergeDeltas(returns, issues)

	if err := s.applyStockDeltas(ctx, net); err != nil {
		return nil, err
	}

	ticket.ClientID = input.ClientID
	ticket.Date = input.Date
	ticket.ClientName = clientName
	ticket.VehicleNo = input.VehicleNo
	ticket.TotalQuantity = totals.TotalQuantity
	ticket.TotalAmount = totals.TotalAmount
	ticket.TaxRate = taxRate
	ticket.GSTAmount = totals.GSTAmount
	ticket.GrandTotal = totals.GrandTotal
	ticket.Notes = input.Notes

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		_ = s.applyStockDeltas(ctx, invertDeltas(net))
		return nil, err
	}

	if err := s.ticketItemRepo.DeleteByTicketID(ctx, ticket.ID); err != nil {
		_ = s.applyStockDeltas(ctx, invertDeltas(net))
		return nil, err
	}
	if err := s.ticketItemRepo.CreateBatch(ctx, goodsToTicketItems(ticket.ID, goods)); err != nil {
		_ = s.applyStockDeltas(ctx, invertDeltas(net))
		return nil, err
	}

	return s.ticketRepo.GetWithGoods(ctx, ticket.ID)
}

// DeleteTicket deletes a ticket, restoring the stock it consumed
func (s *TicketService) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	ticket, err := s.ticketRepo.GetWithGoods(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperror.NewNotFoundError("Ticket")
	}

	returns, err := s.stockDeltas(ctx, linesFromTicketItems(ticket.Goods), 1)
	if err != nil {
		return err
	}
	if err := s.applyStockDeltas(ctx, returns); err != nil {
		return err
	}

	if err := s.ticketItemRepo.DeleteByTicketID(ctx, id); err != nil {
		_ = s.applyStockDeltas(ctx, invertDeltas(returns))
		return err
	}

	if err := s.ticketRepo.Delete(ctx, id); err != nil {
		_ = s.applyStockDeltas(ctx, invertDeltas(returns))
		return err
	}
	return nil
}

// UpdateTicketStatus updates the status of a ticket
func (s *TicketService) UpdateTicketStatus(ctx context.Context, id uuid.UUID, status enum.TicketStatus) error {
	ticket, err := s.ticketRepo.GetWithGoods(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperror.NewNotFoundError("Ticket")
	}

	// Canceling an open ticket puts the goods back into stock
	if status == enum.TicketStatusCanceled && ticket.Status != enum.TicketStatusCanceled {
		returns, err := s.stockDeltas(ctx, linesFromTicketItems(ticket.Goods), 1)
		if err != nil {
			return err
		}
		if err := s.applyStockDeltas(ctx, returns); err != nil {
			return err
		}
		if err := s.ticketRepo.UpdateStatus(ctx, id, status); err != nil {
			_ = s.applyStockDeltas(ctx, invertDeltas(returns))
			return err
		}
		return nil
	}

	return s.ticketRepo.UpdateStatus(ctx, id, status)
}

// stockLine is a goods line reduced to what stock movement needs.
type stockLine struct {
	code     string
	quantity float64
}

func linesFromGoods(goods []ledger.LineItem) []stockLine {
	lines := make([]stockLine, 0, len(goods))
	for _, g := range goods {
		lines = append(lines, stockLine{code: g.HSNSACCode, quantity: g.Quantity})
	}
	return lines
}

func linesFromTicketItems(items []entity.TicketItem) []stockLine {
	lines := make([]stockLine, 0, len(items))
	for _, g := range items {
		lines = append(lines, stockLine{code: g.HSNSACCode, quantity: g.Quantity})
	}
	return lines
}

// stockDeltas resolves goods lines to inventory deltas keyed by item
// ID. sign is -1 for issue and +1 for return. Lines without a matching
// HSN/SAC code are services or unstocked goods and contribute nothing.
func (s *TicketService) stockDeltas(ctx context.Context, lines []stockLine, sign float64) (map[uuid.UUID]float64, error) {
	deltas := make(map[uuid.UUID]float64)
	for _, l := range lines {
		if l.code == "" {
			continue
		}
		item, err := s.itemRepo.GetByHSNSACCode(ctx, l.code)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		deltas[item.ID] += sign * l.quantity
	}
	return deltas, nil
}

// applyStockDeltas moves stock in one transaction. Nothing to move is
// not an error.
func (s *TicketService) applyStockDeltas(ctx context.Context, deltas map[uuid.UUID]float64) error {
	if len(deltas) == 0 {
		return nil
	}
	return s.itemRepo.AdjustQuantityBatch(ctx, deltas)
}

func invertDeltas(deltas map[uuid.UUID]float64) map[uuid.UUID]float64 {
	out := make(map[uuid.UUID]float64, len(deltas))
	for id, d := range deltas {
		out[id] = -d
	}
	return out
}

func mergeDeltas(a, b map[uuid.UUID]float64) map[uuid.UUID]float64 {
	out := make(map[uuid.UUID]float64, len(a)+len(b))
	for id, d := range a {
		out[id] += d
	}
	for id, d := range b {
		out[id] += d
	}
	return out
}

// resolveTaxRate picks the effective tax rate. An explicit positive
// rate wins, then the user's configured default, then the statutory
// default.
func (s *TicketService) resolveTaxRate(ctx context.Context, userID uuid.UUID, taxRate *float64) float64 {
	if taxRate != nil && *taxRate > 0 {
		return *taxRate
	}
	if settings, _ := s.settingsRepo.GetByUserID(ctx, userID); settings != nil && settings.DefaultTaxRate > 0 {
		return settings.DefaultTaxRate
	}
	return ledger.DefaultTaxRate
}

func goodsToTicketItems(ticketID uuid.UUID, goods []ledger.LineItem) []entity.TicketItem {
	items := make([]entity.TicketItem, 0, len(goods))
	for _, g := range goods {
		items = append(items, entity.TicketItem{
			TicketID:    ticketID,
			SrNo:        g.SrNo,
			Description: g.Description,
			HSNSACCode:  g.HSNSACCode,
			Quantity:    g.Quantity,
			Price:       g.Price,
			Amount:      g.Amount,
		})
	}
	return items
}
