package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/config"
	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/internal/domain/ledger"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
	"github.com/udyogbooks/backoffice-api/pkg/email"
	"github.com/udyogbooks/backoffice-api/pkg/export"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
	"github.com/udyogbooks/backoffice-api/pkg/utils"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo     repository.QuotationRepository
	quotationItemRepo repository.QuotationItemRepository
	clientRepo        repository.ClientRepository
	settingsRepo      repository.SettingsRepository
	emailService      *email.Service
	business          config.BusinessConfig
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	quotationItemRepo repository.QuotationItemRepository,
	clientRepo repository.ClientRepository,
	settingsRepo repository.SettingsRepository,
	emailService *email.Service,
	business config.BusinessConfig,
) *QuotationService {
	return &QuotationService{
		quotationRepo:     quotationRepo,
		quotationItemRepo: quotationItemRepo,
		clientRepo:        clientRepo,
		settingsRepo:      settingsRepo,
		emailService:      emailService,
		business:          business,
	}
}

// Reference numbers are MAX+1 over existing rows, so two concurrent
// creates can draw the same number. The loser's insert fails on the
// unique constraint and creation retries with a fresh number.
const maxReferenceAttempts = 3

// CreateQuotationInput represents the input for creating a quotation
type CreateQuotationInput struct {
	UserID         uuid.UUID
	ClientID       *uuid.UUID
	Date           time.Time
	Subject        *string
	PackingCharges *float64
	TaxRate        *float64
	Notes          *string
	Goods          []ledger.LineItem
}

// CreateQuotation creates a new quotation. The goods table is
// renumbered and every derived value recomputed server-side; whatever
// amounts the client sent along are discarded.
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
	goods := ledger.Recalculate(input.Goods)
	if err := ledger.Validate(goods); err != nil {
		return nil, apperror.NewUnprocessableError(err.Error())
	}

	packingCharges, taxRate := s.documentDefaults(ctx, input.UserID, input.PackingCharges, input.TaxRate)
	totals := ledger.ComputeTotals(goods, packingCharges, taxRate)

	// Get client name if client ID is provided
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

	var quotation *entity.Quotation
	for attempt := 1; ; attempt++ {
		nextNum, err := s.quotationRepo.GetNextReferenceNumber(ctx)
		if err != nil {
			return nil, err
		}

		quotation = &entity.Quotation{
			UserID:         input.UserID,
			ClientID:       input.ClientID,
			Date:           input.Date,
			Reference:      utils.FormatReference("QT", nextNum),
			ClientName:     clientName,
			Subject:        input.Subject,
			TotalQuantity:  totals.TotalQuantity,
			TotalAmount:    totals.TotalAmount,
			PackingCharges: packingCharges,
			TaxRate:        taxRate,
			GSTAmount:      totals.GSTAmount,
			GrandTotal:     totals.GrandTotal,
			Status:         enum.QuotationStatusDraft,
			Notes:          input.Notes,
		}

		err = s.quotationRepo.Create(ctx, quotation)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicateReference) && attempt < maxReferenceAttempts {
			continue
		}
		return nil, err
	}

	if err := s.quotationItemRepo.CreateBatch(ctx, goodsToQuotationItems(quotation.ID, goods)); err != nil {
		return nil, err
	}

	return s.quotationRepo.GetWithGoods(ctx, quotation.ID)
}

// GetQuotation retrieves a quotation by ID
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithGoods(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotationsInput represents the input for listing quotations
type ListQuotationsInput struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.QuotationStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*pagination.Result[entity.Quotation], error) {
	params := &repository.QuotationFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	quotations, total, err := s.quotationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewResult(quotations, pag), nil
}

// UpdateQuotationInput represents the input for updating a quotation
type UpdateQuotationInput struct {
	ID             uuid.UUID
	ClientID       *uuid.UUID
	Date           time.Time
	Subject        *string
	PackingCharges *float64
	TaxRate        *float64
	Notes          *string
	Goods          []ledger.LineItem
}

// UpdateQuotation updates an existing quotation, replacing its goods
// table wholesale and recomputing all totals.
func (s *QuotationService) UpdateQuotation(ctx context.Context, input *UpdateQuotationInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	if quotation.Status == enum.QuotationStatusAccepted {
		return nil, apperror.NewConflictError("Accepted quotations cannot be edited")
	}

	goods := ledger.Recalculate(input.Goods)
	if err := ledger.Validate(goods); err != nil {
		return nil, apperror.NewUnprocessableError(err.Error())
	}

	packingCharges, taxRate := s.documentDefaults(ctx, quotation.UserID, input.PackingCharges, input.TaxRate)
	totals := ledger.ComputeTotals(goods, packingCharges, taxRate)

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

	quotation.ClientID = input.ClientID
	quotation.Date = input.Date
	quotation.ClientName = clientName
	quotation.Subject = input.Subject
	quotation.TotalQuantity = totals.TotalQuantity
	quotation.TotalAmount = totals.TotalAmount
	quotation.PackingCharges = packingCharges
	quotation.TaxRate = taxRate
	quotation.GSTAmount = totals.GSTAmount
	quotation.GrandTotal = totals.GrandTotal
	quotation.Notes = input.Notes

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	// Replace the goods table wholesale
	if err := s.quotationItemRepo.DeleteByQuotationID(ctx, quotation.ID); err != nil {
		return nil, err
	}
	if err := s.quotationItemRepo.CreateBatch(ctx, goodsToQuotationItems(quotation.ID, goods)); err != nil {
		return nil, err
	}

	return s.quotationRepo.GetWithGoods(ctx, quotation.ID)
}

// DeleteQuotation deletes a quotation
func (s *QuotationService) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	if err := s.quotationItemRepo.DeleteByQuotationID(ctx, id); err != nil {
		return err
	}

	return s.quotationRepo.Delete(ctx, id)
}

// UpdateQuotationStatus updates the status of a quotation
func (s *QuotationService) UpdateQuotationStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	return s.quotationRepo.UpdateStatus(ctx, id, status)
}

// RenderQuotationPDF renders a quotation as a PDF document
func (s *QuotationService) RenderQuotationPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	quotation, err := s.quotationRepo.GetWithGoods(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if quotation == nil {
		return nil, "", apperror.NewNotFoundError("Quotation")
	}

	doc := export.Document{
		Title:           "QUOTATION",
		Reference:       quotation.Reference,
		Date:            quotation.Date.Format("02/01/2006"),
		ClientName:      quotation.ClientName,
		TotalQuantity:   quotation.TotalQuantity,
		TotalAmount:     quotation.TotalAmount,
		PackingCharges:  quotation.PackingCharges,
		GSTAmount:       quotation.GSTAmount,
		GrandTotal:      quotation.GrandTotal,
		BusinessName:    s.business.Name,
		BusinessAddress: s.business.Address,
	}
	if quotation.Client != nil && quotation.Client.Address != nil {
		doc.Address = *quotation.Client.Address
	}
	if quotation.Notes != nil {
		doc.Notes = *quotation.Notes
	}
	for _, g := range quotation.Goods {
		doc.Lines = append(doc.Lines, export.DocumentLine{
			SrNo:        g.SrNo,
			Description: g.Description,
			HSNSACCode:  g.HSNSACCode,
			Quantity:    g.Quantity,
			Price:       g.Price,
			Amount:      g.Amount,
		})
	}

	pdf, err := export.PDF(doc)
	if err != nil {
		return nil, "", err
	}
	return pdf, quotation.Reference + ".pdf", nil
}

// SendQuotation emails the quotation to the client and marks it sent
func (s *QuotationService) SendQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetWithGoods(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	if quotation.Client == nil || quotation.Client.Email == nil || *quotation.Client.Email == "" {
		return apperror.NewBadRequestError("Client has no email address")
	}

	data := email.QuotationEmail{
		Reference:  quotation.Reference,
		Date:       quotation.Date.Format("02/01/2006"),
		ClientName: quotation.ClientName,
		SubTotal:   quotation.TotalAmount,
		GSTAmount:  quotation.GSTAmount,
		GrandTotal: quotation.GrandTotal,
		Currency:   "INR",
	}
	for _, g := range quotation.Goods {
		data.Lines = append(data.Lines, email.QuotationLine{
			SrNo:        g.SrNo,
			Description: g.Description,
			HSNSACCode:  g.HSNSACCode,
			Quantity:    g.Quantity,
			Price:       g.Price,
			Amount:      g.Amount,
		})
	}

	if err := s.emailService.SendQuotationEmail(*quotation.Client.Email, data); err != nil {
		return err
	}

	now := time.Now()
	quotation.SentAt = &now
	quotation.Status = enum.QuotationStatusSent
	return s.quotationRepo.Update(ctx, quotation)
}

// documentDefaults resolves packing charges and tax rate, falling back
// to the user's settings and then the application defaults.
func (s *QuotationService) documentDefaults(ctx context.Context, userID uuid.UUID, packingCharges, taxRate *float64) (float64, float64) {
	var pc, tr float64
	var settings *entity.UserSettings
	if packingCharges == nil || taxRate == nil {
		settings, _ = s.settingsRepo.GetByUserID(ctx, userID)
	}

	if packingCharges != nil {
		pc = *packingCharges
	} else if settings != nil {
		pc = settings.DefaultPackingCharges
	}

	if taxRate != nil && *taxRate > 0 {
		tr = *taxRate
	} else if settings != nil && settings.DefaultTaxRate > 0 {
		tr = settings.DefaultTaxRate
	} else {
		tr = ledger.DefaultTaxRate
	}

	return pc, tr
}

func goodsToQuotationItems(quotationID uuid.UUID, goods []ledger.LineItem) []entity.QuotationItem {
	items := make([]entity.QuotationItem, 0, len(goods))
	for _, g := range goods {
		items = append(items, entity.QuotationItem{
			QuotationID: quotationID,
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
