package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
	"github.com/udyogbooks/backoffice-api/pkg/utils"
)

// ItemService handles inventory item operations
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItemInput represents the input for creating an item
type CreateItemInput struct {
	UserID        uuid.UUID
	Name          string
	HSNSACCode    string
	Unit          string
	Quantity      float64
	QuantityAlert float64
	Price         float64 // decimal, stored as cents
	TaxRate       float64
	Notes         *string
}

// CreateItem creates a new inventory item
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	slug := utils.Slugify(input.Name)
	existing, err := s.itemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An item with this name already exists")
	}

	item := &entity.Item{
		UserID:        input.UserID,
		Name:          input.Name,
		Slug:          slug,
		HSNSACCode:    input.HSNSACCode,
		Unit:          input.Unit,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		TaxRate:       input.TaxRate,
		Notes:         input.Notes,
	}
	item.SetPriceFromDecimal(input.Price)
	if item.Unit == "" {
		item.Unit = "nos"
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists items with search and pagination
func (s *ItemService) ListItems(ctx context.Context, params *pagination.Params, search string) (*pagination.Result[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Page, params.PerPage, total)
	return pagination.NewResult(items, pag), nil
}

// ListLowStockItems lists items at or below their alert level
func (s *ItemService) ListLowStockItems(ctx context.Context) ([]entity.Item, error) {
	return s.itemRepo.ListLowStock(ctx)
}

// UpdateItemInput represents the input for updating an item
type UpdateItemInput struct {
	ID            uuid.UUID
	Name          string
	HSNSACCode    string
	Unit          string
	Quantity      float64
	QuantityAlert float64
	Price         float64
	TaxRate       float64
	Notes         *string
}

// UpdateItem updates an existing item
func (s *ItemService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	slug := utils.Slugify(input.Name)
	if slug != item.Slug {
		existing, err := s.itemRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != item.ID {
			return nil, apperror.NewConflictError("An item with this name already exists")
		}
	}

	item.Name = input.Name
	item.Slug = slug
	item.HSNSACCode = input.HSNSACCode
	item.Unit = input.Unit
	item.Quantity = input.Quantity
	item.QuantityAlert = input.QuantityAlert
	item.TaxRate = input.TaxRate
	item.Notes = input.Notes
	item.SetPriceFromDecimal(input.Price)

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem deletes an item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}

	return s.itemRepo.Delete(ctx, id)
}

// ImportResult summarizes a CSV import run
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportItemsCSV bulk-loads items from a CSV stream with the columns
// name, hsn_sac_code, unit, quantity, quantity_alert, price, tax_rate.
// Rows with duplicate names are skipped, not overwritten.
func (s *ItemService) ImportItemsCSV(ctx context.Context, userID uuid.UUID, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperror.NewBadRequestError("CSV file is empty or unreadable")
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	nameIdx, ok := col["name"]
	if !ok {
		return nil, apperror.NewBadRequestError("CSV is missing the required 'name' column")
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	result := &ImportResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		name := strings.TrimSpace(record[nameIdx])
		if name == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: name is required", line))
			continue
		}

		quantity, _ := strconv.ParseFloat(field(record, "quantity"), 64)
		quantityAlert, _ := strconv.ParseFloat(field(record, "quantity_alert"), 64)
		taxRate, _ := strconv.ParseFloat(field(record, "tax_rate"), 64)
		price, err := strconv.ParseFloat(field(record, "price"), 64)
		if err != nil && field(record, "price") != "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid price", line))
			continue
		}

		_, err = s.CreateItem(ctx, &CreateItemInput{
			UserID:        userID,
			Name:          name,
			HSNSACCode:    field(record, "hsn_sac_code"),
			Unit:          field(record, "unit"),
			Quantity:      quantity,
			QuantityAlert: quantityAlert,
			Price:         price,
			TaxRate:       taxRate,
		})
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}
