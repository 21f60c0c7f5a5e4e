package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/udyogbooks/backoffice-api/internal/config"
	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/internal/domain/ledger"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
)

func newQuotationServiceForTest() (*QuotationService, *MockQuotationRepository, *MockQuotationItemRepository, *MockClientRepository, *MockSettingsRepository) {
	quotationRepo := new(MockQuotationRepository)
	quotationItemRepo := new(MockQuotationItemRepository)
	clientRepo := new(MockClientRepository)
	settingsRepo := new(MockSettingsRepository)
	svc := NewQuotationService(quotationRepo, quotationItemRepo, clientRepo, settingsRepo, nil, config.BusinessConfig{Name: "Test Works"})
	return svc, quotationRepo, quotationItemRepo, clientRepo, settingsRepo
}

func TestCreateQuotationRecomputesTotals(t *testing.T) {
	svc, quotationRepo, quotationItemRepo, _, settingsRepo := newQuotationServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	settingsRepo.On("GetByUserID", ctx, userID).Return(nil, nil)
	quotationRepo.On("GetNextReferenceNumber", ctx).Return(4, nil)

	var created *entity.Quotation
	quotationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Quotation")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Quotation)
			created.ID = uuid.New()
		}).Return(nil)
	quotationItemRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]entity.QuotationItem")).Return(nil)
	quotationRepo.On("GetWithGoods", ctx, mock.AnythingOfType("uuid.UUID")).Return(&entity.Quotation{}, nil)

	// Client-supplied amounts and serial numbers are deliberately wrong
	_, err := svc.CreateQuotation(ctx, &CreateQuotationInput{
		UserID: userID,
		Date:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Goods: []ledger.LineItem{
			{SrNo: 9, Description: "Bearing housing", Quantity: 2, Price: 100, Amount: 99999},
			{SrNo: 1, Description: "Shaft assembly", Quantity: 3, Price: 200, Amount: 1},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "QT-000004", created.Reference)
	assert.Equal(t, 5.0, created.TotalQuantity)
	assert.Equal(t, 800.0, created.TotalAmount)
	assert.Equal(t, ledger.DefaultTaxRate, created.TaxRate)
	assert.InDelta(t, 144.0, created.GSTAmount, 0.001)
	assert.InDelta(t, 944.0, created.GrandTotal, 0.001)
	assert.Equal(t, enum.QuotationStatusDraft, created.Status)

	quotationItemRepo.AssertCalled(t, "CreateBatch", ctx, mock.MatchedBy(func(items []entity.QuotationItem) bool {
		return len(items) == 2 &&
			items[0].SrNo == 1 && items[0].Amount == 200 &&
			items[1].SrNo == 2 && items[1].Amount == 600
	}))
}

func TestCreateQuotationRetriesOnDuplicateReference(t *testing.T) {
	svc, quotationRepo, quotationItemRepo, _, settingsRepo := newQuotationServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	settingsRepo.On("GetByUserID", ctx, userID).Return(nil, nil)
	quotationRepo.On("GetNextReferenceNumber", ctx).Return(4, nil).Once()
	quotationRepo.On("GetNextReferenceNumber", ctx).Return(5, nil).Once()

	// A concurrent create claimed QT-000004 first
	var created *entity.Quotation
	quotationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Quotation")).
		Return(repository.ErrDuplicateReference).Once()
	quotationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Quotation")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Quotation)
			created.ID = uuid.New()
		}).Return(nil).Once()
	quotationItemRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)
	quotationRepo.On("GetWithGoods", ctx, mock.AnythingOfType("uuid.UUID")).Return(&entity.Quotation{}, nil)

	_, err := svc.CreateQuotation(ctx, &CreateQuotationInput{
		UserID: userID,
		Date:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Goods:  []ledger.LineItem{{Description: "Gasket", Quantity: 1, Price: 10}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "QT-000005", created.Reference)
	quotationRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreateQuotationRejectsInvalidGoods(t *testing.T) {
	tests := []struct {
		name  string
		goods []ledger.LineItem
	}{
		{name: "empty goods list", goods: nil},
		{name: "blank description", goods: []ledger.LineItem{{Description: "  ", Quantity: 1, Price: 10}}},
		{name: "negative quantity", goods: []ledger.LineItem{{Description: "Gasket", Quantity: -1, Price: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, quotationRepo, _, _, _ := newQuotationServiceForTest()

			_, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
				UserID: uuid.New(),
				Date:   time.Now(),
				Goods:  tt.goods,
			})

			assert.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
			quotationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateQuotationBlockedWhenAccepted(t *testing.T) {
	svc, quotationRepo, _, _, _ := newQuotationServiceForTest()
	ctx := context.Background()
	id := uuid.New()

	quotationRepo.On("GetByID", ctx, id).Return(&entity.Quotation{
		ID:     id,
		Status: enum.QuotationStatusAccepted,
	}, nil)

	_, err := svc.UpdateQuotation(ctx, &UpdateQuotationInput{
		ID:    id,
		Date:  time.Now(),
		Goods: []ledger.LineItem{{Description: "Coupling", Quantity: 1, Price: 50}},
	})

	assert.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusConflict, appErr.Code)
	quotationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetQuotationNotFound(t *testing.T) {
	svc, quotationRepo, _, _, _ := newQuotationServiceForTest()
	ctx := context.Background()
	id := uuid.New()

	quotationRepo.On("GetWithGoods", ctx, id).Return(nil, nil)

	_, err := svc.GetQuotation(ctx, id)

	assert.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestCreateQuotationUsesSettingsDefaults(t *testing.T) {
	svc, quotationRepo, quotationItemRepo, _, settingsRepo := newQuotationServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	settingsRepo.On("GetByUserID", ctx, userID).Return(&entity.UserSettings{
		UserID:                userID,
		DefaultTaxRate:        0.12,
		DefaultPackingCharges: 250,
	}, nil)
	quotationRepo.On("GetNextReferenceNumber", ctx).Return(1, nil)

	var created *entity.Quotation
	quotationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Quotation")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Quotation)
		}).Return(nil)
	quotationItemRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)
	quotationRepo.On("GetWithGoods", ctx, mock.Anything).Return(&entity.Quotation{}, nil)

	_, err := svc.CreateQuotation(ctx, &CreateQuotationInput{
		UserID: userID,
		Date:   time.Now(),
		Goods:  []ledger.LineItem{{Description: "Machining charges", Quantity: 1, Price: 1000}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.12, created.TaxRate)
	assert.Equal(t, 250.0, created.PackingCharges)
	assert.InDelta(t, 1000+120+250, created.GrandTotal, 0.001)
}
