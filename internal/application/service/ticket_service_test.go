package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/internal/domain/ledger"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
)

func newTicketServiceForTest() (*TicketService, *MockTicketRepository, *MockTicketItemRepository, *MockQuotationRepository, *MockItemRepository, *MockSettingsRepository) {
	ticketRepo := new(MockTicketRepository)
	ticketItemRepo := new(MockTicketItemRepository)
	quotationRepo := new(MockQuotationRepository)
	clientRepo := new(MockClientRepository)
	itemRepo := new(MockItemRepository)
	settingsRepo := new(MockSettingsRepository)
	svc := NewTicketService(ticketRepo, ticketItemRepo, quotationRepo, clientRepo, itemRepo, settingsRepo)
	return svc, ticketRepo, ticketItemRepo, quotationRepo, itemRepo, settingsRepo
}

func TestCreateTicketDecrementsStock(t *testing.T) {
	svc, ticketRepo, ticketItemRepo, _, itemRepo, settingsRepo := newTicketServiceForTest()
	ctx := context.Background()
	userID := uuid.New()
	stockedID := uuid.New()

	settingsRepo.On("GetByUserID", ctx, userID).Return(nil, nil)
	ticketRepo.On("GetNextReferenceNumber", ctx).Return(12, nil)
	ticketRepo.On("Create", ctx, mock.AnythingOfType("*entity.Ticket")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Ticket).ID = uuid.New()
		}).Return(nil)
	ticketItemRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)
	ticketRepo.On("GetWithGoods", ctx, mock.Anything).Return(&entity.Ticket{}, nil)

	// One stocked line, one unknown code, one service line without a code
	itemRepo.On("GetByHSNSACCode", ctx, "8482").Return(&entity.Item{ID: stockedID, HSNSACCode: "8482"}, nil)
	itemRepo.On("GetByHSNSACCode", ctx, "9999").Return(nil, nil)
	itemRepo.On("AdjustQuantityBatch", ctx, map[uuid.UUID]float64{stockedID: -2}).Return(nil)

	_, err := svc.CreateTicket(ctx, &CreateTicketInput{
		UserID: userID,
		Date:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Goods: []ledger.LineItem{
			{Description: "Ball bearing 6204", HSNSACCode: "8482", Quantity: 2, Price: 150},
			{Description: "Custom bracket", HSNSACCode: "9999", Quantity: 1, Price: 500},
			{Description: "Fitting charges", Quantity: 1, Price: 300},
		},
	})

	assert.NoError(t, err)
	itemRepo.AssertExpectations(t)
	itemRepo.AssertNumberOfCalls(t, "AdjustQuantityBatch", 1)
}

func TestCreateTicketIgnoresPackingChargesDefault(t *testing.T) {
	svc, ticketRepo, ticketItemRepo, _, _, settingsRepo := newTicketServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	// A configured packing charge default applies to quotations only
	settingsRepo.On("GetByUserID", ctx, userID).Return(&entity.UserSettings{
		UserID:                userID,
		DefaultPackingCharges: 50,
	}, nil)
	ticketRepo.On("GetNextReferenceNumber", ctx).Return(1, nil)

	var created *entity.Ticket
	ticketRepo.On("Create", ctx, mock.AnythingOfType("*entity.Ticket")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Ticket)
			created.ID = uuid.New()
		}).Return(nil)
	ticketItemRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)
	ticketRepo.On("GetWithGoods", ctx, mock.Anything).Return(&entity.Ticket{}, nil)

	_, err := svc.CreateTicket(ctx, &CreateTicketInput{
		UserID: userID,
		Date:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Goods: []ledger.LineItem{
			{Description: "Fitting charges", Quantity: 1, Price: 100},
		},
	})

	assert.NoError(t, err)
	assert.InDelta(t, 118, created.GrandTotal, 0.001)
}

func TestCreateTicketRestoresStockWhenGoodsInsertFails(t *testing.T) {
	svc, ticketRepo, ticketItemRepo, _, itemRepo, settingsRepo := newTicketServiceForTest()
	ctx := context.Background()
	userID := uuid.New()
	stockedID := uuid.New()

	settingsRepo.On("GetByUserID", ctx, userID).Return(nil, nil)
	ticketRepo.On("GetNextReferenceNumber", ctx).Return(3, nil)

	var ticketID uuid.UUID
	ticketRepo.On("Create", ctx, mock.AnythingOfType("*entity.Ticket")).
		Run(func(args mock.Arguments) {
			ticketID = uuid.New()
			args.Get(1).(*entity.Ticket).ID = ticketID
		}).Return(nil)
	ticketItemRepo.On("CreateBatch", ctx, mock.Anything).Return(assert.AnError)
	ticketRepo.On("Delete", ctx, mock.Anything).Return(nil)

	itemRepo.On("GetByHSNSACCode", ctx, "8482").Return(&entity.Item{ID: stockedID}, nil)
	itemRepo.On("AdjustQuantityBatch", ctx, map[uuid.UUID]float64{stockedID: -5}).Return(nil)
	itemRepo.On("AdjustQuantityBatch", ctx, map[uuid.UUID]float64{stockedID: 5}).Return(nil)

	_, err := svc.CreateTicket(ctx, &CreateTicketInput{
		UserID: userID,
		Date:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Goods: []ledger.LineItem{
			{Description: "Ball bearing 6204", HSNSACCode: "8482", Quantity: 5, Price: 150},
		},
	})

	assert.Error(t, err)
	itemRepo.AssertCalled(t, "AdjustQuantityBatch", ctx, map[uuid.UUID]float64{stockedID: 5})
	ticketRepo.AssertCalled(t, "Delete", ctx, ticketID)
}

func TestCreateTicketRetriesOnDuplicateReference(t *testing.T) {
	svc, ticketRepo, ticketItemRepo, _, _, settingsRepo := newTicketServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	settingsRepo.On("GetByUserID", ctx, userID).Return(nil, nil)
	ticketRepo.On("GetNextReferenceNumber", ctx).Return(7, nil).Once()
	ticketRepo.On("GetNextReferenceNumber", ctx).Return(8, nil).Once()

	// A concurrent create claimed TK-000007 first
	var created *entity.Ticket
	ticketRepo.On("Create", ctx, mock.AnythingOfType("*entity.Ticket")).
		Return(repository.ErrDuplicateReference).Once()
	ticketRepo.On("Create", ctx, mock.AnythingOfType("*entity.Ticket")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Ticket)
			created.ID = uuid.New()
		}).Return(nil).Once()
	ticketItemRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)
	ticketRepo.On("GetWithGoods", ctx, mock.Anything).Return(&entity.Ticket{}, nil)

	_, err := svc.CreateTicket(ctx, &CreateTicketInput{
		UserID: userID,
		Date:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Goods: []ledger.LineItem{
			{Description: "Spacer", Quantity: 1, Price: 20},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "TK-000008", created.Reference)
	ticketRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestUpdateTicketBlockedWhenNotOpen(t *testing.T) {
	svc, ticketRepo, _, _, _, _ := newTicketServiceForTest()
	ctx := context.Background()
	id := uuid.New()

	ticketRepo.On("GetWithGoods", ctx, id).Return(&entity.Ticket{
		ID:     id,
		Status: enum.TicketStatusBilled,
	}, nil)

	_, err := svc.UpdateTicket(ctx, &UpdateTicketInput{
		ID:    id,
		Date:  time.Now(),
		Goods: []ledger.LineItem{{Description: "Spacer", Quantity: 1, Price: 20}},
	})

	assert.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestUpdateTicketAppliesNetStockChange(t *testing.T) {
	svc, ticketRepo, ticketItemRepo, _, itemRepo, settingsRepo := newTicketServiceForTest()
	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()
	stockedID := uuid.New()

	ticketRepo.On("GetWithGoods", ctx, id).Return(&entity.Ticket{
		ID:     id,
		UserID: userID,
		Status: enum.TicketStatusOpen,
		Goods: []entity.TicketItem{
			{SrNo: 1, Description: "Ball bearing 6204", HSNSACCode: "8482", Quantity: 3, Price: 150, Amount: 450},
		},
	}, nil).Once()
	settingsRepo.On("GetByUserID", ctx, userID).Return(nil, nil)
	itemRepo.On("GetByHSNSACCode", ctx, "8482").Return(&entity.Item{ID: stockedID}, nil)

	// 3 come back, 5 go out
	itemRepo.On("AdjustQuantityBatch", ctx, map[uuid.UUID]float64{stockedID: -2}).Return(nil)

	ticketRepo.On("Update", ctx, mock.AnythingOfType("*entity.Ticket")).Return(nil)
	ticketItemRepo.On("DeleteByTicketID", ctx, id).Return(nil)
	ticketItemRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)
	ticketRepo.On("GetWithGoods", ctx, id).Return(&entity.Ticket{}, nil)

	_, err := svc.UpdateTicket(ctx, &UpdateTicketInput{
		ID:   id,
		Date: time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		Goods: []ledger.LineItem{
			{Description: "Ball bearing 6204", HSNSACCode: "8482", Quantity: 5, Price: 150},
		},
	})

	assert.NoError(t, err)
	itemRepo.AssertCalled(t, "AdjustQuantityBatch", ctx, map[uuid.UUID]float64{stockedID: -2})
	itemRepo.AssertNumberOfCalls(t, "AdjustQuantityBatch", 1)
}

func TestCancelTicketRestoresStock(t *testing.T) {
	svc, ticketRepo, _, _, itemRepo, _ := newTicketServiceForTest()
	ctx := context.Background()
	id := uuid.New()
	stockedID := uuid.New()

	ticketRepo.On("GetWithGoods", ctx, id).Return(&entity.Ticket{
		ID:     id,
		Status: enum.TicketStatusOpen,
		Goods: []entity.TicketItem{
			{SrNo: 1, Description: "Ball bearing 6204", HSNSACCode: "8482", Quantity: 3, Price: 150, Amount: 450},
		},
	}, nil)
	itemRepo.On("GetByHSNSACCode", ctx, "8482").Return(&entity.Item{ID: stockedID}, nil)
	itemRepo.On("AdjustQuantityBatch", ctx, map[uuid.UUID]float64{stockedID: 3}).Return(nil)
	ticketRepo.On("UpdateStatus", ctx, id, enum.TicketStatusCanceled).Return(nil)

	err := svc.UpdateTicketStatus(ctx, id, enum.TicketStatusCanceled)

	assert.NoError(t, err)
	itemRepo.AssertExpectations(t)
	ticketRepo.AssertExpectations(t)
}

func TestCreateTicketFromQuotationMarksAccepted(t *testing.T) {
	svc, ticketRepo, ticketItemRepo, quotationRepo, itemRepo, settingsRepo := newTicketServiceForTest()
	ctx := context.Background()
	userID := uuid.New()
	quotationID := uuid.New()

	quotationRepo.On("GetWithGoods", ctx, quotationID).Return(&entity.Quotation{
		ID:             quotationID,
		PackingCharges: 100,
		TaxRate:        0.18,
		Goods: []entity.QuotationItem{
			{SrNo: 1, Description: "Shaft assembly", Quantity: 2, Price: 500, Amount: 1000},
		},
	}, nil)
	settingsRepo.On("GetByUserID", ctx, userID).Return(nil, nil).Maybe()
	ticketRepo.On("GetNextReferenceNumber", ctx).Return(1, nil)

	var created *entity.Ticket
	ticketRepo.On("Create", ctx, mock.AnythingOfType("*entity.Ticket")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Ticket)
			created.ID = uuid.New()
		}).Return(nil)
	ticketItemRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)
	itemRepo.On("GetByHSNSACCode", ctx, mock.Anything).Return(nil, nil).Maybe()
	ticketRepo.On("GetWithGoods", ctx, mock.Anything).Return(&entity.Ticket{}, nil)
	quotationRepo.On("UpdateStatus", ctx, quotationID, enum.QuotationStatusAccepted).Return(nil)

	_, err := svc.CreateTicketFromQuotation(ctx, userID, quotationID, time.Now(), nil)

	assert.NoError(t, err)
	assert.Equal(t, "TK-000001", created.Reference)
	// The quotation's packing charges never carry over to the ticket
	assert.InDelta(t, 1000+180, created.GrandTotal, 0.001)
	quotationRepo.AssertCalled(t, "UpdateStatus", ctx, quotationID, enum.QuotationStatusAccepted)
}
