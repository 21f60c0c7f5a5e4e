package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/application/service"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/dto/response"
)

// TicketHandler handles sales ticket HTTP requests
type TicketHandler struct {
	ticketService *service.TicketService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService *service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// CreateTicketRequest represents the create ticket request body
type CreateTicketRequest struct {
	ClientID    *string            `json:"client_id"`
	QuotationID *string            `json:"quotation_id"`
	Date        string             `json:"date" binding:"required"`
	VehicleNo   *string            `json:"vehicle_no"`
	TaxRate     *float64           `json:"tax_rate"`
	Notes       *string            `json:"notes"`
	Goods       []GoodsLineRequest `json:"goods" binding:"required,min=1"`
}

// FromQuotationRequest represents the request to raise a ticket from a quotation
type FromQuotationRequest struct {
	QuotationID string  `json:"quotation_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	VehicleNo   *string `json:"vehicle_no"`
}

// List handles listing tickets
func (h *TicketHandler) List(c *gin.Context) {
	params := parsePaginationParams(c)

	var status *enum.TicketStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.TicketStatus(parsed)
			status = &st
		}
	}

	var clientID *uuid.UUID
	if cid := c.Query("client_id"); cid != "" {
		parsed, err := uuid.Parse(cid)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		clientID = &parsed
	}

	result, err := h.ticketService.ListTickets(c.Request.Context(), &service.ListTicketsInput{
		Pagination: params,
		Search:     c.Query("search"),
		Status:     status,
		ClientID:   clientID,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tickets retrieved successfully", result)
}

// Get handles getting a single ticket
func (h *TicketHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket retrieved successfully", ticket)
}

// Create handles creating a ticket
func (h *TicketHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	clientID, err := parseOptionalUUID(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	quotationID, err := parseOptionalUUID(req.QuotationID)
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), &service.CreateTicketInput{
		UserID:      *userID,
		ClientID:    clientID,
		QuotationID: quotationID,
		Date:        date,
		VehicleNo:   req.VehicleNo,
		TaxRate:     req.TaxRate,
		Notes:       req.Notes,
		Goods:       goodsFromRequest(req.Goods),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ticket created successfully", ticket)
}

// CreateFromQuotation raises a ticket from an existing quotation
func (h *TicketHandler) CreateFromQuotation(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req FromQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quotationID, err := uuid.Parse(req.QuotationID)
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	ticket, err := h.ticketService.CreateTicketFromQuotation(c.Request.Context(), *userID, quotationID, date, req.VehicleNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ticket created successfully", ticket)
}

// Update handles updating a ticket
func (h *TicketHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	clientID, err := parseOptionalUUID(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request.Context(), &service.UpdateTicketInput{
		ID:        id,
		ClientID:  clientID,
		Date:      date,
		VehicleNo: req.VehicleNo,
		TaxRate:   req.TaxRate,
		Notes:     req.Notes,
		Goods:     goodsFromRequest(req.Goods),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket updated successfully", ticket)
}

// Delete handles deleting a ticket
func (h *TicketHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateStatus handles changing a ticket's status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status := enum.TicketStatus(req.Status)
	if !status.IsValid() {
		response.BadRequest(c, "Invalid status")
		return
	}

	if err := h.ticketService.UpdateTicketStatus(c.Request.Context(), id, status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket status updated successfully", nil)
}
