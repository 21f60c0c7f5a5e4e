package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/application/service"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/dto/response"
)

// ChallanHandler handles delivery challan HTTP requests
type ChallanHandler struct {
	challanService *service.ChallanService
}

// NewChallanHandler creates a new challan handler
func NewChallanHandler(challanService *service.ChallanService) *ChallanHandler {
	return &ChallanHandler{challanService: challanService}
}

// ChallanLineRequest is one goods line of a challan request. Challans
// carry no prices.
type ChallanLineRequest struct {
	Description string  `json:"description" binding:"required"`
	HSNSACCode  string  `json:"hsn_sac_code"`
	Quantity    float64 `json:"quantity" binding:"required"`
}

// CreateChallanRequest represents the create challan request body
type CreateChallanRequest struct {
	ClientID    *string              `json:"client_id"`
	TicketID    *string              `json:"ticket_id"`
	Date        string               `json:"date" binding:"required"`
	Destination *string              `json:"destination"`
	VehicleNo   *string              `json:"vehicle_no"`
	Notes       *string              `json:"notes"`
	Goods       []ChallanLineRequest `json:"goods" binding:"required,min=1"`
}

// FromTicketRequest represents the request to raise a challan from a ticket
type FromTicketRequest struct {
	TicketID    string  `json:"ticket_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Destination *string `json:"destination"`
	VehicleNo   *string `json:"vehicle_no"`
}

func challanGoodsFromRequest(goods []ChallanLineRequest) []service.ChallanLineInput {
	lines := make([]service.ChallanLineInput, len(goods))
	for i, g := range goods {
		lines[i] = service.ChallanLineInput{
			Description: g.Description,
			HSNSACCode:  g.HSNSACCode,
			Quantity:    g.Quantity,
		}
	}
	return lines
}

// List handles listing challans
func (h *ChallanHandler) List(c *gin.Context) {
	params := parsePaginationParams(c)

	var status *enum.ChallanStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.ChallanStatus(parsed)
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

	result, err := h.challanService.ListChallans(c.Request.Context(), &service.ListChallansInput{
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

	response.SuccessWithPagination(c, 200, "Challans retrieved successfully", result)
}

// Get handles getting a single challan
func (h *ChallanHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid challan ID")
		return
	}

	challan, err := h.challanService.GetChallan(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Challan retrieved successfully", challan)
}

// Create handles creating a challan
func (h *ChallanHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateChallanRequest
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

	ticketID, err := parseOptionalUUID(req.TicketID)
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	challan, err := h.challanService.CreateChallan(c.Request.Context(), &service.CreateChallanInput{
		UserID:      *userID,
		ClientID:    clientID,
		TicketID:    ticketID,
		Date:        date,
		Destination: req.Destination,
		VehicleNo:   req.VehicleNo,
		Notes:       req.Notes,
		Goods:       challanGoodsFromRequest(req.Goods),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Challan created successfully", challan)
}

// CreateFromTicket raises a challan from an existing ticket
func (h *ChallanHandler) CreateFromTicket(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req FromTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ticketID, err := uuid.Parse(req.TicketID)
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	challan, err := h.challanService.CreateChallanFromTicket(c.Request.Context(), *userID, ticketID, date, req.Destination, req.VehicleNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Challan created successfully", challan)
}

// Update handles updating a challan
func (h *ChallanHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid challan ID")
		return
	}

	var req CreateChallanRequest
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

	challan, err := h.challanService.UpdateChallan(c.Request.Context(), &service.UpdateChallanInput{
		ID:          id,
		ClientID:    clientID,
		Date:        date,
		Destination: req.Destination,
		VehicleNo:   req.VehicleNo,
		Notes:       req.Notes,
		Goods:       challanGoodsFromRequest(req.Goods),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Challan updated successfully", challan)
}

// Delete handles deleting a challan
func (h *ChallanHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid challan ID")
		return
	}

	if err := h.challanService.DeleteChallan(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateStatus handles changing a challan's status
func (h *ChallanHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid challan ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status := enum.ChallanStatus(req.Status)
	if !status.IsValid() {
		response.BadRequest(c, "Invalid status")
		return
	}

	if err := h.challanService.UpdateChallanStatus(c.Request.Context(), id, status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Challan status updated successfully", nil)
}

// DownloadPDF streams the challan as a PDF attachment
func (h *ChallanHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid challan ID")
		return
	}

	data, filename, err := h.challanService.RenderChallanPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}
