package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/application/service"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/internal/domain/ledger"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/dto/response"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// GoodsLineRequest represents one goods line in a document request.
// Serial numbers and amounts are accepted but recomputed server-side.
type GoodsLineRequest struct {
	SrNo        int     `json:"sr_no"`
	Description string  `json:"description" binding:"required"`
	HSNSACCode  string  `json:"hsn_sac_code"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Amount      float64 `json:"amount"`
}

// CreateQuotationRequest represents the create quotation request body
type CreateQuotationRequest struct {
	ClientID       *string            `json:"client_id"`
	Date           string             `json:"date" binding:"required"`
	Subject        *string            `json:"subject"`
	PackingCharges *float64           `json:"packing_charges"`
	TaxRate        *float64           `json:"tax_rate"`
	Notes          *string            `json:"notes"`
	Goods          []GoodsLineRequest `json:"goods" binding:"required,min=1"`
}

// UpdateStatusRequest represents a status change request body
type UpdateStatusRequest struct {
	Status int `json:"status"`
}

func goodsFromRequest(goods []GoodsLineRequest) []ledger.LineItem {
	lines := make([]ledger.LineItem, len(goods))
	for i, g := range goods {
		lines[i] = ledger.LineItem{
			SrNo:        g.SrNo,
			Description: g.Description,
			HSNSACCode:  g.HSNSACCode,
			Quantity:    g.Quantity,
			Price:       g.Price,
			Amount:      g.Amount,
		}
	}
	return lines
}

// List handles listing quotations
func (h *QuotationHandler) List(c *gin.Context) {
	params := parsePaginationParams(c)

	var status *enum.QuotationStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.QuotationStatus(parsed)
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

	result, err := h.quotationService.ListQuotations(c.Request.Context(), &service.ListQuotationsInput{
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

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}

// Get handles getting a single quotation
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Create handles creating a quotation
func (h *QuotationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateQuotationRequest
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

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), &service.CreateQuotationInput{
		UserID:         *userID,
		ClientID:       clientID,
		Date:           date,
		Subject:        req.Subject,
		PackingCharges: req.PackingCharges,
		TaxRate:        req.TaxRate,
		Notes:          req.Notes,
		Goods:          goodsFromRequest(req.Goods),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Update handles updating a quotation
func (h *QuotationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req CreateQuotationRequest
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

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), &service.UpdateQuotationInput{
		ID:             id,
		ClientID:       clientID,
		Date:           date,
		Subject:        req.Subject,
		PackingCharges: req.PackingCharges,
		TaxRate:        req.TaxRate,
		Notes:          req.Notes,
		Goods:          goodsFromRequest(req.Goods),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// Delete handles deleting a quotation
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateStatus handles changing a quotation's status
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status := enum.QuotationStatus(req.Status)
	if !status.IsValid() {
		response.BadRequest(c, "Invalid status")
		return
	}

	if err := h.quotationService.UpdateQuotationStatus(c.Request.Context(), id, status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation status updated successfully", nil)
}

// DownloadPDF streams the quotation as a PDF attachment
func (h *QuotationHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	data, filename, err := h.quotationService.RenderQuotationPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}

// Send emails the quotation to the client
func (h *QuotationHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.SendQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation sent successfully", nil)
}
