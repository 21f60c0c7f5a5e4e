package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/application/service"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/dto/response"
)

// maxImportFileSize caps uploaded CSV files at 5 MB
const maxImportFileSize = 5 << 20

// ItemHandler handles inventory item HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ItemRequest represents the create/update item request body
type ItemRequest struct {
	Name          string  `json:"name" binding:"required"`
	HSNSACCode    string  `json:"hsn_sac_code"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	QuantityAlert float64 `json:"quantity_alert"`
	Price         float64 `json:"price" binding:"gte=0"`
	TaxRate       float64 `json:"tax_rate" binding:"gte=0,lte=1"`
	Notes         *string `json:"notes"`
}

// List handles listing items
func (h *ItemHandler) List(c *gin.Context) {
	params := parsePaginationParams(c)

	result, err := h.itemService.ListItems(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// LowStock lists items at or below their alert level
func (h *ItemHandler) LowStock(c *gin.Context) {
	items, err := h.itemService.ListLowStockItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// Get handles getting a single item
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Create handles creating an item
func (h *ItemHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		UserID:        *userID,
		Name:          req.Name,
		HSNSACCode:    req.HSNSACCode,
		Unit:          req.Unit,
		Quantity:      req.Quantity,
		QuantityAlert: req.QuantityAlert,
		Price:         req.Price,
		TaxRate:       req.TaxRate,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Update handles updating an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), &service.UpdateItemInput{
		ID:            id,
		Name:          req.Name,
		HSNSACCode:    req.HSNSACCode,
		Unit:          req.Unit,
		Quantity:      req.Quantity,
		QuantityAlert: req.QuantityAlert,
		Price:         req.Price,
		TaxRate:       req.TaxRate,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles deleting an item
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ImportCSV ingests items from an uploaded CSV file
func (h *ItemHandler) ImportCSV(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file upload, expected multipart field 'file'")
		return
	}
	if fileHeader.Size > maxImportFileSize {
		response.BadRequest(c, "File too large, maximum size is 5 MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.itemService.ImportItemsCSV(c.Request.Context(), *userID, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items imported successfully", result)
}
