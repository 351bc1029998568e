package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/HemInfotech/hem_api/internal/models"
	"github.com/HemInfotech/hem_api/internal/utils"
)

// QuotationHandler handles quotation HTTP endpoints.
type QuotationHandler struct {
	quotations QuotationUseCase
	documents  DocumentUseCase
}

// NewQuotationHandler constructs a QuotationHandler.
func NewQuotationHandler(quotations QuotationUseCase, documents DocumentUseCase) *QuotationHandler {
	return &QuotationHandler{quotations: quotations, documents: documents}
}

// List handles GET /api/quotations
func (h *QuotationHandler) List(c *gin.Context) {
	list, err := h.quotations.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []models.QuotationSummary{}
	}
	utils.JSON(c, 200, list)
}

// Get handles GET /api/quotations/:id
func (h *QuotationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.quotations.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSON(c, 200, detail)
}

// Create handles POST /api/quotations
func (h *QuotationHandler) Create(c *gin.Context) {
	var req models.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	id, err := h.quotations.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSON(c, 201, gin.H{"id": id})
}

// Update handles PUT /api/quotations/:id
func (h *QuotationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.quotations.Update(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}
	utils.JSON(c, 200, gin.H{"success": true})
}

// Delete handles DELETE /api/quotations/:id
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.quotations.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSON(c, 200, gin.H{"success": true})
}

// PDF handles GET /api/quotations/:id/pdf
func (h *QuotationHandler) PDF(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	pdf, err := h.documents.Render(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quotation_%d.pdf", id))
	c.Data(200, "application/pdf", pdf)
}
