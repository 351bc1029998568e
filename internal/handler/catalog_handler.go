package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/HemInfotech/hem_api/internal/models"
	"github.com/HemInfotech/hem_api/internal/utils"
)

// CatalogHandler serves the quotation form dropdowns.
type CatalogHandler struct {
	catalog CatalogUseCase
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Clients handles GET /api/quotations/dropdown/clients
func (h *CatalogHandler) Clients(c *gin.Context) {
	clients, err := h.catalog.Clients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	utils.JSON(c, 200, clients)
}

// Packages handles GET /api/quotations/dropdown/packages
func (h *CatalogHandler) Packages(c *gin.Context) {
	packages, err := h.catalog.Packages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if packages == nil {
		packages = []models.Package{}
	}
	utils.JSON(c, 200, packages)
}

// PackageProducts handles GET /api/quotations/dropdown/package-products/:packageId
func (h *CatalogHandler) PackageProducts(c *gin.Context) {
	packageID, ok := pathID(c, "packageId")
	if !ok {
		return
	}

	lines, err := h.catalog.PackageProducts(c.Request.Context(), packageID)
	if err != nil {
		respondError(c, err)
		return
	}
	if lines == nil {
		lines = []models.PackageLineItemView{}
	}
	utils.JSON(c, 200, lines)
}
