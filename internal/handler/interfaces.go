package handler

import (
	"context"

	"github.com/HemInfotech/hem_api/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// QuotationUseCase is the quotation persistence surface used by QuotationHandler.
type QuotationUseCase interface {
	List(ctx context.Context) ([]models.QuotationSummary, error)
	GetByID(ctx context.Context, id int) (*models.QuotationDetail, error)
	Create(ctx context.Context, req *models.CreateQuotationRequest) (int, error)
	Update(ctx context.Context, id int, req *models.UpdateQuotationRequest) error
	Delete(ctx context.Context, id int) error
}

// CatalogUseCase feeds the quotation form dropdowns.
type CatalogUseCase interface {
	Clients(ctx context.Context) ([]models.Client, error)
	Packages(ctx context.Context) ([]models.Package, error)
	PackageProducts(ctx context.Context, packageID int) ([]models.PackageLineItemView, error)
}

// DocumentUseCase renders quotation PDFs.
type DocumentUseCase interface {
	Render(ctx context.Context, id int) ([]byte, error)
}

// AuthUseCase authenticates admin users.
type AuthUseCase interface {
	Login(email, password string) (string, error)
}
