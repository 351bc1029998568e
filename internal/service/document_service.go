package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HemInfotech/hem_api/internal/cache"
	"github.com/HemInfotech/hem_api/internal/document"
	"github.com/HemInfotech/hem_api/internal/models"
	"github.com/HemInfotech/hem_api/internal/utils"
)

// DocumentRenderer turns an assembled quotation into PDF bytes.
type DocumentRenderer interface {
	Render(q *document.Quotation) ([]byte, error)
}

// DocumentCache stores rendered documents per document fingerprint.
type DocumentCache interface {
	Get(ctx context.Context, id int, fingerprint string) ([]byte, error)
	Set(ctx context.Context, id int, fingerprint string, pdf []byte) error
}

// DocumentArchiver keeps a copy of every freshly rendered document.
type DocumentArchiver interface {
	UploadQuotationPDF(ctx context.Context, id int, version time.Time, data []byte) (string, error)
}

// DocumentService assembles and renders quotation PDFs. Cache and archiver
// are optional and may be nil.
type DocumentService struct {
	quotations *QuotationService
	renderer   DocumentRenderer
	cache      DocumentCache
	archiver   DocumentArchiver
	enabled    bool
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(
	quotations *QuotationService,
	renderer DocumentRenderer,
	cache DocumentCache,
	archiver DocumentArchiver,
	enabled bool,
) *DocumentService {
	return &DocumentService{
		quotations: quotations,
		renderer:   renderer,
		cache:      cache,
		archiver:   archiver,
		enabled:    enabled,
	}
}

// Render returns the PDF of quotation id. Cache and archive failures are
// logged and never fail the request.
func (s *DocumentService) Render(ctx context.Context, id int) ([]byte, error) {
	if !s.enabled {
		return nil, utils.ErrDocumentDisabled
	}

	detail, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client, err := s.quotations.Client(ctx, detail.ClientID)
	if err != nil {
		return nil, err
	}
	doc := assemble(detail, client)

	var fingerprint string
	if s.cache != nil {
		if fingerprint, err = doc.Fingerprint(); err != nil {
			return nil, err
		}
		pdf, err := s.cache.Get(ctx, id, fingerprint)
		switch {
		case err == nil:
			log.Debug().Int("quotation_id", id).Msg("document cache hit")
			return pdf, nil
		case !errors.Is(err, cache.ErrMiss):
			log.Warn().Err(err).Int("quotation_id", id).Msg("document cache read failed")
		}
	}

	pdf, err := s.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render quotation: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, id, fingerprint, pdf); err != nil {
			log.Warn().Err(err).Int("quotation_id", id).Msg("document cache write failed")
		}
	}
	if s.archiver != nil {
		if _, err := s.archiver.UploadQuotationPDF(ctx, id, detail.UpdatedAt, pdf); err != nil {
			log.Warn().Err(err).Int("quotation_id", id).Msg("document archive failed")
		}
	}

	log.Info().Int("quotation_id", id).Int("bytes", len(pdf)).Msg("quotation document rendered")
	return pdf, nil
}

func assemble(detail *models.QuotationDetail, client *models.Client) *document.Quotation {
	q := &document.Quotation{
		ID:         detail.ID,
		Date:       detail.CreatedAt,
		Subject:    detail.Subject(document.DefaultSubject),
		Subtotal:   detail.Pricing.Subtotal,
		Tax:        detail.Pricing.Tax,
		GrandTotal: detail.Pricing.GrandTotal,
		Lines:      make([]document.Line, 0, len(detail.Products)),
	}
	if client != nil {
		q.To = &document.Recipient{Name: client.Name, Email: client.Email, Phone: client.Phone}
	}
	for _, p := range detail.Products {
		q.Lines = append(q.Lines, document.Line{
			ProductName: p.ProductName,
			Model:       p.Model,
			Description: p.Description,
			Quantity:    p.Quantity,
			Amount:      p.Amount,
		})
	}
	return q
}
