package service

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/HemInfotech/hem_api/internal/models"
)

type memClients struct {
	byID map[int]*models.Client
	err  error
}

func (m *memClients) GetByID(_ context.Context, id int) (*models.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return c, nil
}

func (m *memClients) List(_ context.Context) ([]models.Client, error) {
	out := []models.Client{}
	for _, c := range m.byID {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, m.err
}

type memPackages struct {
	byID  map[int]*models.Package
	lines []models.PackageProduct
}

func (m *memPackages) GetByID(_ context.Context, id int) (*models.Package, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (m *memPackages) List(_ context.Context) ([]models.Package, error) {
	out := []models.Package{}
	for _, p := range m.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memPackages) ListProducts(_ context.Context, packageID int) ([]models.PackageProduct, error) {
	out := []models.PackageProduct{}
	for _, l := range m.lines {
		if l.PackageID == packageID {
			out = append(out, l)
		}
	}
	return out, nil
}

type memCatalog struct {
	products   map[int]*models.Component
	categories map[int]string
	calls      int
}

func (m *memCatalog) GetByIDs(_ context.Context, ids []int) (map[int]*models.Component, error) {
	m.calls++
	out := map[int]*models.Component{}
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *memCatalog) CategoryNames(_ context.Context, ids []int) (map[int]string, error) {
	out := map[int]string{}
	for _, id := range ids {
		if n, ok := m.categories[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

// memQuotations mimics the transactional repository: writes are all or nothing.
type memQuotations struct {
	nextID  int
	headers map[int]models.Quotation
	items   map[int][]models.QuotationProduct
	failOn  string
}

func newMemQuotations() *memQuotations {
	return &memQuotations{
		nextID:  1,
		headers: map[int]models.Quotation{},
		items:   map[int][]models.QuotationProduct{},
	}
}

func (m *memQuotations) Create(_ context.Context, q *models.Quotation, items []models.QuotationProduct) error {
	if m.failOn == "create" {
		return sql.ErrConnDone
	}
	q.ID = m.nextID
	m.nextID++
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	m.headers[q.ID] = *q
	m.items[q.ID] = m.copyItems(q.ID, items)
	return nil
}

func (m *memQuotations) Update(_ context.Context, q *models.Quotation, items []models.QuotationProduct) error {
	existing, ok := m.headers[q.ID]
	if !ok {
		return sql.ErrNoRows
	}
	existing.CustomName = q.CustomName
	if q.CustomType != "" {
		existing.CustomType = q.CustomType
	}
	existing.TotalPrice = q.TotalPrice
	existing.UpdatedAt = time.Now()
	m.headers[q.ID] = existing
	m.items[q.ID] = m.copyItems(q.ID, items)
	*q = existing
	return nil
}

func (m *memQuotations) copyItems(quotationID int, items []models.QuotationProduct) []models.QuotationProduct {
	out := make([]models.QuotationProduct, len(items))
	for i, it := range items {
		it.QuotationID = quotationID
		it.ID = quotationID*1000 + i
		out[i] = it
	}
	return out
}

func (m *memQuotations) GetByID(_ context.Context, id int) (*models.Quotation, error) {
	q, ok := m.headers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &q, nil
}

func (m *memQuotations) ListItems(_ context.Context, quotationID int) ([]models.QuotationProduct, error) {
	return append([]models.QuotationProduct{}, m.items[quotationID]...), nil
}

func (m *memQuotations) ListSummaries(_ context.Context) ([]models.QuotationSummary, error) {
	out := []models.QuotationSummary{}
	for _, q := range m.headers {
		out = append(out, models.QuotationSummary{Quotation: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memQuotations) Delete(_ context.Context, id int) error {
	if _, ok := m.headers[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	delete(m.headers, id)
	return nil
}
