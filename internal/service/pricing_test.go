package service

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/HemInfotech/hem_api/internal/models"
)

func line(price string, qty int) models.LineItemInput {
	return models.LineItemInput{
		UnitPrice: models.LooseDecimal{Decimal: decimal.RequireFromString(price), Valid: true},
		Quantity:  models.LooseInt{Int: qty, Valid: true},
	}
}

func TestSubtotalOf(t *testing.T) {
	tests := []struct {
		name  string
		lines []models.LineItemInput
		want  string
	}{
		{"empty", nil, "0"},
		{"reference quotation", []models.LineItemInput{line("1000", 2), line("500", 1)}, "2500"},
		{"cents", []models.LineItemInput{line("199.99", 3)}, "599.97"},
		{"missing price contributes zero", []models.LineItemInput{{Quantity: models.LooseInt{Int: 5, Valid: true}}, line("10", 1)}, "10"},
		{"missing quantity counts once", []models.LineItemInput{{UnitPrice: models.LooseDecimal{Decimal: decimal.NewFromInt(75), Valid: true}}}, "75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubtotalOf(tt.lines)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSubtotalOf_SumOfPairwiseProducts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		n := rng.Intn(20)
		lines := make([]models.LineItemInput, n)
		wantCents := int64(0)
		for j := range lines {
			cents := rng.Int63n(10_000_000)
			qty := rng.Intn(50) + 1
			lines[j] = models.LineItemInput{
				UnitPrice: models.LooseDecimal{Decimal: decimal.New(cents, -2), Valid: true},
				Quantity:  models.LooseInt{Int: qty, Valid: true},
			}
			wantCents += cents * int64(qty)
		}
		if got := SubtotalOf(lines); !got.Equal(decimal.New(wantCents, -2)) {
			t.Fatalf("iteration %d: expected %s, got %s", i, decimal.New(wantCents, -2), got)
		}
	}
}

func TestPriceWithGST(t *testing.T) {
	tests := []struct {
		subtotal   string
		tax        string
		grandTotal string
	}{
		{"0", "0", "0"},
		{"2500", "450", "2950"},
		{"100", "18", "118"},
		{"2.5", "0", "3"}, // tax 0.45 rounds to 0, total 2.5 rounds to 3
		{"25", "5", "30"}, // 4.5 rounds half away from zero
		{"999.99", "180", "1180"},
		{"12345", "2222", "14567"},
	}

	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			p := PriceWithGST(decimal.RequireFromString(tt.subtotal))
			if !p.Tax.Equal(decimal.RequireFromString(tt.tax)) {
				t.Fatalf("tax: expected %s, got %s", tt.tax, p.Tax)
			}
			if !p.GrandTotal.Equal(decimal.RequireFromString(tt.grandTotal)) {
				t.Fatalf("grand total: expected %s, got %s", tt.grandTotal, p.GrandTotal)
			}
			if !p.Subtotal.Equal(decimal.RequireFromString(tt.subtotal)) {
				t.Fatalf("subtotal must pass through unchanged, got %s", p.Subtotal)
			}
		})
	}
}

func TestPriceWithGST_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		subtotal := decimal.New(rng.Int63n(1_000_000_000), -2)
		p := PriceWithGST(subtotal)
		if !p.Tax.Equal(subtotal.Mul(GSTRate).Round(0)) {
			t.Fatalf("tax invariant broken for %s", subtotal)
		}
		if !p.GrandTotal.Equal(subtotal.Add(p.Tax).Round(0)) {
			t.Fatalf("grand total invariant broken for %s", subtotal)
		}
	}
}

func TestSubtotalOfStored(t *testing.T) {
	rows := []models.QuotationProduct{
		{UnitPrice: decimal.NewFromInt(1000), Quantity: 2},
		{UnitPrice: decimal.NewFromInt(500), Quantity: 1},
	}
	if got := SubtotalOfStored(rows); !got.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("expected 2500, got %s", got)
	}
}
