package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/HemInfotech/hem_api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func sampleItems() []models.QuotationProduct {
	return []models.QuotationProduct{
		{ComponentID: 1, ProductID: 10, Quantity: 2, UnitPrice: decimal.NewFromInt(1000)},
		{ComponentID: 2, ProductID: 20, Quantity: 1, UnitPrice: decimal.NewFromInt(500)},
	}
}

func TestQuotationRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewQuotationRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quotation (")).
		WithArgs(3, nil, nil, "fixed", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quotation_product")).
		WithArgs(7, 1, 10, 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quotation_product")).
		WithArgs(7, 2, 20, 1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectCommit()

	q := &models.Quotation{ClientID: 3, CustomType: "fixed", TotalPrice: decimal.NewFromInt(2500)}
	items := sampleItems()
	if err := repo.Create(context.Background(), q, items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != 7 {
		t.Fatalf("expected id 7, got %d", q.ID)
	}
	if items[0].ID != 100 || items[1].ID != 101 || items[1].QuotationID != 7 {
		t.Fatalf("items not populated: %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestQuotationRepository_Create_RollsBackOnItemFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewQuotationRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quotation (")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quotation_product")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	q := &models.Quotation{ClientID: 3, CustomType: "fixed"}
	if err := repo.Create(context.Background(), q, sampleItems()); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestQuotationRepository_Update_ReplacesItems(t *testing.T) {
	db, mock := newMock(t)
	repo := NewQuotationRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE quotation")).
		WithArgs(nil, "custom", sqlmock.AnyArg(), 7).
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "package_id", "custom_type", "created_at", "updated_at"}).AddRow(3, nil, "custom", now, now))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quotation_product WHERE quotation_id = $1")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quotation_product")).
		WithArgs(7, 1, 10, 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(200))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quotation_product")).
		WithArgs(7, 2, 20, 1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(201))
	mock.ExpectCommit()

	q := &models.Quotation{ID: 7, CustomType: "custom", TotalPrice: decimal.NewFromInt(2500)}
	if err := repo.Update(context.Background(), q, sampleItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ClientID != 3 || q.PackageID != nil {
		t.Fatalf("header not refreshed: %+v", q)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestQuotationRepository_Update_KeepsCustomType(t *testing.T) {
	db, mock := newMock(t)
	repo := NewQuotationRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("custom_type = COALESCE(NULLIF($2, ''), custom_type)")).
		WithArgs(nil, "", sqlmock.AnyArg(), 7).
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "package_id", "custom_type", "created_at", "updated_at"}).AddRow(3, 5, "custom", now, now))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quotation_product WHERE quotation_id = $1")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	q := &models.Quotation{ID: 7, TotalPrice: decimal.Zero}
	if err := repo.Update(context.Background(), q, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CustomType != "custom" {
		t.Fatalf("expected stored custom_type to be returned, got %q", q.CustomType)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestQuotationRepository_Update_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewQuotationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE quotation")).
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "package_id", "custom_type", "created_at", "updated_at"}))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &models.Quotation{ID: 99, CustomType: "fixed"}, sampleItems())
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestQuotationRepository_Delete(t *testing.T) {
	t.Run("deletes items then header", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewQuotationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM quotation WHERE id = $1 FOR UPDATE")).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quotation_product WHERE quotation_id = $1")).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quotation WHERE id = $1")).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		if err := repo.Delete(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewQuotationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM quotation WHERE id = $1 FOR UPDATE")).
			WithArgs(8).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		if err := repo.Delete(context.Background(), 8); !errors.Is(err, sql.ErrNoRows) {
			t.Fatalf("expected sql.ErrNoRows, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("header delete failure rolls back item delete", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewQuotationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quotation_product")).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quotation WHERE id = $1")).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		if err := repo.Delete(context.Background(), 7); err == nil {
			t.Fatal("expected error")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestQuotationRepository_ListSummaries(t *testing.T) {
	db, mock := newMock(t)
	repo := NewQuotationRepository(db)
	now := time.Now()

	cols := []string{"id", "client_id", "package_id", "custom_name", "custom_type", "total_price",
		"created_at", "updated_at", "client_name", "package_name"}
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY q.id DESC")).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(9, 3, 4, "Office set", "fixed", "2500.00", now, now, "Asha Traders", "Office Basic").
			AddRow(8, 5, nil, nil, "custom", "120.50", now, now, "", ""))

	got, err := repo.ListSummaries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ID != 9 || got[0].ClientName != "Asha Traders" || got[0].PackageName != "Office Basic" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if !got[0].TotalPrice.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("unexpected total %s", got[0].TotalPrice)
	}
	if got[1].PackageID != nil || got[1].CustomName != nil || got[1].PackageName != "" {
		t.Fatalf("expected nulls for second row: %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
