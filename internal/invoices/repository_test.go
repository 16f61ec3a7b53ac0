package invoice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rkhatri/vastra-backend/pkg/db/models"
)

func setupInvoiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	wholesalers := `
CREATE TABLE IF NOT EXISTS wholesalers (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  area TEXT NOT NULL,
  city TEXT NOT NULL,
  email TEXT,
  phone TEXT,
  pincode TEXT,
  gst_number TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	invoices := `
CREATE TABLE IF NOT EXISTS invoices (
  id TEXT PRIMARY KEY,
  wholesaler_id TEXT NOT NULL,
  invoice_number TEXT NOT NULL,
  invoice_date DATETIME,
  gross_amount NUMERIC NOT NULL,
  gst_percentage NUMERIC NOT NULL DEFAULT 18,
  other_cost NUMERIC NOT NULL DEFAULT 0,
  discount NUMERIC NOT NULL DEFAULT 0,
  total_amount NUMERIC NOT NULL,
  notes TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(wholesalers).Error)
	require.NoError(t, db.Exec(invoices).Error)
	return db
}

func seedWholesaler(t *testing.T, db *gorm.DB, name string) *models.Wholesaler {
	t.Helper()
	row := &models.Wholesaler{
		ID:   uuid.New(),
		Name: name,
		Area: "Ring Road",
		City: "Surat",
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func seedInvoice(t *testing.T, repo *Repository, wholesalerID uuid.UUID, number string, gross int64) *models.Invoice {
	t.Helper()
	row := &models.Invoice{
		ID:            uuid.New(),
		WholesalerID:  wholesalerID,
		InvoiceNumber: number,
		GrossAmount:   decimal.NewFromInt(gross),
		GSTPercentage: decimal.NewFromInt(18),
		TotalAmount:   decimal.NewFromInt(gross).Mul(decimal.NewFromFloat(1.18)).Round(2),
	}
	created, err := repo.Create(context.Background(), row)
	require.NoError(t, err)
	return created
}

func TestInvoiceRepositoryCreateAndFind(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewRepository(db)
	supplier := seedWholesaler(t, db, "Shree Textiles")

	created := seedInvoice(t, repo, supplier.ID, "INV-001", 1000)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-001", found.InvoiceNumber)
	assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(1180)))
	require.NotNil(t, found.Wholesaler)
	assert.Equal(t, "Shree Textiles", found.Wholesaler.Name)
}

func TestInvoiceRepositoryFindMissing(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInvoiceRepositoryListFiltersByWholesaler(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewRepository(db)
	first := seedWholesaler(t, db, "Shree Textiles")
	second := seedWholesaler(t, db, "Patel Fabrics")

	seedInvoice(t, repo, first.ID, "INV-001", 500)
	seedInvoice(t, repo, first.ID, "INV-002", 700)
	seedInvoice(t, repo, second.ID, "INV-003", 900)

	all, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := repo.List(context.Background(), &first.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	for _, row := range scoped {
		assert.Equal(t, first.ID, row.WholesalerID)
	}
}

func TestInvoiceRepositoryUpdateAndDelete(t *testing.T) {
	db := setupInvoiceTestDB(t)
	repo := NewRepository(db)
	supplier := seedWholesaler(t, db, "Shree Textiles")
	created := seedInvoice(t, repo, supplier.ID, "INV-001", 1000)

	created.InvoiceNumber = "INV-001-R"
	updated, err := repo.Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, "INV-001-R", updated.InvoiceNumber)

	require.NoError(t, repo.Delete(context.Background(), created.ID))
	_, err = repo.FindByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
