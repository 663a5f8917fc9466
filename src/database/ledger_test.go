package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/wecare/backend/src/logger"
	"github.com/username/wecare/backend/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func TestAppendTransaction(t *testing.T) {
	InitDB(filepath.Join(t.TempDir(), "ledger.db"))
	defer DB.Close()
	ledger := NewLedger(DB)

	tx := &models.Transaction{
		Kind:         models.KindSale,
		Counterparty: "Jane",
		Phone:        "9841000000",
		Lines: []models.LineItem{
			{ProductID: 0, Name: "Soap", Brand: "Acme", Quantity: 3, Bonus: 1, TotalQty: 4, UnitPrice: 4.0, LineTotal: 12.0},
			{ProductID: 1, Name: "Brush", Brand: "OralB", Quantity: 2, TotalQty: 2, UnitPrice: 3.0, LineTotal: 6.0},
		},
		GrandTotal: 18.0,
		Finalized:  true,
	}
	require.NoError(t, ledger.Append(tx, "invoice-01-01-2030-14-05-Jane"))

	var kind, counterparty, invoiceFile string
	var total float64
	row := DB.QueryRow(`SELECT kind, counterparty, grand_total, invoice_file FROM transactions`)
	require.NoError(t, row.Scan(&kind, &counterparty, &total, &invoiceFile))
	assert.Equal(t, "sale", kind)
	assert.Equal(t, "Jane", counterparty)
	assert.Equal(t, 18.0, total)
	assert.Equal(t, "invoice-01-01-2030-14-05-Jane", invoiceFile)

	var lines int
	require.NoError(t, DB.QueryRow(`SELECT COUNT(*) FROM transaction_lines`).Scan(&lines))
	assert.Equal(t, 2, lines)
}

func TestAppendRestockTransaction(t *testing.T) {
	InitDB(filepath.Join(t.TempDir(), "ledger.db"))
	defer DB.Close()
	ledger := NewLedger(DB)

	tx := &models.Transaction{
		Kind:         models.KindRestock,
		Counterparty: "Unilever",
		Lines: []models.LineItem{
			{ProductID: 0, Name: "Soap", Brand: "Acme", Quantity: 5, TotalQty: 5, UnitPrice: 2.0, LineTotal: 10.0},
		},
		GrandTotal: 10.0,
		Finalized:  true,
	}
	require.NoError(t, ledger.Append(tx, "invoice-01-01-2030-14-05-Unilever"))

	var kind, phone string
	require.NoError(t, DB.QueryRow(`SELECT kind, COALESCE(phone, '') FROM transactions`).Scan(&kind, &phone))
	assert.Equal(t, "restock", kind)
	assert.Empty(t, phone)
}
