package database

import (
	"database/sql"
	"fmt"

	"github.com/username/wecare/backend/src/models"
)

// Ledger is the sqlite-backed history of finalized transactions. Stock truth
// stays in the catalog file; the ledger is append-only.
type Ledger struct {
	db *sql.DB
}

// NewLedger wraps an open database, normally the global DB from InitDB.
func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// Append records a finalized transaction and its lines inside one database
// transaction.
func (l *Ledger) Append(tx *models.Transaction, invoiceFile string) error {
	dbTx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("error beginning ledger transaction: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.Exec(
		`INSERT INTO transactions (kind, counterparty, phone, grand_total, invoice_file) VALUES (?, ?, ?, ?, ?)`,
		string(tx.Kind), tx.Counterparty, tx.Phone, tx.GrandTotal, invoiceFile,
	)
	if err != nil {
		return fmt.Errorf("error inserting ledger transaction: %w", err)
	}
	txID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading ledger transaction id: %w", err)
	}

	stmt, err := dbTx.Prepare(`INSERT INTO transaction_lines (transaction_id, product_id, product_name, brand, quantity, bonus, total_quantity, unit_price, line_total) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing ledger line insert: %w", err)
	}
	defer stmt.Close()

	for _, line := range tx.Lines {
		if _, err := stmt.Exec(txID, line.ProductID, line.Name, line.Brand, line.Quantity, line.Bonus, line.TotalQty, line.UnitPrice, line.LineTotal); err != nil {
			return fmt.Errorf("error inserting ledger line (product %d): %w", line.ProductID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("error committing ledger transaction: %w", err)
	}
	return nil
}
