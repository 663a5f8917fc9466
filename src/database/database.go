package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/wecare/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

// InitDB opens the transaction ledger database and ensures its tables exist.
func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		counterparty TEXT NOT NULL,
		phone TEXT,
		grand_total REAL NOT NULL,
		invoice_file TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS transaction_lines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		product_name TEXT NOT NULL,
		brand TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		bonus INTEGER NOT NULL,
		total_quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		line_total REAL NOT NULL,
		FOREIGN KEY(transaction_id) REFERENCES transactions(id)
	);
	`

	_, err = DB.Exec(createTableStatement)
	if err != nil {
		if logger.L != nil {
			logger.L.Error("failed to create tables", "error", err)
		}
		stdlog.Fatalf("failed to create tables: %v", err)
	}
	if logger.L != nil {
		logger.L.Info("Ledger database tables ensured/created.", "path", databasePath)
	} else {
		stdlog.Println("Ledger database tables ensured/created:", databasePath)
	}
}
