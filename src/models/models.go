package models

import "time"

// Product represents a single catalog entry. Ids are positional: assigned by
// load order over accepted records and stable for the lifetime of the process.
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Stock     int     `json:"stock"`
	CostPrice float64 `json:"cost_price"`
	Country   string  `json:"country"`
}

// LineItem is one product/quantity entry inside a transaction. Immutable once
// appended.
type LineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Quantity  int     `json:"quantity"`       // requested (sale) or restocked quantity
	Bonus     int     `json:"bonus"`          // free units, sales only
	TotalQty  int     `json:"total_quantity"` // quantity + bonus; equals quantity for restock
	UnitPrice float64 `json:"unit_price"`     // sale price or restock unit cost
	LineTotal float64 `json:"line_total"`
}

// TransactionKind discriminates the two mutating flows.
type TransactionKind string

const (
	KindSale    TransactionKind = "sale"
	KindRestock TransactionKind = "restock"
)

// Transaction is an ordered sequence of line items with one counterparty and
// a running total. It grows while collecting and is immutable after finalize.
type Transaction struct {
	Kind         TransactionKind `json:"kind"`
	Counterparty string          `json:"counterparty"` // customer name or vendor name
	Phone        string          `json:"phone,omitempty"`
	Lines        []LineItem      `json:"lines"`
	GrandTotal   float64         `json:"grand_total"`
	CreatedAt    time.Time       `json:"created_at"`

	Finalized bool `json:"finalized"`
}
