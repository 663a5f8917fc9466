// Package engine applies sale and restock transactions against the catalog.
// Validation strictly precedes mutation: a rejected line leaves stock and the
// in-progress transaction exactly as they were.
package engine

import (
	"fmt"
	"time"

	"github.com/username/wecare/backend/src/catalog"
	"github.com/username/wecare/backend/src/invoice"
	"github.com/username/wecare/backend/src/logger"
	"github.com/username/wecare/backend/src/models"
	"github.com/username/wecare/backend/src/pricing"
	"github.com/username/wecare/backend/src/services"
	"github.com/username/wecare/backend/src/utils"
)

// Ledger records finalized transactions for history. The sqlite-backed
// implementation lives in src/database.
type Ledger interface {
	Append(tx *models.Transaction, invoiceFile string) error
}

// Engine owns the in-memory product list for the lifetime of the process.
// It is single-writer: one transaction is collected to completion before the
// next begins.
type Engine struct {
	products []models.Product
	store    *catalog.Store
	recorder *invoice.Recorder
	ledger   Ledger
	reports  *services.InventoryReportService
}

// New builds an engine over an already loaded catalog. ledger and reports
// may be nil when those collaborators are not wired.
func New(
	products []models.Product,
	store *catalog.Store,
	recorder *invoice.Recorder,
	ledger Ledger,
	reports *services.InventoryReportService,
) *Engine {
	return &Engine{
		products: products,
		store:    store,
		recorder: recorder,
		ledger:   ledger,
		reports:  reports,
	}
}

// Products returns a snapshot of the catalog for display.
func (e *Engine) Products() []models.Product {
	out := make([]models.Product, len(e.products))
	copy(out, e.products)
	return out
}

// InventoryReport renders the product table, served from the report cache
// until a transaction invalidates it.
func (e *Engine) InventoryReport() string {
	if e.reports == nil {
		return ""
	}
	return e.reports.Render(e.products)
}

// BeginSale opens a collecting sale transaction for a customer.
func (e *Engine) BeginSale(customerName, phoneNumber string) *models.Transaction {
	return &models.Transaction{
		Kind:         models.KindSale,
		Counterparty: customerName,
		Phone:        phoneNumber,
		CreatedAt:    time.Now(),
	}
}

// BeginRestock opens a collecting restock transaction for a vendor.
func (e *Engine) BeginRestock(vendorName string) *models.Transaction {
	return &models.Transaction{
		Kind:         models.KindRestock,
		Counterparty: vendorName,
		CreatedAt:    time.Now(),
	}
}

// AddSaleLine validates a requested sale quantity against current stock and,
// on success, debits quantity plus bonus, appends the line, and accumulates
// the charge. The caller is expected to retry with a smaller quantity on
// ErrInsufficientStock; the engine never auto-adjusts.
func (e *Engine) AddSaleLine(tx *models.Transaction, productID, quantity int) (models.LineItem, error) {
	if err := e.checkOpen(tx, models.KindSale); err != nil {
		return models.LineItem{}, err
	}
	if productID < 0 || productID >= len(e.products) {
		return models.LineItem{}, fmt.Errorf("%w: %d", ErrInvalidProductID, productID)
	}
	if quantity <= 0 {
		return models.LineItem{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	bonus := pricing.BonusFor(quantity)
	totalDebit := pricing.TotalDebit(quantity)

	product := &e.products[productID]
	if product.Stock < totalDebit {
		return models.LineItem{}, fmt.Errorf("%w: product %q has %d units, sale needs %d",
			ErrInsufficientStock, product.Name, product.Stock, totalDebit)
	}

	product.Stock -= totalDebit
	line := models.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Quantity:  quantity,
		Bonus:     bonus,
		TotalQty:  totalDebit,
		UnitPrice: pricing.SaleUnitPrice(product.CostPrice),
		LineTotal: utils.RoundFloat(pricing.SaleLineTotal(product.CostPrice, quantity), 2),
	}
	tx.Lines = append(tx.Lines, line)
	tx.GrandTotal = utils.RoundFloat(tx.GrandTotal+line.LineTotal, 2)
	e.invalidateReports()

	logger.L.Debug("Sale line accepted",
		"product", product.Name, "quantity", quantity, "bonus", bonus, "stockLeft", product.Stock)
	return line, nil
}

// AddRestockLine increments stock by the restocked quantity and prices the
// line at the product's existing cost price. There is no upper bound on
// quantity and restocking never changes the cost price.
func (e *Engine) AddRestockLine(tx *models.Transaction, productID, quantity int) (models.LineItem, error) {
	if err := e.checkOpen(tx, models.KindRestock); err != nil {
		return models.LineItem{}, err
	}
	if productID < 0 || productID >= len(e.products) {
		return models.LineItem{}, fmt.Errorf("%w: %d", ErrInvalidProductID, productID)
	}
	if quantity <= 0 {
		return models.LineItem{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	product := &e.products[productID]
	product.Stock += quantity
	line := models.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Quantity:  quantity,
		TotalQty:  quantity,
		UnitPrice: product.CostPrice,
		LineTotal: utils.RoundFloat(pricing.RestockLineCost(product.CostPrice, quantity), 2),
	}
	tx.Lines = append(tx.Lines, line)
	tx.GrandTotal = utils.RoundFloat(tx.GrandTotal+line.LineTotal, 2)
	e.invalidateReports()

	logger.L.Debug("Restock line accepted",
		"product", product.Name, "quantity", quantity, "stockNow", product.Stock)
	return line, nil
}

// FinalizeSale closes the transaction, persists the invoice, rewrites the
// whole catalog file, and appends the transaction to the ledger. The
// rendered document is always returned, alongside any persistence error.
func (e *Engine) FinalizeSale(tx *models.Transaction) (invoice.Document, error) {
	if err := e.checkOpen(tx, models.KindSale); err != nil {
		return invoice.Document{}, err
	}
	return e.commit(tx)
}

// FinalizeRestock mirrors FinalizeSale for the restock path.
func (e *Engine) FinalizeRestock(tx *models.Transaction) (invoice.Document, error) {
	if err := e.checkOpen(tx, models.KindRestock); err != nil {
		return invoice.Document{}, err
	}
	return e.commit(tx)
}

// invalidateReports drops the cached product table. Every stock mutation
// calls this so the table shown mid-collection reflects the line just
// accepted.
func (e *Engine) invalidateReports() {
	if e.reports != nil {
		e.reports.Invalidate()
	}
}

func (e *Engine) checkOpen(tx *models.Transaction, kind models.TransactionKind) error {
	if tx.Kind != kind {
		return fmt.Errorf("%w: have %s, want %s", ErrWrongTransactionKind, tx.Kind, kind)
	}
	if tx.Finalized {
		return ErrTransactionFinalized
	}
	return nil
}

// commit is the shared finalize path. Every persistence step is attempted
// even after an earlier one fails; the first failure is reported wrapped in
// ErrPersistenceFailure while in-memory state stays valid.
func (e *Engine) commit(tx *models.Transaction) (invoice.Document, error) {
	tx.Finalized = true

	doc := e.recorder.Render(tx)

	var persistErr error
	if _, err := e.recorder.Persist(doc); err != nil {
		persistErr = err
	}
	if err := e.store.Save(e.products); err != nil && persistErr == nil {
		persistErr = err
	}
	if e.ledger != nil {
		if err := e.ledger.Append(tx, doc.Filename); err != nil {
			logger.L.Error("Failed to append transaction to ledger", "counterparty", tx.Counterparty, "error", err)
			if persistErr == nil {
				persistErr = err
			}
		}
	}
	e.invalidateReports()

	logger.L.Info("Transaction finalized",
		"kind", tx.Kind, "counterparty", tx.Counterparty, "lines", len(tx.Lines), "grandTotal", tx.GrandTotal)

	if persistErr != nil {
		return doc, fmt.Errorf("%w: %v", ErrPersistenceFailure, persistErr)
	}
	return doc, nil
}
