package engine

import "errors"

var (
	// ErrInvalidProductID is returned when a line references an id outside
	// the loaded catalog.
	ErrInvalidProductID = errors.New("invalid product id")

	// ErrInvalidQuantity is returned for a requested quantity <= 0.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInsufficientStock is returned when the debit (quantity plus bonus)
	// would take a product's stock below zero. Stock is left untouched.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrTransactionFinalized is returned when lines are added to, or
	// finalize is called again on, an already finalized transaction.
	ErrTransactionFinalized = errors.New("transaction already finalized")

	// ErrWrongTransactionKind is returned when a sale call is made with a
	// restock transaction or vice versa.
	ErrWrongTransactionKind = errors.New("wrong transaction kind")

	// ErrPersistenceFailure wraps catalog, invoice, or ledger write failures
	// at finalize. The in-memory state remains valid; durability is not
	// guaranteed and there is no automatic retry.
	ErrPersistenceFailure = errors.New("persistence failure")
)
