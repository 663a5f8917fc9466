// Package pricing holds the store's pricing and promotion rules. Everything
// here is a pure computation; stock checks and mutation live in the engine.
package pricing

// Markup is the fixed sale markup over wholesale cost.
const Markup = 2.0

// BonusFor returns the free units granted for a requested sale quantity under
// the buy-3-get-1 promotion.
func BonusFor(quantity int) int {
	return quantity / 3
}

// TotalDebit returns the stock units debited for a requested sale quantity,
// charged units plus bonus.
func TotalDebit(quantity int) int {
	return quantity + BonusFor(quantity)
}

// SaleUnitPrice returns the customer-facing unit price for a wholesale cost.
func SaleUnitPrice(costPrice float64) float64 {
	return costPrice * Markup
}

// SaleLineTotal returns the charge for a sale line. Bonus units are free and
// never enter the charge.
func SaleLineTotal(costPrice float64, quantity int) float64 {
	return SaleUnitPrice(costPrice) * float64(quantity)
}

// RestockLineCost returns the cost of a restock line at the product's
// existing wholesale cost. Restocking does not reprice the product.
func RestockLineCost(costPrice float64, quantity int) float64 {
	return costPrice * float64(quantity)
}
