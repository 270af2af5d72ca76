package investment

import "github.com/shopspring/decimal"

// Repository defines investment persistence operations, keyed by the
// generated investment id.
type Repository interface {
	// Save upserts the investment and returns it.
	Save(inv *Investment) *Investment

	FindByID(id string) (*Investment, bool)

	// FindByOwner returns investments owned by the given CPF.
	FindByOwner(cpf string) []*Investment

	FindByType(t Type) []*Investment

	// ListAll returns a snapshot of every stored investment.
	ListAll() []*Investment

	// ListActive returns investments not yet redeemed.
	ListActive() []*Investment

	// MaturingWithin returns active investments whose maturity is at
	// most the given number of days away (overdue ones included).
	MaturingWithin(days int) []*Investment

	// ListOverdue returns active investments past their maturity date.
	ListOverdue() []*Investment

	Exists(id string) bool
	Delete(id string) bool

	Count() int
	CountActive() int

	// TotalPrincipal sums the principal of active investments.
	TotalPrincipal() decimal.Decimal

	// TotalCurrentValue sums the current value of active investments.
	TotalCurrentValue() decimal.Decimal

	Clear()
}
