package account

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/banco-simulado/internal/domain/client"
	"github.com/banco-simulado/internal/domain/investment"
)

var (
	minInvestmentWithdrawal = decimal.RequireFromString("100.00")
	custodyFeeRate          = decimal.RequireFromString("0.001")
)

// InvestmentAccount is the variant that originates investments. It
// keeps a convenience list of the placements it originated and a
// running total of money moved into them; the investment repository
// remains the system of record.
type InvestmentAccount struct {
	base
	holdings      []*investment.Investment
	totalInvested decimal.Decimal
}

// NewInvestmentAccount creates an investment account. Leave number
// empty for the repository to assign one.
func NewInvestmentAccount(number, agency string, owner *client.Client) *InvestmentAccount {
	return &InvestmentAccount{
		base:          newBase(number, agency, owner, KindInvestment),
		totalInvested: decimal.Zero,
	}
}

// Withdraw debits the amount when it meets the fixed minimum and does
// not exceed the balance. No fee is charged.
func (a *InvestmentAccount) Withdraw(amount decimal.Decimal) bool {
	if amount.Sign() <= 0 || amount.LessThan(minInvestmentWithdrawal) {
		return false
	}
	if amount.GreaterThan(a.balance) {
		return false
	}

	a.balance = a.balance.Sub(amount)
	return true
}

// ComputeFees returns the custody fee: 0.1% of the cumulative invested
// total.
func (a *InvestmentAccount) ComputeFees() decimal.Decimal {
	return a.totalInvested.Mul(custodyFeeRate)
}

func (a *InvestmentAccount) Details() string {
	return fmt.Sprintf("Holdings: %d | Total invested: %s | Minimum withdrawal: %s",
		len(a.holdings), a.totalInvested.StringFixed(2), minInvestmentWithdrawal.StringFixed(2))
}

// AddInvestment appends the placement to the convenience list and adds
// its principal to the invested total.
func (a *InvestmentAccount) AddInvestment(inv *investment.Investment) {
	a.holdings = append(a.holdings, inv)
	a.totalInvested = a.totalInvested.Add(inv.Principal)
}

// RemoveInvestment drops the placement from the convenience list,
// subtracting its principal from the invested total. It reports whether
// the placement was held.
func (a *InvestmentAccount) RemoveInvestment(inv *investment.Investment) bool {
	for idx, held := range a.holdings {
		if held.ID == inv.ID {
			a.holdings = append(a.holdings[:idx], a.holdings[idx+1:]...)
			a.totalInvested = a.totalInvested.Sub(inv.Principal)
			return true
		}
	}
	return false
}

// Holdings returns a snapshot of the placements originated by this
// account.
func (a *InvestmentAccount) Holdings() []*investment.Investment {
	out := make([]*investment.Investment, len(a.holdings))
	copy(out, a.holdings)
	return out
}

// TotalInvested returns the running total moved into investments from
// this account.
func (a *InvestmentAccount) TotalInvested() decimal.Decimal { return a.totalInvested }

// TotalEquity returns the balance plus the current value of every held
// placement.
func (a *InvestmentAccount) TotalEquity() decimal.Decimal {
	equity := a.balance
	for _, inv := range a.holdings {
		equity = equity.Add(inv.CurrentValue())
	}
	return equity
}

// MinInvestmentWithdrawal returns the fixed minimum withdrawal amount
// for investment accounts.
func MinInvestmentWithdrawal() decimal.Decimal { return minInvestmentWithdrawal }
