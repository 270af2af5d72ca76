package account

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/banco-simulado/internal/domain/client"
)

var (
	defaultCreditLimit = decimal.RequireFromString("1000.00")
	defaultMonthlyFee  = decimal.RequireFromString("15.00")
	withdrawalFee      = decimal.RequireFromString("2.50")
	transferFee        = decimal.RequireFromString("1.50")
)

// Checking is the overdraft-capable variant: withdrawals may take the
// balance negative up to the credit limit, and each successful
// withdrawal bundles a fixed fee into the debit.
type Checking struct {
	base
	limit      decimal.Decimal
	monthlyFee decimal.Decimal
}

// NewChecking creates a checking account with the default credit limit
// and monthly fee. Leave number empty for the repository to assign one.
func NewChecking(number, agency string, owner *client.Client) *Checking {
	return &Checking{
		base:       newBase(number, agency, owner, KindChecking),
		limit:      defaultCreditLimit,
		monthlyFee: defaultMonthlyFee,
	}
}

// Withdraw debits amount plus the withdrawal fee when the total fits
// within balance plus the credit limit. The fee is only charged when
// the withdrawal succeeds.
func (c *Checking) Withdraw(amount decimal.Decimal) bool {
	if amount.Sign() <= 0 {
		return false
	}

	available := c.balance.Add(c.limit)
	debit := amount.Add(withdrawalFee)
	if debit.GreaterThan(available) {
		return false
	}

	c.balance = c.balance.Sub(debit)
	return true
}

// ComputeFees sums the monthly fee with the fixed withdrawal and
// transfer fees.
func (c *Checking) ComputeFees() decimal.Decimal {
	return c.monthlyFee.Add(withdrawalFee).Add(transferFee)
}

func (c *Checking) Details() string {
	return fmt.Sprintf("Credit limit: %s | Monthly fee: %s",
		c.limit.StringFixed(2), c.monthlyFee.StringFixed(2))
}

func (c *Checking) Limit() decimal.Decimal { return c.limit }

func (c *Checking) SetLimit(limit decimal.Decimal) { c.limit = limit }

func (c *Checking) MonthlyFee() decimal.Decimal { return c.monthlyFee }

func (c *Checking) SetMonthlyFee(fee decimal.Decimal) { c.monthlyFee = fee }

// WithdrawalFee returns the fixed per-withdrawal fee charged by
// checking accounts.
func WithdrawalFee() decimal.Decimal { return withdrawalFee }

// TransferFee returns the fixed transfer fee included in the checking
// fee total.
func TransferFee() decimal.Decimal { return transferFee }
