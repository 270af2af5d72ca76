package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banco-simulado/internal/domain/client"
)

var savingsYieldRate = decimal.RequireFromString("0.005")

// Savings is the fee-free variant: withdrawals are capped at the
// current balance and the balance earns a fixed monthly yield.
type Savings struct {
	base
	anniversary time.Time
	yieldEarned decimal.Decimal
}

// NewSavings creates a savings account anchored on today's anniversary
// date. Leave number empty for the repository to assign one.
func NewSavings(number, agency string, owner *client.Client) *Savings {
	return &Savings{
		base:        newBase(number, agency, owner, KindSavings),
		anniversary: time.Now(),
		yieldEarned: decimal.Zero,
	}
}

// Withdraw debits the amount when it does not exceed the balance. No
// fee is charged.
func (s *Savings) Withdraw(amount decimal.Decimal) bool {
	if amount.Sign() <= 0 {
		return false
	}
	if amount.GreaterThan(s.balance) {
		return false
	}

	s.balance = s.balance.Sub(amount)
	return true
}

// ComputeFees returns zero; savings accounts carry no fees.
func (s *Savings) ComputeFees() decimal.Decimal {
	return decimal.Zero
}

// ApplyMonthlyYield credits one month of yield (0.5% of the balance)
// and accumulates it into the earned-yield counter. Callers must invoke
// it at most once per period; there is no internal guard.
func (s *Savings) ApplyMonthlyYield() decimal.Decimal {
	yield := s.balance.Mul(savingsYieldRate)
	s.balance = s.balance.Add(yield)
	s.yieldEarned = s.yieldEarned.Add(yield)
	return yield
}

func (s *Savings) Details() string {
	return fmt.Sprintf("Anniversary: %s | Yield: %s%% per month",
		s.anniversary.Format("02/01/2006"),
		savingsYieldRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
}

func (s *Savings) Anniversary() time.Time { return s.anniversary }

// YieldEarned returns the total yield credited so far.
func (s *Savings) YieldEarned() decimal.Decimal { return s.yieldEarned }

// SavingsYieldRate returns the fixed monthly yield rate.
func SavingsYieldRate() decimal.Decimal { return savingsYieldRate }
