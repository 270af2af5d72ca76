// Package investment models a single placement and its time-based
// valuation: compound accrual, maturity and redemption rules.
package investment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotRedeemable indicates a redemption attempt before eligibility or
// on an already redeemed investment.
var ErrNotRedeemable = errors.New("investment cannot be redeemed yet")

// Investment is one placement. Principal and AppliedOn are fixed at
// creation and must not be mutated afterwards; MaturesOn may be
// overridden by callers that schedule a custom maturity.
type Investment struct {
	ID        string
	Type      Type
	Principal decimal.Decimal
	AppliedOn time.Time // application date, midnight UTC
	OwnerCPF  string
	MaturesOn time.Time
	Active    bool
	Notes     string
}

// New creates an investment applied today, with the maturity date
// derived from the type's nominal term.
func New(t Type, principal decimal.Decimal, ownerCPF string) *Investment {
	applied := today()
	return &Investment{
		ID:        uuid.NewString(),
		Type:      t,
		Principal: principal,
		AppliedOn: applied,
		OwnerCPF:  ownerCPF,
		MaturesOn: addMonths(applied, t.TermMonths()),
		Active:    true,
	}
}

// NewWithSchedule creates an investment applied today with an explicit
// maturity date and notes.
func NewWithSchedule(t Type, principal decimal.Decimal, ownerCPF string, maturesOn time.Time, notes string) *Investment {
	inv := New(t, principal, ownerCPF)
	inv.MaturesOn = dateOf(maturesOn)
	inv.Notes = notes
	return inv
}

// CurrentValue computes the position's value as of today. A redeemed
// investment is worth zero. The principal compounds once per elapsed
// whole month (a partial month accrues nothing), one multiplication per
// month, rounding half-up to 2 decimals only at the end.
func (i *Investment) CurrentValue() decimal.Decimal {
	if !i.Active {
		return decimal.Zero
	}

	months := monthsBetween(i.AppliedOn, today())
	if months <= 0 {
		return i.Principal
	}

	factor := decimal.NewFromInt(1).Add(i.Type.MonthlyRate())
	value := i.Principal
	for m := 0; m < months; m++ {
		value = value.Mul(factor)
	}
	return value.Round(2)
}

// Yield returns the accrued gain over the principal.
func (i *Investment) Yield() decimal.Decimal {
	return i.CurrentValue().Sub(i.Principal)
}

// YieldPercent returns the accrued gain as a percentage of the
// principal, computed with 4-decimal intermediate precision. A zero
// principal yields zero.
func (i *Investment) YieldPercent() float64 {
	if i.Principal.IsZero() {
		return 0
	}
	return i.Yield().
		DivRound(i.Principal, 4).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}

// CanRedeem reports whether the investment may be redeemed: it must be
// active and today must be on or after the day before maturity. The
// one-day-early allowance is intentional.
func (i *Investment) CanRedeem() bool {
	return i.Active && !today().Before(i.MaturesOn.AddDate(0, 0, -1))
}

// Redeem settles the investment: it computes the current value, marks
// the position inactive and returns the payout. A second call fails
// with ErrNotRedeemable because the position is no longer active.
func (i *Investment) Redeem() (decimal.Decimal, error) {
	if !i.CanRedeem() {
		return decimal.Zero, ErrNotRedeemable
	}

	payout := i.CurrentValue()
	i.Active = false
	return payout, nil
}

// DaysToMaturity returns the signed day count from today until
// maturity; negative once the investment is overdue.
func (i *Investment) DaysToMaturity() int {
	return int(i.MaturesOn.Sub(today()).Hours() / 24)
}

// today returns the current date at midnight UTC. All investment dates
// are midnight UTC so day arithmetic stays exact.
func today() time.Time {
	return dateOf(time.Now())
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthsBetween counts whole calendar months elapsed from one date to
// another, truncating partial months. The anchor day is never clamped:
// a month applied on Jan 31 completes only on Mar 1, not on Feb 28/29.
func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

// addMonths shifts a date by whole months, clamping the day to the
// target month's length (Aug 31 plus six months is Feb 28).
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	total := y*12 + int(m) - 1 + months
	y, m = total/12, time.Month(total%12+1)
	if last := daysIn(y, m); d > last {
		d = last
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
