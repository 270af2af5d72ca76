// Package account models bank accounts as a narrow interface with three
// variants (checking, savings, investment), each carrying its own
// withdrawal and fee rules.
package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banco-simulado/internal/domain/client"
	"github.com/banco-simulado/internal/domain/transaction"
)

// ErrInvalidAmount indicates a non-positive deposit amount. Withdrawals
// report the same condition as a plain false result instead.
var ErrInvalidAmount = errors.New("amount must be positive")

// Kind identifies the account variant.
type Kind string

const (
	KindChecking   Kind = "CHECKING"
	KindSavings    Kind = "SAVINGS"
	KindInvestment Kind = "INVESTMENT"
)

// ParseKind converts a user-supplied name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindChecking, KindSavings, KindInvestment:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown account kind %q", s)
}

// Account is the contract shared by every variant. Withdraw reports
// failure (insufficient funds, non-positive amount, variant rules) as a
// plain false; Deposit is the one operation that returns an error for
// an invalid amount.
type Account interface {
	Number() string
	// SetNumber assigns the account number; the repository calls it
	// once on first save when the number is still empty.
	SetNumber(number string)
	Agency() string
	Balance() decimal.Decimal
	Owner() *client.Client
	Kind() Kind
	OpenedAt() time.Time
	Active() bool
	SetActive(active bool)

	// History returns a snapshot of the account's transaction log,
	// oldest first.
	History() []transaction.Transaction
	// Record appends a transaction to the history.
	Record(tx transaction.Transaction)

	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) bool

	// ComputeFees returns the variant's periodic fee total. Pure; no
	// side effects.
	ComputeFees() decimal.Decimal

	// Details returns a human-readable summary of variant-specific
	// fields, for display only.
	Details() string

	String() string
}

// Transfer debits amount from src and, on success, credits it to dst.
// It returns the withdraw outcome; a failed debit leaves both balances
// untouched. This is the only cross-account balance-moving primitive.
func Transfer(src, dst Account, amount decimal.Decimal) bool {
	if !src.Withdraw(amount) {
		return false
	}
	// Withdraw only succeeds for positive amounts, so the credit
	// cannot fail.
	_ = dst.Deposit(amount)
	return true
}

// Key renders the composite (agency, number) lookup key.
func Key(agency, number string) string {
	return agency + "-" + number
}

// base holds the state common to every variant.
type base struct {
	number   string
	agency   string
	balance  decimal.Decimal
	owner    *client.Client
	kind     Kind
	openedAt time.Time
	history  []transaction.Transaction
	active   bool
}

func newBase(number, agency string, owner *client.Client, kind Kind) base {
	return base{
		number:   number,
		agency:   agency,
		balance:  decimal.Zero,
		owner:    owner,
		kind:     kind,
		openedAt: time.Now(),
		active:   true,
	}
}

func (b *base) Number() string           { return b.number }
func (b *base) SetNumber(number string)  { b.number = number }
func (b *base) Agency() string           { return b.agency }
func (b *base) Balance() decimal.Decimal { return b.balance }
func (b *base) Owner() *client.Client    { return b.owner }
func (b *base) Kind() Kind               { return b.kind }
func (b *base) OpenedAt() time.Time      { return b.openedAt }
func (b *base) Active() bool             { return b.active }
func (b *base) SetActive(active bool)    { b.active = active }

func (b *base) History() []transaction.Transaction {
	out := make([]transaction.Transaction, len(b.history))
	copy(out, b.history)
	return out
}

func (b *base) Record(tx transaction.Transaction) {
	b.history = append(b.history, tx)
}

// Deposit credits the amount. Non-positive amounts are rejected with
// ErrInvalidAmount.
func (b *base) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	b.balance = b.balance.Add(amount)
	return nil
}

func (b *base) String() string {
	return fmt.Sprintf("%s - agency %s, account %s, balance %s",
		b.kind, b.agency, b.number, b.balance.StringFixed(2))
}
