// Package transaction holds the immutable record appended to an account's
// history by every balance-moving operation.
package transaction

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind defines the transaction operations recorded in account histories.
type Kind string

const (
	KindDeposit    Kind = "DEPOSIT"
	KindWithdrawal Kind = "WITHDRAWAL"
	KindTransfer   Kind = "TRANSFER"
	KindPix        Kind = "PIX"
	KindInvestment Kind = "INVESTMENT"
	KindRedemption Kind = "INVESTMENT_REDEMPTION"
)

// Transaction is an immutable fact record. The amount is always positive;
// direction is implied by the kind and by which account holds the record.
// Fields are unexported so a constructed transaction can never change.
type Transaction struct {
	id          string
	kind        Kind
	amount      decimal.Decimal
	at          time.Time
	description string
	source      string // agency-number of the debited account
	destination string // empty unless the kind moves money across accounts
	success     bool
	notes       string
}

// New creates a single-account transaction (deposit, withdrawal,
// investment, redemption).
func New(kind Kind, amount decimal.Decimal, description, source string, success bool) Transaction {
	return Transaction{
		id:          uuid.NewString(),
		kind:        kind,
		amount:      amount,
		at:          time.Now(),
		description: description,
		source:      source,
		success:     success,
	}
}

// NewTransfer creates a cross-account transaction (transfer, PIX).
func NewTransfer(kind Kind, amount decimal.Decimal, description, source, destination string, success bool) Transaction {
	t := New(kind, amount, description, source, success)
	t.destination = destination
	return t
}

// WithNotes returns a copy carrying the given free-text notes.
func (t Transaction) WithNotes(notes string) Transaction {
	t.notes = notes
	return t
}

func (t Transaction) ID() string              { return t.id }
func (t Transaction) Kind() Kind              { return t.kind }
func (t Transaction) Amount() decimal.Decimal { return t.amount }
func (t Transaction) At() time.Time           { return t.at }
func (t Transaction) Description() string     { return t.description }
func (t Transaction) Source() string          { return t.source }
func (t Transaction) Destination() string     { return t.destination }
func (t Transaction) Success() bool           { return t.success }
func (t Transaction) Notes() string           { return t.notes }

func (t Transaction) String() string {
	outcome := "OK"
	if !t.success {
		outcome = "FAILED"
	}
	s := fmt.Sprintf("[%s] %s %s - %s (%s)",
		t.at.Format("02/01/2006 15:04:05"), t.kind, t.amount.StringFixed(2), t.description, outcome)
	if t.destination != "" {
		s += fmt.Sprintf(" %s -> %s", t.source, t.destination)
	} else {
		s += fmt.Sprintf(" %s", t.source)
	}
	return s
}
