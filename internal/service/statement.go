package service

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/banco-simulado/internal/domain/account"
	"github.com/banco-simulado/internal/domain/transaction"
)

// Statement returns the account's transaction history ordered most
// recent first. The second result is false when the account does not
// exist.
func (s *BancoService) Statement(agency, number string) ([]transaction.Transaction, bool) {
	acc, ok := s.accounts.Find(agency, number)
	if !ok {
		return nil, false
	}

	history := acc.History()
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].At().After(history[j].At())
	})
	return history, true
}

// WriteStatement renders the account statement to w, capped at the
// configured entry limit. A missing account renders a not-found notice.
func (s *BancoService) WriteStatement(w io.Writer, agency, number string) error {
	acc, ok := s.accounts.Find(agency, number)
	if !ok {
		_, err := fmt.Fprintf(w, "Account %s not found.\n", account.Key(agency, number))
		return err
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "                    ACCOUNT STATEMENT")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, acc.String())
	fmt.Fprintf(w, "Holder: %s\n", acc.Owner().Name)
	fmt.Fprintln(w, rule)

	history, _ := s.Statement(agency, number)
	if len(history) == 0 {
		fmt.Fprintln(w, "No transactions found.")
	} else {
		if len(history) > s.statementLimit {
			history = history[:s.statementLimit]
		}
		for _, tx := range history {
			fmt.Fprintln(w, tx.String())
		}
	}
	_, err := fmt.Fprintln(w, rule)
	return err
}
