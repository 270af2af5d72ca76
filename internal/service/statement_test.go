package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banco-simulado/internal/domain/account"
	"github.com/banco-simulado/internal/domain/transaction"
)

func TestStatement(t *testing.T) {
	t.Run("MissingAccount", func(t *testing.T) {
		f := newFixture(t, false)
		_, ok := f.svc.Statement("0001", "999999")
		assert.False(t, ok)
	})

	t.Run("MostRecentFirst", func(t *testing.T) {
		f := newFixture(t, false)
		f.client(t, "12345678901")
		acc := f.fundedAccount(t, "12345678901", account.KindSavings, "1000.00")

		// Distinct timestamps so the ordering is observable.
		time.Sleep(2 * time.Millisecond)
		require.True(t, f.svc.Withdraw(acc.Agency(), acc.Number(), dec(t, "100.00")))
		time.Sleep(2 * time.Millisecond)
		ok, err := f.svc.Deposit(acc.Agency(), acc.Number(), dec(t, "50.00"))
		require.NoError(t, err)
		require.True(t, ok)

		history, ok := f.svc.Statement(acc.Agency(), acc.Number())
		require.True(t, ok)
		require.Len(t, history, 3)

		assert.Equal(t, transaction.KindDeposit, history[0].Kind())
		assert.True(t, history[0].Amount().Equal(dec(t, "50.00")))
		assert.Equal(t, transaction.KindWithdrawal, history[1].Kind())
		assert.Equal(t, transaction.KindDeposit, history[2].Kind())

		for i := 1; i < len(history); i++ {
			assert.False(t, history[i].At().After(history[i-1].At()),
				"entries must be ordered most recent first")
		}
	})
}

func TestWriteStatement(t *testing.T) {
	t.Run("MissingAccountRendersANotice", func(t *testing.T) {
		f := newFixture(t, false)
		var buf strings.Builder

		require.NoError(t, f.svc.WriteStatement(&buf, "0001", "999999"))
		assert.Contains(t, buf.String(), "not found")
	})

	t.Run("RendersHeaderHolderAndEntries", func(t *testing.T) {
		f := newFixture(t, false)
		f.client(t, "12345678901")
		acc := f.fundedAccount(t, "12345678901", account.KindChecking, "1000.00")
		var buf strings.Builder

		require.NoError(t, f.svc.WriteStatement(&buf, acc.Agency(), acc.Number()))

		out := buf.String()
		assert.Contains(t, out, "ACCOUNT STATEMENT")
		assert.Contains(t, out, acc.Owner().Name)
		assert.Contains(t, out, "DEPOSIT")
	})

	t.Run("CapsAtTheConfiguredLimit", func(t *testing.T) {
		f := newFixture(t, false)
		f.client(t, "12345678901")
		acc := f.fundedAccount(t, "12345678901", account.KindSavings, "1000.00")
		for i := 0; i < 15; i++ {
			require.True(t, f.svc.Withdraw(acc.Agency(), acc.Number(), dec(t, "1.00")))
		}
		var buf strings.Builder

		require.NoError(t, f.svc.WriteStatement(&buf, acc.Agency(), acc.Number()))
		out := buf.String()
		rendered := strings.Count(out, "Withdrawal from account") +
			strings.Count(out, "Deposit into account")
		assert.Equal(t, 10, rendered, "only the most recent entries are rendered")
	})
}
