package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banco-simulado/internal/domain/investment"
)

func TestInvestmentAccount_Withdraw(t *testing.T) {
	t.Run("BelowMinimumAlwaysFails", func(t *testing.T) {
		acc := NewInvestmentAccount("000001", "0001", testOwner(t))
		require.NoError(t, acc.Deposit(dec(t, "100000.00")))

		assert.False(t, acc.Withdraw(dec(t, "50.00")))
		assert.False(t, acc.Withdraw(dec(t, "99.99")))
		assertBalance(t, "100000.00", acc)
	})

	t.Run("ExactlyTheMinimumFromMatchingBalance", func(t *testing.T) {
		acc := NewInvestmentAccount("000001", "0001", testOwner(t))
		require.NoError(t, acc.Deposit(dec(t, "100.00")))

		assert.True(t, acc.Withdraw(dec(t, "100.00")))
		assertBalance(t, "0.00", acc)
	})

	t.Run("CappedAtTheBalance", func(t *testing.T) {
		acc := NewInvestmentAccount("000001", "0001", testOwner(t))
		require.NoError(t, acc.Deposit(dec(t, "150.00")))

		assert.False(t, acc.Withdraw(dec(t, "150.01")))
		assertBalance(t, "150.00", acc)
	})
}

func TestInvestmentAccount_ComputeFees(t *testing.T) {
	acc := NewInvestmentAccount("000001", "0001", testOwner(t))
	assert.True(t, acc.ComputeFees().IsZero())

	inv := investment.New(investment.TypeCDB, dec(t, "10000.00"), "12345678901")
	acc.AddInvestment(inv)

	// 0.1% of the cumulative invested total.
	assert.True(t, acc.ComputeFees().Equal(dec(t, "10.00")),
		"fees = %s", acc.ComputeFees())
}

func TestInvestmentAccount_Holdings(t *testing.T) {
	acc := NewInvestmentAccount("000001", "0001", testOwner(t))
	first := investment.New(investment.TypeCDB, dec(t, "1000.00"), "12345678901")
	second := investment.New(investment.TypeLCI, dec(t, "2000.00"), "12345678901")

	acc.AddInvestment(first)
	acc.AddInvestment(second)
	assert.Len(t, acc.Holdings(), 2)
	assert.True(t, acc.TotalInvested().Equal(dec(t, "3000.00")))

	assert.True(t, acc.RemoveInvestment(first))
	assert.Len(t, acc.Holdings(), 1)
	assert.True(t, acc.TotalInvested().Equal(dec(t, "2000.00")))

	assert.False(t, acc.RemoveInvestment(first), "already removed")
}

func TestInvestmentAccount_TotalEquity(t *testing.T) {
	acc := NewInvestmentAccount("000001", "0001", testOwner(t))
	require.NoError(t, acc.Deposit(dec(t, "500.00")))

	// Applied today, so the current value equals the principal.
	acc.AddInvestment(investment.New(investment.TypeCDB, dec(t, "1000.00"), "12345678901"))

	assert.True(t, acc.TotalEquity().Equal(dec(t, "1500.00")),
		"equity = %s", acc.TotalEquity())
}
