package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavings_Withdraw(t *testing.T) {
	t.Run("NoWithdrawalFee", func(t *testing.T) {
		acc := NewSavings("000001", "0001", testOwner(t))
		require.NoError(t, acc.Deposit(dec(t, "1000.00")))

		assert.True(t, acc.Withdraw(dec(t, "500.00")))
		assertBalance(t, "500.00", acc)
	})

	t.Run("CappedAtTheBalance", func(t *testing.T) {
		acc := NewSavings("000001", "0001", testOwner(t))
		require.NoError(t, acc.Deposit(dec(t, "100.00")))

		assert.False(t, acc.Withdraw(dec(t, "100.01")))
		assert.True(t, acc.Withdraw(dec(t, "100.00")))
		assertBalance(t, "0.00", acc)
	})

	t.Run("RejectsNonPositiveAmounts", func(t *testing.T) {
		acc := NewSavings("000001", "0001", testOwner(t))
		assert.False(t, acc.Withdraw(dec(t, "0")))
		assert.False(t, acc.Withdraw(dec(t, "-1.00")))
	})
}

func TestSavings_ComputeFees(t *testing.T) {
	acc := NewSavings("000001", "0001", testOwner(t))
	assert.True(t, acc.ComputeFees().IsZero(), "savings has no fees")
}

func TestSavings_ApplyMonthlyYield(t *testing.T) {
	acc := NewSavings("000001", "0001", testOwner(t))
	require.NoError(t, acc.Deposit(dec(t, "1000.00")))

	yield := acc.ApplyMonthlyYield()

	assert.True(t, yield.Equal(dec(t, "5.00")), "yield = %s", yield)
	assertBalance(t, "1005.00", acc)
	assert.True(t, acc.YieldEarned().Equal(dec(t, "5.00")))

	// A second application compounds on the new balance and keeps
	// accumulating the counter; the per-period guard is the caller's
	// responsibility.
	acc.ApplyMonthlyYield()
	assertBalance(t, "1010.025", acc)
	assert.True(t, acc.YieldEarned().Equal(dec(t, "10.025")))
}

func TestSavings_Details(t *testing.T) {
	acc := NewSavings("000001", "0001", testOwner(t))
	assert.NotEmpty(t, acc.Details())
	assert.Equal(t, KindSavings, acc.Kind())
	assert.False(t, acc.Anniversary().IsZero())
}
