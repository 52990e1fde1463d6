package ledger

import (
	"testing"

	"github.com/bobmcallan/ledger/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountPrimitives_DepositWithdrawHoldReleaseSeize(t *testing.T) {
	a := newAccount(1)

	require.NoError(t, a.deposit(1, money.New(10)))
	assert.True(t, a.available.Equal(money.New(10)))

	require.NoError(t, a.withdraw(2, money.New(4)))
	assert.True(t, a.available.Equal(money.New(6)))

	require.NoError(t, a.hold(3, money.New(2)))
	assert.True(t, a.available.Equal(money.New(4)))
	assert.True(t, a.held.Equal(money.New(2)))

	require.NoError(t, a.release(4, money.New(2)))
	assert.True(t, a.available.Equal(money.New(6)))
	assert.True(t, a.held.Equal(money.New(0)))

	require.NoError(t, a.hold(5, money.New(6)))
	require.NoError(t, a.seize(6, money.New(6)))
	assert.True(t, a.held.Equal(money.New(0)))
	assert.True(t, a.locked)
}

func TestAccountPrimitives_GuardsLeaveStateUnchanged(t *testing.T) {
	a := newAccount(1)
	require.NoError(t, a.deposit(1, money.New(5)))

	before := *a
	err := a.withdraw(2, money.New(100))
	require.Error(t, err)
	assert.Equal(t, before.available, a.available)
	assert.Equal(t, before.held, a.held)
	assert.Equal(t, before.locked, a.locked)
}

func TestAccountDepositOverSafeMaxRejected(t *testing.T) {
	a := newAccount(1)
	require.NoError(t, a.deposit(1, money.SafeMax))

	err := a.deposit(2, money.New(1))
	require.Error(t, err)
	accErr, ok := err.(*AccountError)
	require.True(t, ok)
	assert.Equal(t, TooMuch, accErr.Kind)
	assert.True(t, a.available.Equal(money.SafeMax), "rejected deposit must not mutate available")
}

func TestAccountHistoryOnlyStoresDepositAndWithdrawal(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.Process(deposit(1, 1, 5.0)))
	require.NoError(t, e.Process(withdrawal(1, 2, 1.0)))
	require.NoError(t, e.Process(dispute(1, 1)))

	acct, ok := e.Account(1)
	require.True(t, ok)
	assert.Len(t, acct.history, 2)
	for tx, stored := range acct.history {
		assert.Equal(t, tx, stored.tx)
		assert.Contains(t, []TransactionKind{Deposit, Withdrawal}, stored.kind)
	}
}
