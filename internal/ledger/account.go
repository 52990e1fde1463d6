package ledger

import "github.com/bobmcallan/ledger/internal/money"

// Account is one client's ledger: available and held balances, the locked
// flag, and the history of its own Deposit/Withdrawal transactions. Account
// owns its history exclusively; Engine owns the map of Accounts.
type Account struct {
	client    uint16
	available money.Monetary
	held      money.Monetary
	locked    bool
	history   map[uint32]*storedTransaction
}

// newAccount builds an empty account for client. Called only by Engine, and
// only on a client's first Deposit.
func newAccount(client uint16) *Account {
	return &Account{
		client:  client,
		history: make(map[uint32]*storedTransaction),
	}
}

// Client returns the account's owning client id.
func (a *Account) Client() uint16 { return a.client }

// Available returns the current available balance.
func (a *Account) Available() money.Monetary { return a.available }

// Held returns the current held balance.
func (a *Account) Held() money.Monetary { return a.held }

// Total returns available + held. Always derived, never stored (I2).
func (a *Account) Total() money.Monetary { return a.available.Add(a.held) }

// Locked reports whether a prior chargeback has frozen this account.
func (a *Account) Locked() bool { return a.locked }

// deposit is a guarded balance primitive: it does not touch history and
// does not check locked (§4.2). amount must be non-negative and leave
// available+held at or below SafeMax.
func (a *Account) deposit(tx uint32, amount money.Monetary) error {
	if money.IsNegative(amount) {
		return &AccountError{Kind: NegativeAmount, TX: tx}
	}
	headroom := money.SafeMax.Sub(a.Total())
	if amount.GreaterThan(headroom) {
		return newTooMuch(tx, headroom)
	}
	a.available = a.available.Add(amount)
	return nil
}

// withdraw is a guarded balance primitive: amount must not exceed available.
func (a *Account) withdraw(tx uint32, amount money.Monetary) error {
	if money.IsNegative(amount) {
		return &AccountError{Kind: NegativeAmount, TX: tx}
	}
	if amount.GreaterThan(a.available) {
		return newTooMuch(tx, a.available)
	}
	a.available = a.available.Sub(amount)
	return nil
}

// hold moves amount from available into held.
func (a *Account) hold(tx uint32, amount money.Monetary) error {
	if money.IsNegative(amount) {
		return &AccountError{Kind: NegativeAmount, TX: tx}
	}
	if amount.GreaterThan(a.available) {
		return newTooMuch(tx, a.available)
	}
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
	return nil
}

// release moves amount from held back into available.
func (a *Account) release(tx uint32, amount money.Monetary) error {
	if money.IsNegative(amount) {
		return &AccountError{Kind: NegativeAmount, TX: tx}
	}
	if amount.GreaterThan(a.held) {
		return newTooMuch(tx, a.held)
	}
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)
	return nil
}

// seize removes amount from held permanently and locks the account.
func (a *Account) seize(tx uint32, amount money.Monetary) error {
	if money.IsNegative(amount) {
		return &AccountError{Kind: NegativeAmount, TX: tx}
	}
	if amount.GreaterThan(a.held) {
		return newTooMuch(tx, a.held)
	}
	a.held = a.held.Sub(amount)
	a.locked = true
	return nil
}

// apply runs one event against this account. Every guard is evaluated
// before any field is mutated, so a rejected event leaves the account byte-
// for-byte unchanged (P6). event.Client is assumed already matched to this
// account's client by the caller.
func (a *Account) apply(event Transaction) error {
	if a.locked {
		return &AccountError{Kind: AccountLocked, TX: event.TX}
	}

	switch event.Kind {
	case Deposit:
		return a.applyDeposit(event)
	case Withdrawal:
		return a.applyWithdrawal(event)
	case Dispute:
		return a.applyDispute(event)
	case Resolve:
		return a.applyResolve(event)
	case Chargeback:
		return a.applyChargeback(event)
	default:
		return &AccountError{Kind: TransactionIsEmpty, TX: event.TX}
	}
}

func (a *Account) applyDeposit(event Transaction) error {
	if _, exists := a.history[event.TX]; exists {
		return &AccountError{Kind: TransactionAlreadyExists, TX: event.TX}
	}
	if event.Amount == nil {
		return &AccountError{Kind: TransactionIsEmpty, TX: event.TX}
	}
	if err := a.deposit(event.TX, *event.Amount); err != nil {
		return err
	}
	a.history[event.TX] = &storedTransaction{
		kind:   Deposit,
		client: event.Client,
		tx:     event.TX,
		amount: *event.Amount,
	}
	return nil
}

func (a *Account) applyWithdrawal(event Transaction) error {
	if _, exists := a.history[event.TX]; exists {
		return &AccountError{Kind: TransactionAlreadyExists, TX: event.TX}
	}
	if event.Amount == nil {
		return &AccountError{Kind: TransactionIsEmpty, TX: event.TX}
	}
	if err := a.withdraw(event.TX, *event.Amount); err != nil {
		return err
	}
	a.history[event.TX] = &storedTransaction{
		kind:   Withdrawal,
		client: event.Client,
		tx:     event.TX,
		amount: *event.Amount,
	}
	return nil
}

func (a *Account) applyDispute(event Transaction) error {
	stored, err := a.lookup(event)
	if err != nil {
		return err
	}
	if stored.kind == Withdrawal {
		return &AccountError{Kind: DisputeOfWithdrawalUnsupported, TX: event.TX}
	}
	if stored.underDispute {
		return &AccountError{Kind: TransactionIsSubjectOfDispute, TX: event.TX}
	}
	if err := a.hold(event.TX, stored.amount); err != nil {
		return err
	}
	stored.underDispute = true
	return nil
}

func (a *Account) applyResolve(event Transaction) error {
	stored, err := a.lookup(event)
	if err != nil {
		return err
	}
	if !stored.underDispute {
		return &AccountError{Kind: TransactionIsNotSubjectOfDispute, TX: event.TX}
	}
	if err := a.release(event.TX, stored.amount); err != nil {
		return err
	}
	stored.underDispute = false
	return nil
}

func (a *Account) applyChargeback(event Transaction) error {
	stored, err := a.lookup(event)
	if err != nil {
		return err
	}
	if !stored.underDispute {
		return &AccountError{Kind: TransactionIsNotSubjectOfDispute, TX: event.TX}
	}
	if err := a.seize(event.TX, stored.amount); err != nil {
		return err
	}
	stored.underDispute = false
	return nil
}

// lookup finds event.TX in history, rejecting both a missing tx and one
// owned by a different client (no cross-client history leaks).
func (a *Account) lookup(event Transaction) (*storedTransaction, error) {
	stored, ok := a.history[event.TX]
	if !ok || stored.client != event.Client {
		return nil, &AccountError{Kind: TransactionNotFound, TX: event.TX}
	}
	return stored, nil
}
