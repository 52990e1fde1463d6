package ledger

import "github.com/bobmcallan/ledger/internal/money"

// TransactionKind is the closed set of event types the engine accepts.
type TransactionKind string

// The five transaction kinds. Dispatch on Kind must be exhaustive — adding a
// new kind here means every switch in this package needs a new case.
const (
	Deposit    TransactionKind = "deposit"
	Withdrawal TransactionKind = "withdrawal"
	Dispute    TransactionKind = "dispute"
	Resolve    TransactionKind = "resolve"
	Chargeback TransactionKind = "chargeback"
)

// Transaction is an immutable event descriptor as it enters the engine.
// Amount is required for Deposit/Withdrawal and nil for the other three
// kinds. The under-dispute flag lives on the stored copy inside an Account's
// history, not here — see storedTransaction.
type Transaction struct {
	Kind   TransactionKind
	Client uint16
	TX     uint32
	Amount *money.Monetary
}

// storedTransaction is the record an Account keeps in its history. Only
// Deposit and Withdrawal transactions are ever stored (I3); underDispute is
// mutated in place by the owning Account during the dispute lifecycle.
type storedTransaction struct {
	kind         TransactionKind
	client       uint16
	tx           uint32
	amount       money.Monetary
	underDispute bool
}
