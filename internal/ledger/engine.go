// Package ledger implements the transaction-processing state machine: the
// per-account balance rules, the dispute lifecycle, and the multi-account
// dispatcher that routes events to the right account.
package ledger

import "sort"

// Engine is the top-level dispatcher: a map from client id to Account.
// Engine owns every Account exclusively; it is not safe for concurrent use
// from multiple goroutines without external synchronization (an HTTP host
// is expected to serialize access behind one mutex).
type Engine struct {
	accounts map[uint16]*Account
}

// NewEngine returns an empty engine. No accounts exist until the first
// Deposit for a given client.
func NewEngine() *Engine {
	return &Engine{accounts: make(map[uint16]*Account)}
}

// Process routes event to its client's account, creating that account
// lazily if and only if event is a Deposit and no account yet exists.
func (e *Engine) Process(event Transaction) error {
	acct, ok := e.accounts[event.Client]
	if ok {
		return acct.apply(event)
	}

	if event.Kind != Deposit {
		return &EngineError{Kind: AccountNotFound, Client: event.Client}
	}

	// Build the account locally and only publish it once the opening
	// deposit actually succeeds, mirroring the guard-before-mutate
	// discipline the account primitives themselves follow.
	candidate := newAccount(event.Client)
	if err := candidate.apply(event); err != nil {
		return err
	}
	e.accounts[event.Client] = candidate
	return nil
}

// Account returns the account for client and whether it exists, without
// creating one.
func (e *Engine) Account(client uint16) (*Account, bool) {
	acct, ok := e.accounts[client]
	return acct, ok
}

// Snapshot returns one AccountSnapshot per known account, sorted by client
// id so output is deterministic regardless of map iteration order.
func (e *Engine) Snapshot() []AccountSnapshot {
	snapshots := make([]AccountSnapshot, 0, len(e.accounts))
	for _, acct := range e.accounts {
		snapshots = append(snapshots, AccountSnapshot{
			Client:    acct.Client(),
			Available: acct.Available(),
			Held:      acct.Held(),
			Total:     acct.Total(),
			Locked:    acct.Locked(),
		})
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Client < snapshots[j].Client })
	return snapshots
}
