package ledger

import (
	"fmt"

	"github.com/bobmcallan/ledger/internal/money"
)

// AccountErrorKind enumerates every way apply() can reject an event against
// an existing Account. Names mirror the reference taxonomy so log lines and
// client-facing messages stay stable across implementations.
type AccountErrorKind string

const (
	AccountLocked                     AccountErrorKind = "AccountLocked"
	TransactionNotFound                AccountErrorKind = "TransactionNotFound"
	TransactionAlreadyExists           AccountErrorKind = "TransactionAlreadyExists"
	TransactionIsEmpty                 AccountErrorKind = "TransactionIsEmpty"
	TransactionIsSubjectOfDispute      AccountErrorKind = "TransactionIsSubjectOfDispute"
	TransactionIsNotSubjectOfDispute   AccountErrorKind = "TransactionIsNotSubjectOfDispute"
	NegativeAmount                     AccountErrorKind = "NegativeAmount"
	TooMuch                            AccountErrorKind = "TooMuch"
	// DisputeOfWithdrawalUnsupported is this engine's resolution of the
	// source's open question on disputing a Withdrawal: rather than define
	// compensating semantics that could drive available negative (forbidden
	// by I1), disputes against a stored Withdrawal are rejected outright.
	DisputeOfWithdrawalUnsupported AccountErrorKind = "DisputeOfWithdrawalUnsupported"
)

// AccountError is the tagged error type returned by every Account operation.
// Limit is populated only when Kind is TooMuch.
type AccountError struct {
	Kind  AccountErrorKind
	TX    uint32
	Limit *money.Monetary
}

func (e *AccountError) Error() string {
	switch e.Kind {
	case AccountLocked:
		return "account is locked"
	case TransactionNotFound:
		return fmt.Sprintf("transaction %d not found", e.TX)
	case TransactionAlreadyExists:
		return fmt.Sprintf("transaction %d already exists", e.TX)
	case TransactionIsEmpty:
		return fmt.Sprintf("transaction %d has no amount", e.TX)
	case TransactionIsSubjectOfDispute:
		return fmt.Sprintf("transaction %d is already under dispute", e.TX)
	case TransactionIsNotSubjectOfDispute:
		return fmt.Sprintf("transaction %d is not under dispute", e.TX)
	case NegativeAmount:
		return "amount must not be negative"
	case TooMuch:
		if e.Limit != nil {
			return fmt.Sprintf("amount exceeds the permitted maximum of %s", e.Limit.StringFixed(money.Precision))
		}
		return "amount exceeds the permitted maximum"
	case DisputeOfWithdrawalUnsupported:
		return fmt.Sprintf("transaction %d is a withdrawal and cannot be disputed", e.TX)
	default:
		return "unknown account error"
	}
}

func newTooMuch(tx uint32, limit money.Monetary) *AccountError {
	return &AccountError{Kind: TooMuch, TX: tx, Limit: &limit}
}

// EngineErrorKind enumerates the one failure mode the dispatcher itself can
// produce, before an event ever reaches an Account.
type EngineErrorKind string

// AccountNotFound fires when a Withdrawal, Dispute, Resolve, or Chargeback
// names a client id with no account: accounts are created lazily, and only
// by Deposit.
const AccountNotFound EngineErrorKind = "AccountNotFound"

// EngineError is the tagged error returned by Engine.Process when dispatch
// itself fails, as opposed to the named Account rejecting the event.
type EngineError struct {
	Kind   EngineErrorKind
	Client uint16
}

func (e *EngineError) Error() string {
	switch e.Kind {
	case AccountNotFound:
		return fmt.Sprintf("no account for client %d", e.Client)
	default:
		return "unknown engine error"
	}
}
