// Package ingest turns raw CSV fields into well-formed ledger.Transaction
// values: a CSV stream (file or stdin), and the four string fields of the
// HTTP CSV-row endpoint. Malformed rows are dropped here; the engine itself
// never sees them.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bobmcallan/ledger/internal/ledger"
	"github.com/bobmcallan/ledger/internal/money"
	"github.com/shopspring/decimal"
)

// kindTokens maps the lowercase CSV/JSON type token to its TransactionKind.
var kindTokens = map[string]ledger.TransactionKind{
	"deposit":    ledger.Deposit,
	"withdrawal": ledger.Withdrawal,
	"dispute":    ledger.Dispute,
	"resolve":    ledger.Resolve,
	"chargeback": ledger.Chargeback,
}

// RowError describes one dropped CSV record for an optional caller-supplied
// logger; it is never returned as a fatal error, since a malformed row must
// not abort the stream.
type RowError struct {
	Line   int
	Fields []string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s (%v)", e.Line, e.Reason, e.Fields)
}

// OnDroppedRow is called once per malformed record so a caller can log it;
// nil means drop silently.
type OnDroppedRow func(*RowError)

// ReadCSV reads the `type,client,tx,amount` stream from r and returns every
// well-formed Transaction in order. Malformed rows are skipped and, if
// onDropped is non-nil, reported through it. ReadCSV returns an error only
// for an I/O failure reading the underlying stream or a header row other
// than type,client,tx,amount.
func ReadCSV(r io.Reader, onDropped OnDroppedRow) ([]ledger.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !isExpectedHeader(header) {
		return nil, fmt.Errorf("unexpected CSV header %v", header)
	}

	var out []ledger.Transaction
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			// A row-level parse error (e.g. wrong quoting) is a malformed
			// row, not a stream failure: drop and keep reading.
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, err
			}
			if onDropped != nil {
				onDropped(&RowError{Line: line, Reason: err.Error()})
			}
			continue
		}

		tx, ok := parseRow(record)
		if !ok {
			if onDropped != nil {
				onDropped(&RowError{Line: line, Fields: record, Reason: "malformed row"})
			}
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func isExpectedHeader(header []string) bool {
	if len(header) != 4 {
		return false
	}
	want := []string{"type", "client", "tx", "amount"}
	for i, h := range header {
		if strings.TrimSpace(strings.ToLower(h)) != want[i] {
			return false
		}
	}
	return true
}

// parseRow converts one trimmed four-field CSV record into a Transaction.
// It is the single source of truth for the field layout; ParseFields is
// exported for the HTTP CSV-row variant that accepts the same four columns.
func parseRow(fields []string) (ledger.Transaction, bool) {
	if len(fields) != 4 {
		return ledger.Transaction{}, false
	}
	return ParseFields(
		strings.TrimSpace(fields[0]),
		strings.TrimSpace(fields[1]),
		strings.TrimSpace(fields[2]),
		strings.TrimSpace(fields[3]),
	)
}

// ParseFields builds a Transaction from the four already-trimmed string
// fields shared by the CSV file front and the HTTP CSV-row front.
func ParseFields(kindField, clientField, txField, amountField string) (ledger.Transaction, bool) {
	kind, ok := kindTokens[strings.ToLower(kindField)]
	if !ok {
		return ledger.Transaction{}, false
	}

	client, err := strconv.ParseUint(clientField, 10, 16)
	if err != nil {
		return ledger.Transaction{}, false
	}

	tx, err := strconv.ParseUint(txField, 10, 32)
	if err != nil {
		return ledger.Transaction{}, false
	}

	t := ledger.Transaction{Kind: kind, Client: uint16(client), TX: uint32(tx)}
	if amountField != "" {
		amount, err := decimal.NewFromString(amountField)
		if err != nil {
			return ledger.Transaction{}, false
		}
		var m money.Monetary = amount
		t.Amount = &m
	}
	return t, true
}
