package httpapi

import (
	"net/http"
	"sync"

	"github.com/bobmcallan/ledger/internal/common"
	"github.com/bobmcallan/ledger/internal/ingest"
	"github.com/bobmcallan/ledger/internal/ledger"
	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
)

// Server exposes the ledger engine over JSON/HTTP. All engine calls are
// serialized under one mutex: the engine is single-threaded by design, and
// the server is the unit of exclusion around it (§5 of the design).
type Server struct {
	mu     sync.Mutex
	engine *ledger.Engine
	logger *common.Logger
}

// NewServer wraps engine for HTTP access.
func NewServer(engine *ledger.Engine, logger *common.Logger) *Server {
	return &Server{engine: engine, logger: logger}
}

// transactionRequest is the JSON body accepted by POST /transactions.
type transactionRequest struct {
	Type   string           `json:"type"`
	Client uint16           `json:"client"`
	TX     uint32           `json:"tx"`
	Amount *decimal.Decimal `json:"amount"`
}

func (req transactionRequest) toTransaction() (ledger.Transaction, bool) {
	kind, ok := kindFromString(req.Type)
	if !ok {
		return ledger.Transaction{}, false
	}
	return ledger.Transaction{Kind: kind, Client: req.Client, TX: req.TX, Amount: req.Amount}, true
}

func kindFromString(s string) (ledger.TransactionKind, bool) {
	switch s {
	case string(ledger.Deposit):
		return ledger.Deposit, true
	case string(ledger.Withdrawal):
		return ledger.Withdrawal, true
	case string(ledger.Dispute):
		return ledger.Dispute, true
	case string(ledger.Resolve):
		return ledger.Resolve, true
	case string(ledger.Chargeback):
		return ledger.Chargeback, true
	default:
		return "", false
	}
}

// handlePostTransaction processes POST /transactions: a single JSON event.
func (s *Server) handlePostTransaction(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req transactionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	tx, ok := req.toTransaction()
	if !ok {
		WriteError(w, http.StatusBadRequest, "unknown transaction type "+req.Type)
		return
	}

	s.mu.Lock()
	err := s.engine.Process(tx)
	s.mu.Unlock()

	if err != nil {
		s.logger.Info().
			Uint16("client", tx.Client).
			Uint32("tx", tx.TX).
			Str("error", err.Error()).
			Msg("transaction rejected")
		WriteErrorWithCode(w, http.StatusUnprocessableEntity, err.Error(), errorCode(err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

// csvRowRequest is the four-column payload accepted by POST
// /transactions/csv: the same shape as one CSV file row, sent as JSON.
type csvRowRequest struct {
	Type   string `json:"type"`
	Client string `json:"client"`
	TX     string `json:"tx"`
	Amount string `json:"amount"`
}

// handlePostTransactionCSV processes POST /transactions/csv: a single row
// in the same four-field shape as the CSV file front, expressed as strings
// so the wire format matches a literal CSV record.
func (s *Server) handlePostTransactionCSV(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req csvRowRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	tx, ok := ingest.ParseFields(req.Type, req.Client, req.TX, req.Amount)
	if !ok {
		WriteError(w, http.StatusBadRequest, "malformed transaction row")
		return
	}

	s.mu.Lock()
	err := s.engine.Process(tx)
	s.mu.Unlock()

	if err != nil {
		WriteErrorWithCode(w, http.StatusUnprocessableEntity, err.Error(), errorCode(err))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

// handleGetAccounts processes GET /accounts: the full snapshot of every
// known account. Default representation is the CSV-shaped table from the
// snapshot format; a client that sends "Accept: application/json" gets the
// same data as a JSON array instead.
func (s *Server) handleGetAccounts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.mu.Lock()
	snapshots := s.engine.Snapshot()
	s.mu.Unlock()

	if r.Header.Get("Accept") == "application/json" {
		WriteJSON(w, http.StatusOK, snapshots)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := ledger.WriteSnapshot(w, snapshots); err != nil {
		s.logger.Error().Str("error", err.Error()).Msg("failed to write snapshot response")
	}
}

// errorCode maps a returned error to a stable, machine-discriminable code
// for API clients, mirroring the tagged nature of AccountError/EngineError.
func errorCode(err error) string {
	switch e := err.(type) {
	case *ledger.AccountError:
		return string(e.Kind)
	case *ledger.EngineError:
		return string(e.Kind)
	default:
		return "Unknown"
	}
}
