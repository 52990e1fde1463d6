package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bobmcallan/ledger/internal/common"
	"github.com/bobmcallan/ledger/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	engine := ledger.NewEngine()
	cfg := common.NewDefaultConfig()
	logger := common.NewSilentLogger()
	return NewRouter(engine, cfg, logger)
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPostTransaction_DepositAccepted(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/transactions", map[string]interface{}{
		"type": "deposit", "client": 1, "tx": 1, "amount": "1.5",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPostTransaction_UnknownTypeRejected(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/transactions", map[string]interface{}{
		"type": "teleport", "client": 1, "tx": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostTransaction_EngineRejectionReturns422(t *testing.T) {
	router := newTestRouter()
	postJSON(t, router, "/transactions", map[string]interface{}{
		"type": "deposit", "client": 1, "tx": 1, "amount": "1.0",
	})
	rec := postJSON(t, router, "/transactions", map[string]interface{}{
		"type": "withdrawal", "client": 1, "tx": 2, "amount": "5.0",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(ledger.TooMuch), body.Code)
}

func TestPostTransactionCSV_Accepted(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/transactions/csv", map[string]string{
		"type": "deposit", "client": "1", "tx": "1", "amount": "2.0",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAccounts_ReturnsSnapshot(t *testing.T) {
	router := newTestRouter()
	postJSON(t, router, "/transactions", map[string]interface{}{
		"type": "deposit", "client": 1, "tx": 1, "amount": "3.25",
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	want := "client, available, held, total, locked\n1, 3.2500, 0.0000, 3.2500, false\n"
	assert.Equal(t, want, rec.Body.String())
}

func TestGetAccounts_JSONAccept(t *testing.T) {
	router := newTestRouter()
	postJSON(t, router, "/transactions", map[string]interface{}{
		"type": "deposit", "client": 1, "tx": 1, "amount": "3.25",
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var snapshots []ledger.AccountSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshots))
	require.Len(t, snapshots, 1)
	assert.Equal(t, uint16(1), snapshots[0].Client)
}

func TestPostTransaction_CorrelationIDEchoed(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/transactions", map[string]interface{}{
		"type": "deposit", "client": 1, "tx": 1, "amount": "1.0",
	})
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
