package httpapi

import (
	"net/http"

	"github.com/bobmcallan/ledger/internal/common"
	"github.com/bobmcallan/ledger/internal/ledger"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// NewRouter builds the full HTTP front: POST /transactions, POST
// /transactions/csv, GET /accounts, wrapped in the middleware stack.
func NewRouter(engine *ledger.Engine, cfg *common.Config, logger *common.Logger) http.Handler {
	srv := NewServer(engine, logger)

	router := httprouter.New()
	router.POST("/transactions", srv.handlePostTransaction)
	router.POST("/transactions/csv", srv.handlePostTransactionCSV)
	router.GET("/accounts", srv.handleGetAccounts)

	limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)
	return applyMiddleware(router, logger, limiter)
}
