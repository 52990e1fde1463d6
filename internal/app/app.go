// Package app wires configuration, logging, and the ledger engine into the
// shared core used by cmd/ledger-cli and cmd/ledger-server.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/bobmcallan/ledger/internal/common"
	"github.com/bobmcallan/ledger/internal/ledger"
)

// App bundles everything a binary needs to run: configuration, a logger,
// and one Engine instance. The Engine is not safe for concurrent use; any
// host sharing it across goroutines must serialize access (internal/httpapi
// does this with one mutex).
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Engine      *ledger.Engine
	StartupTime time.Time
}

// NewApp loads configuration (from configPath if set, else LEDGER_CONFIG,
// else defaults), builds a logger, and starts an empty Engine.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	common.LoadVersionFromFile()

	if configPath == "" {
		configPath = os.Getenv("LEDGER_CONFIG")
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	return &App{
		Config:      config,
		Logger:      logger,
		Engine:      ledger.NewEngine(),
		StartupTime: startupStart,
	}, nil
}
