// Command ledger-cli reads a stream of transaction events from a CSV file
// or standard input, replays them against a fresh engine, and prints the
// final per-account snapshot to stdout.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/bobmcallan/ledger/internal/app"
	"github.com/bobmcallan/ledger/internal/common"
	"github.com/bobmcallan/ledger/internal/httpapi"
	"github.com/bobmcallan/ledger/internal/ingest"
	"github.com/bobmcallan/ledger/internal/ledger"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "ledger-cli [csv-file]",
		Short: "Replay a transaction stream and print the resulting account snapshot",
		Long: "ledger-cli reads type,client,tx,amount rows from the given file, or from\n" +
			"standard input if no file is given, applies them to a fresh engine in\n" +
			"order, and prints the client,available,held,total,locked snapshot.",
		Args: cobra.MaximumNArgs(1),
		RunE: runReplay,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every dropped or rejected row")

	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := common.NewSilentLogger()
	if verbose {
		logger = common.NewLogger("debug")
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	onDropped := func(re *ingest.RowError) {
		logger.Info().Str("error", re.Error()).Msg("dropped malformed row")
	}

	transactions, err := ingest.ReadCSV(in, onDropped)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	engine := ledger.NewEngine()
	for _, tx := range transactions {
		if err := engine.Process(tx); err != nil {
			logger.Info().
				Uint16("client", tx.Client).
				Uint32("tx", tx.TX).
				Str("error", err.Error()).
				Msg("transaction rejected")
		}
	}

	return ledger.WriteSnapshot(os.Stdout, engine.Snapshot())
}

// serveCmd launches the same JSON/HTTP front as cmd/ledger-server, for
// operators who already have ledger-cli on PATH and want the server
// without a second binary.
func serveCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON/HTTP front over a fresh, empty engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.NewApp(configPath)
			if err != nil {
				return err
			}
			common.PrintBanner(a.Config, a.Logger)
			handler := httpapi.NewRouter(a.Engine, a.Config, a.Logger)
			addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
			a.Logger.Info().Str("addr", addr).Msg("starting HTTP server")
			return http.ListenAndServe(addr, handler)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	return cmd
}

// versionCmd prints the ldflags-injected build identity.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, build, and commit information",
		RunE: func(cmd *cobra.Command, args []string) error {
			common.LoadVersionFromFile()
			fmt.Println(common.GetFullVersion())
			return nil
		},
	}
}
