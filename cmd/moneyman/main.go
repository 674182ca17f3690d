// Command moneyman is a local personal finance tracker: record income,
// expense, lend and borrow transactions, and view totals, period breakdowns
// and per-person balances. All state lives in a local store; there is no
// server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mkhatri/moneyman/internal/config"
	"github.com/mkhatri/moneyman/internal/storage"
	"github.com/mkhatri/moneyman/internal/storage/jsonfile"
	"github.com/mkhatri/moneyman/internal/storage/sqlite"
	"github.com/mkhatri/moneyman/internal/tracker"
	"github.com/mkhatri/moneyman/pkg/logging"
)

// appContext carries the wired tracker and config to every command.
type appContext struct {
	ctx     context.Context
	tracker *tracker.Tracker
	cfg     *config.Config
}

var cli struct {
	Add      addCmd      `cmd:"" help:"Record a transaction."`
	Rm       rmCmd       `cmd:"" help:"Remove a transaction by id."`
	Txns     txnsCmd     `cmd:"" help:"List transactions."`
	People   peopleCmd   `cmd:"" help:"Manage people."`
	Totals   totalsCmd   `cmd:"" help:"Show running totals per transaction type."`
	Report   reportCmd   `cmd:"" help:"Show a period breakdown."`
	Balances balancesCmd `cmd:"" help:"Show per-person balances."`
}

func main() {
	parsed := kong.Parse(&cli,
		kong.Name("moneyman"),
		kong.Description("Local personal finance tracker."),
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	app := &appContext{
		ctx:     ctx,
		tracker: tracker.New(ctx, store),
		cfg:     cfg,
	}
	parsed.FatalIfErrorf(parsed.Run(app))
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendJSONFile:
		return jsonfile.New(cfg.DataDir)
	default:
		return sqlite.New(cfg.DBPath)
	}
}
