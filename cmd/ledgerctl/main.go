package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/SscSPs/ledger_display/internal/cli"
	"github.com/SscSPs/ledger_display/internal/core/services"
	"github.com/SscSPs/ledger_display/internal/middleware"
	"github.com/SscSPs/ledger_display/internal/platform/config"
	"github.com/google/subcommands"
)

var output = flag.String("output", string(cli.OutputTerm), "Output form: term, markdown or html.")

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI diagnostics go to stderr so reports stay clean on stdout
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	app := cli.NewApp(services.NewServiceContainer(cfg))

	// Answers the shell and exits when invoked for completion (COMP_LINE set).
	app.Completion(flag.CommandLine).Complete("ledgerctl")

	commander := subcommands.NewCommander(flag.CommandLine, "ledgerctl")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	app.Register(commander)

	flag.Parse()
	app.Output = cli.Output(*output)

	ctx := middleware.WithLogger(context.Background(), logger)
	os.Exit(int(commander.Execute(ctx)))
}
