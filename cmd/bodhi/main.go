package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/bodhi-os/bodhi/internal/cli"
	"github.com/bodhi-os/bodhi/internal/errors"
	"github.com/bodhi-os/bodhi/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	DataDir string `help:"Data directory for the SQLite database and logs." type:"path" default:"~/.config/bodhi"`
	Debug   bool   `help:"Enable debug logging."`

	Serve   cli.ServeCmd   `cmd:"" help:"Run the HTTP API server." default:"1"`
	Init    cli.InitCmd    `cmd:"" help:"Initialize bodhi storage."`
	Migrate cli.MigrateCmd `cmd:"" help:"Apply pending schema migrations."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Check database and secret configuration."`
	Seed    cli.SeedCmd    `cmd:"" help:"Load the demo dataset."`
	Export  cli.ExportCmd  `cmd:"" help:"Export one entity collection to CSV."`
	Backup  cli.BackupCmd  `cmd:"" help:"Write a full JSON backup for a user."`
	Secret  struct {
		Set    cli.SecretSetCmd    `cmd:"" help:"Store a secret in the OS keyring."`
		Delete cli.SecretDeleteCmd `cmd:"" help:"Remove a secret from the OS keyring."`
	} `cmd:"" help:"Manage secrets."`
}

func main() {
	// Optional; secrets may equally come from the keyring or the real
	// environment.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("bodhi"),
		kong.Description("Life operating system for two: habits, tasks, content, business, and goals"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: CLI.DataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		DataDir: CLI.DataDir,
		Debug:   CLI.Debug,
	}

	errors.Fatal(ctx.Run(appCtx))
}
