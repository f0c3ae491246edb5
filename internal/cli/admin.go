package cli

import (
	"errors"
	"fmt"

	"github.com/bodhi-os/bodhi/internal/keyring"
	"github.com/bodhi-os/bodhi/internal/seed"
)

// InitCmd creates the database schema.
type InitCmd struct{}

func (cmd *InitCmd) Run(ctx *Context) error {
	store, err := ctx.Store()
	if err != nil {
		return err
	}
	if err := store.Init(); err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("Initialized %s storage\n", store.GetConfigPath())
	return nil
}

// MigrateCmd applies any pending schema migrations.
type MigrateCmd struct{}

func (cmd *MigrateCmd) Run(ctx *Context) error {
	store, err := ctx.Store()
	if err != nil {
		return err
	}
	if err := store.Init(); err != nil {
		return err
	}
	defer store.Close()

	fmt.Println("Schema is up to date")
	return nil
}

// DoctorCmd checks the environment: database connectivity, schema
// version, keyring availability, and secret configuration.
type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ok := true

	store, err := ctx.Store()
	if err != nil {
		fmt.Printf("✗ storage configuration: %v\n", err)
		return errors.New("doctor found problems")
	}
	if err := store.Load(); err != nil {
		ok = false
		fmt.Printf("✗ database: %v\n", err)
	} else {
		defer store.Close()
		if err := store.Ping(); err != nil {
			ok = false
			fmt.Printf("✗ database ping: %v\n", err)
		} else {
			fmt.Printf("✓ database reachable (%s)\n", store.GetConfigPath())
		}
	}

	if keyring.IsAvailable() {
		fmt.Println("✓ OS keyring available")
	} else {
		fmt.Println("- OS keyring unavailable (secrets must come from the environment)")
	}

	if _, err := ctx.SessionSecret(); err != nil {
		ok = false
		fmt.Printf("✗ %v\n", err)
	} else {
		fmt.Println("✓ session secret configured")
	}

	if !ok {
		return errors.New("doctor found problems")
	}
	return nil
}

// SeedCmd loads the demo dataset: both users plus sample rows for every
// entity.
type SeedCmd struct{}

func (cmd *SeedCmd) Run(ctx *Context) error {
	store, err := ctx.Store()
	if err != nil {
		return err
	}
	if err := store.Init(); err != nil {
		return err
	}
	defer store.Close()

	summary, err := seed.Run(store)
	if err != nil {
		return err
	}
	fmt.Println(summary)
	return nil
}

// SecretSetCmd stores a secret in the OS keyring.
type SecretSetCmd struct {
	Name  string `arg:"" enum:"session-secret,database-url" help:"Secret name (session-secret or database-url)."`
	Value string `arg:"" help:"Secret value."`
}

func (cmd *SecretSetCmd) Run(ctx *Context) error {
	if err := keyring.SetSecret(cmd.Name, cmd.Value); err != nil {
		return err
	}
	fmt.Printf("Stored %s in the OS keyring\n", cmd.Name)
	return nil
}

// SecretDeleteCmd removes a secret from the OS keyring.
type SecretDeleteCmd struct {
	Name string `arg:"" enum:"session-secret,database-url" help:"Secret name (session-secret or database-url)."`
}

func (cmd *SecretDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteSecret(cmd.Name); err != nil {
		return err
	}
	fmt.Printf("Removed %s from the OS keyring\n", cmd.Name)
	return nil
}
