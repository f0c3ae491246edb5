// Package cli implements the bodhi commands: serving the API, database
// initialization and migration, seeding, exports, and secret
// management.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodhi-os/bodhi/internal/constants"
	"github.com/bodhi-os/bodhi/internal/keyring"
	"github.com/bodhi-os/bodhi/internal/storage"
	"github.com/bodhi-os/bodhi/internal/storage/postgres"
	"github.com/bodhi-os/bodhi/internal/storage/sqlite"
)

// Context carries shared state into command Run methods.
type Context struct {
	DataDir string
	Debug   bool

	store storage.Provider
}

// Store resolves the storage provider lazily: a DATABASE_URL (from the
// environment or the keyring) selects PostgreSQL, otherwise a local
// SQLite file under the data directory is used.
func (c *Context) Store() (storage.Provider, error) {
	if c.store != nil {
		return c.store, nil
	}

	connStr := resolveSecret("DATABASE_URL", constants.KeyringDatabaseURL)
	if connStr != "" {
		if !strings.HasPrefix(connStr, "postgres://") && !strings.HasPrefix(connStr, "postgresql://") {
			return nil, fmt.Errorf("DATABASE_URL must be a postgres:// URL, got %q", connStr)
		}
		if err := postgres.ValidateConnString(connStr); err != nil {
			return nil, err
		}
		c.store = postgres.New(connStr)
		return c.store, nil
	}

	c.store = sqlite.New(filepath.Join(c.DataDir, constants.AppName+".db"))
	return c.store, nil
}

// SessionSecret resolves the session signing secret from the
// environment or the keyring. The server refuses to start without one.
func (c *Context) SessionSecret() (string, error) {
	if secret := resolveSecret("SESSION_SECRET", constants.KeyringSessionSecret); secret != "" {
		return secret, nil
	}
	return "", errors.New("no session secret configured: set SESSION_SECRET or run 'bodhi secret set session-secret'")
}

// resolveSecret checks the environment first, then falls back to the OS
// keyring. A missing or unavailable keyring is not an error here; the
// caller decides whether an empty result is fatal.
func resolveSecret(envName, keyringName string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	if v, err := keyring.GetSecret(keyringName); err == nil {
		return v
	}
	return ""
}
