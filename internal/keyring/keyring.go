// Package keyring stores the session-signing secret and database
// connection string in the OS keyring, so neither has to live in a
// dotfile or shell history.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/bodhi-os/bodhi/internal/constants"
)

var (
	// ErrNotFound is returned when no entry exists in the keyring
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetSecret retrieves the named secret from the OS keyring.
func GetSecret(name string) (string, error) {
	value, err := keyring.Get(constants.AppName, name)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return value, nil
}

// SetSecret stores the named secret in the OS keyring.
func SetSecret(name, value string) error {
	if value == "" {
		return errors.New("secret value cannot be empty")
	}
	if err := keyring.Set(constants.AppName, name, value); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	return nil
}

// DeleteSecret removes the named secret from the OS keyring.
func DeleteSecret(name string) error {
	err := keyring.Delete(constants.AppName, name)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is usable on this system.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-probe")
	return err == nil || err == keyring.ErrNotFound
}
