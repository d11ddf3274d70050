// Package keyring stores the PostgreSQL connection string in the OS keyring
// so it never has to live in shell history or config files.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/sportlog/internal/constants"
)

var (
	ErrNotFound           = errors.New("credentials not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Account names a single secret under the application's keyring service.
type Account string

// ConnectionAccount holds the database connection string.
const ConnectionAccount Account = constants.DefaultKeyringUser

func (a Account) Get() (string, error) {
	v, err := gokeyring.Get(constants.AppName, string(a))
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

func (a Account) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s value cannot be empty", a)
	}
	if err := gokeyring.Set(constants.AppName, string(a), value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", a, err)
	}
	return nil
}

func (a Account) Delete() error {
	if err := gokeyring.Delete(constants.AppName, string(a)); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", a, err)
	}
	return nil
}

func GetConnectionString() (string, error) {
	return ConnectionAccount.Get()
}

func SetConnectionString(connStr string) error {
	return ConnectionAccount.Set(connStr)
}

func DeleteConnectionString() error {
	return ConnectionAccount.Delete()
}

// IsAvailable is a best-effort check: a read that fails with anything other
// than "not found" means there is no usable keyring.
func IsAvailable() bool {
	_, err := gokeyring.Get(constants.AppName, "availability-check")
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}
