package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/keyring"
	"github.com/julianstephens/sportlog/internal/storage"
	"github.com/julianstephens/sportlog/internal/storage/postgres"
	"github.com/julianstephens/sportlog/internal/storage/sqlite"
	"github.com/julianstephens/sportlog/internal/utils"
)

// ResolveConfig applies the connection environment variable when config is
// left at its default value.
func ResolveConfig(config string, getenv func(string) string) string {
	if config == constants.DefaultConfigPath {
		if env := strings.TrimSpace(getenv(constants.ConnectionEnvVar)); env != "" {
			return env
		}
	}
	return config
}

// NewProvider picks a storage backend from the --config value: a PostgreSQL
// URL or DSN, the word "keyring", a .json file or a SQLite database path.
func NewProvider(config string) (storage.Provider, error) {
	config = strings.TrimSpace(config)

	if config == constants.KeyringConfigValue {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, fmt.Errorf("no connection string in keyring, run '%s keyring set' first", constants.AppName)
			}
			return nil, err
		}
		return newPostgres(connStr)
	}

	if utils.IsPostgresConnString(config) || strings.Contains(config, "host=") {
		return newPostgres(config)
	}

	path, err := utils.ExpandPath(config)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return storage.NewJSONStore(path), nil
	}
	return sqlite.NewStore(path), nil
}

func newPostgres(connStr string) (storage.Provider, error) {
	if _, err := postgres.ValidateConnString(connStr); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, fmt.Errorf("%w: use .pgpass, PGPASSWORD or '%s keyring set' instead", err, constants.AppName)
		}
		return nil, err
	}
	return postgres.New(connStr), nil
}
