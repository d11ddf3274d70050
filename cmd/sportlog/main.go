package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/sportlog/internal/cli"
	"github.com/julianstephens/sportlog/internal/cli/backups"
	"github.com/julianstephens/sportlog/internal/cli/entries"
	"github.com/julianstephens/sportlog/internal/cli/settings"
	"github.com/julianstephens/sportlog/internal/cli/system"
	"github.com/julianstephens/sportlog/internal/cli/workouts"
	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/errors"
	"github.com/julianstephens/sportlog/internal/logger"
	"github.com/julianstephens/sportlog/internal/storage"
	"github.com/julianstephens/sportlog/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path, .json file, 'keyring', or PostgreSQL connection string. Credentials must NOT be embedded in the connection string." type:"string" default:"~/.config/sportlog/sportlog.db"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize sportlog storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log      workouts.LogCmd      `cmd:"" help:"Log a training session."`
	Entries  entries.EntriesCmd   `cmd:"" help:"List, edit and export diary entries."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage the ballroom dance catalog."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage database backups."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// configDir is where logs are written. Database paths log next to the
// database; connection strings fall back to the default directory.
func configDir(config string) string {
	config = strings.TrimSpace(config)
	if config != constants.KeyringConfigValue && !utils.IsPostgresConnString(config) && !strings.Contains(config, "host=") {
		if path, err := utils.ExpandPath(config); err == nil {
			return filepath.Dir(path)
		}
	}
	dir, err := utils.ExpandPath(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		return os.TempDir()
	}
	return dir
}

// needsLoad reports whether the selected command expects an already loaded
// store. init creates it, doctor reports on loading itself and keyring
// never touches it.
func needsLoad(command string) bool {
	switch strings.Fields(command)[0] {
	case "init", "doctor", "keyring":
		return false
	}
	return true
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Training diary for running, cycling, gym and ballroom sessions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := cli.ResolveConfig(CLI.Config, os.Getenv)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(config)}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	command := ctx.Command()
	store, err := cli.NewProvider(config)
	if err != nil {
		if strings.HasPrefix(command, "keyring") {
			// keyring set must work before a connection string exists
			store = storage.NewMemoryStore()
		} else {
			errors.Fatal(err)
		}
	}

	if needsLoad(command) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	logger.Debug("Running command", "command", command, "store", store.GetConfigPath())
	if err := ctx.Run(cli.NewContext(store)); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
