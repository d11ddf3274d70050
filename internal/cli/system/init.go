package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/sportlog/internal/cli"
	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/storage"
	"github.com/julianstephens/sportlog/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Delete the existing database file before initialization."`
	Source string `help:"Database path or connection string to copy entries and settings from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyFrom(ctx); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		fmt.Println("Copy completed successfully!")
	}

	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*postgres.Store); ok {
		return errors.New("--force is only supported for file-based storage")
	}

	path := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absPath, err := filepath.Abs(path)
		if err == nil {
			path = absPath
		}
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == path {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// copyFrom copies both diary documents verbatim from another provider.
func (c *InitCmd) copyFrom(ctx *cli.Context) error {
	source, err := cli.NewProvider(c.Source)
	if err != nil {
		return err
	}
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	for _, key := range []string{constants.EntriesKey, constants.SettingsKey} {
		value, err := source.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("  %s: nothing to copy\n", key)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s from source: %w", key, err)
		}
		if err := ctx.Store.Set(key, value); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
		fmt.Printf("  %s: copied\n", key)
	}

	fmt.Printf("  %d entries now stored\n", len(ctx.Diary.GetEntries()))
	return nil
}
