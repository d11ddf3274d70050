package cli

import (
	"time"

	"github.com/julianstephens/sportlog/internal/backup"
	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/diary"
	"github.com/julianstephens/sportlog/internal/logger"
	"github.com/julianstephens/sportlog/internal/storage"
	"github.com/julianstephens/sportlog/internal/storage/sqlite"
)

type Context struct {
	Store storage.Provider
	Diary *diary.Store
	Now   func() time.Time
}

// NewContext wires a diary to store. The diary stamps entries with c.Now, so
// overriding Now after construction moves both dates and timestamps.
func NewContext(store storage.Provider) *Context {
	c := &Context{Store: store, Now: time.Now}
	c.Diary = diary.New(store, diary.WithClock(c.now))
	return c
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Today returns the current date in entry date format.
func (c *Context) Today() string {
	return c.now().Format(constants.DateFormat)
}

// SQLitePath returns the database file path when the store is SQLite-backed.
func (c *Context) SQLitePath() (string, bool) {
	s, ok := c.Store.(*sqlite.Store)
	if !ok {
		return "", false
	}
	return s.GetConfigPath(), true
}

// PerformAutomaticBackup snapshots a SQLite database and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	path, ok := c.SQLitePath()
	if !ok {
		logger.Debug("Skipping automatic backup for non-SQLite storage", "store", c.Store.GetConfigPath())
		return
	}
	if _, err := backup.NewManager(path).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
