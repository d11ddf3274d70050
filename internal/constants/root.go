package constants

import tea "github.com/charmbracelet/bubbletea"

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName            = "sportlog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/sportlog/sportlog.db"
	ConnectionEnvVar   = "SPORTLOG_DB_CONNECTION"
	KeyringConfigValue = "keyring"
	Version            = "v0.2.0"

	// DateFormat is the date format used for entry dates (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DisplayTimeFormat renders entry timestamps in lists
	DisplayTimeFormat = "2006-01-02 15:04"

	// Storage keys
	EntriesKey  = "trainingDiaryEntries"
	SettingsKey = "trainingDiarySettings"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "sportlog-"
	BackupFileSuffix = ".db"

	// Rating bounds
	MinRating = 0
	MaxRating = 5
)

// Session States
const (
	StateHome SessionState = iota
	StateEntries
	StateSettings
	StateForm
	StateConfirmClear
)

// DefaultDances is the dance catalog used until the user changes it in settings.
var DefaultDances = []string{
	"Waltz",
	"Tango",
	"Viennese Waltz",
	"Foxtrot",
	"Quickstep",
	"Samba",
	"Cha Cha",
	"Rumba",
	"Paso Doble",
	"Jive",
}
