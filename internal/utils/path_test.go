package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde only", "~", home},
		{"tilde prefix", "~/.config/sportlog/sportlog.db", filepath.Join(home, ".config/sportlog/sportlog.db")},
		{"absolute", "/tmp/sportlog.db", "/tmp/sportlog.db"},
		{"relative", "data/sportlog.db", "data/sportlog.db"},
		{"tilde user form untouched", "~bob/db", "~bob/db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			if err != nil {
				t.Fatalf("ExpandPath(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsPostgresConnString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"postgres://user@localhost/sportlog", true},
		{"postgresql://localhost:5432/sportlog", true},
		{"/home/me/sportlog.db", false},
		{"keyring", false},
	}
	for _, tt := range tests {
		if got := IsPostgresConnString(tt.in); got != tt.want {
			t.Errorf("IsPostgresConnString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
