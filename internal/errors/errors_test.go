package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPrefixed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"simple error", errors.New("entry not found"), "Error: entry not found"},
		{"wrapped error", fmt.Errorf("failed to load store: %w", errors.New("no such file")), "Error: failed to load store: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prefixed(tt.err); got != tt.want {
				t.Errorf("prefixed() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrefixedf(t *testing.T) {
	got := prefixedf("unknown sport: %s", "curling")
	want := "Error: unknown sport: curling"
	if got != want {
		t.Errorf("prefixedf() = %q, want %q", got, want)
	}
}
