package models

import "github.com/julianstephens/sportlog/internal/constants"

// Dance is one entry of the ballroom dance catalog.
type Dance struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Settings holds user preferences. An empty Settings (no dances) is what a
// failed read degrades to.
type Settings struct {
	Dances []Dance `json:"dances,omitempty"`
}

// DefaultSettings returns the built-in catalog with every dance enabled.
func DefaultSettings() Settings {
	dances := make([]Dance, len(constants.DefaultDances))
	for i, name := range constants.DefaultDances {
		dances[i] = Dance{Name: name, Enabled: true}
	}
	return Settings{Dances: dances}
}

// EnabledDances returns the names of enabled dances in catalog order.
func (s Settings) EnabledDances() []string {
	var names []string
	for _, d := range s.Dances {
		if d.Enabled {
			names = append(names, d.Name)
		}
	}
	return names
}

// Toggle flips the enabled flag of the named dance and reports whether the
// dance exists. The receiver's slice is copied first so callers holding the
// previous Settings value are unaffected.
func (s *Settings) Toggle(name string) bool {
	return s.update(name, func(d *Dance) { d.Enabled = !d.Enabled })
}

// SetEnabled sets the enabled flag of the named dance.
func (s *Settings) SetEnabled(name string, enabled bool) bool {
	return s.update(name, func(d *Dance) { d.Enabled = enabled })
}

func (s *Settings) update(name string, fn func(*Dance)) bool {
	dances := make([]Dance, len(s.Dances))
	copy(dances, s.Dances)
	found := false
	for i := range dances {
		if dances[i].Name == name {
			fn(&dances[i])
			found = true
		}
	}
	if found {
		s.Dances = dances
	}
	return found
}
