// Package forms holds the per-sport data entry models. Each form keeps the raw
// field values the user typed, recomputes derived fields on every edit of
// their inputs, and produces the payload handed to the diary on save.
package forms

import (
	"fmt"

	"github.com/julianstephens/sportlog/internal/models"
)

// Form is the behaviour shared by all sport forms.
type Form interface {
	Sport() models.Sport
	Payload() models.Payload
}

// ForSport returns an empty form for sport with its date set to today. The
// catalog is only used by the ballroom form.
func ForSport(sport models.Sport, today string, catalog []string) (Form, error) {
	switch sport {
	case models.SportRunning:
		return NewRunningForm(today), nil
	case models.SportCycling:
		return NewCyclingForm(today), nil
	case models.SportGym:
		return NewGymForm(today), nil
	case models.SportBallroom:
		return NewBallroomForm(today, catalog), nil
	default:
		return nil, fmt.Errorf("unknown sport: %q", sport)
	}
}

type loader struct {
	catalog []string
}

func (loader) Running(d models.RunningData) Form {
	f := &RunningForm{}
	f.Load(d)
	return f
}

func (loader) Cycling(d models.CyclingData) Form {
	f := &CyclingForm{}
	f.Load(d)
	return f
}

func (loader) Gym(d models.GymData) Form {
	f := &GymForm{}
	f.Load(d)
	return f
}

func (l loader) Ballroom(d models.BallroomData) Form {
	f := NewBallroomForm(d.Date, l.catalog)
	f.Load(d)
	return f
}

// FromPayload builds a form pre-filled with an existing payload, for editing.
func FromPayload(p models.Payload, catalog []string) Form {
	return models.Match[Form](p, loader{catalog: catalog})
}
