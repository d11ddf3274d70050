package models

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/sportlog/internal/constants"
)

// Payload is the sport-specific data of an entry. It is implemented only by
// RunningData, CyclingData, GymData and BallroomData.
type Payload interface {
	Sport() Sport
	isPayload()
}

// PayloadVisitor handles every payload variant. Adding a sport adds a method
// here, so every visitor in the tree stops compiling until it handles it.
type PayloadVisitor[T any] interface {
	Running(RunningData) T
	Cycling(CyclingData) T
	Gym(GymData) T
	Ballroom(BallroomData) T
}

// Match dispatches p to the visitor method for its variant.
func Match[T any](p Payload, v PayloadVisitor[T]) T {
	switch d := p.(type) {
	case RunningData:
		return v.Running(d)
	case *RunningData:
		return v.Running(*d)
	case CyclingData:
		return v.Cycling(d)
	case *CyclingData:
		return v.Cycling(*d)
	case GymData:
		return v.Gym(d)
	case *GymData:
		return v.Gym(*d)
	case BallroomData:
		return v.Ballroom(d)
	case *BallroomData:
		return v.Ballroom(*d)
	default:
		panic(fmt.Sprintf("models: unhandled payload type %T", p))
	}
}

// RunningData is the payload of a running entry. Distance and Duration are
// kept as entered; Pace is derived and empty when it cannot be computed.
type RunningData struct {
	Date     string `json:"date"`
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	Pace     string `json:"pace,omitempty"`
	Rating   int    `json:"rating"`
	Notes    string `json:"notes"`
}

func (RunningData) Sport() Sport { return SportRunning }
func (RunningData) isPayload()   {}

// CyclingData is the payload of a cycling entry.
type CyclingData struct {
	Date     string `json:"date"`
	Indoor   bool   `json:"indoor"`
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	AvgSpeed string `json:"avgSpeed,omitempty"`
	Rating   int    `json:"rating"`
	Notes    string `json:"notes"`
}

func (CyclingData) Sport() Sport { return SportCycling }
func (CyclingData) isPayload()   {}

// Exercise is one row of a gym session.
type Exercise struct {
	Name   string `json:"name"`
	Sets   string `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
	Rating int    `json:"rating"`
}

// GymData is the payload of a gym entry.
type GymData struct {
	Date      string     `json:"date"`
	Exercises []Exercise `json:"exercises"`
	Notes     string     `json:"notes"`
}

func (GymData) Sport() Sport { return SportGym }
func (GymData) isPayload()   {}

// DanceFeedback holds the comments for a single dance in a ballroom session.
type DanceFeedback struct {
	Name     string `json:"name"`
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating"`
}

// BallroomData is the payload of a ballroom entry. PerDanceFeedback is
// aligned with Dances.
type BallroomData struct {
	Date             string          `json:"date"`
	Dances           []string        `json:"dances"`
	PerDanceFeedback []DanceFeedback `json:"perDanceFeedback"`
	Notes            string          `json:"notes"`
}

func (BallroomData) Sport() Sport { return SportBallroom }
func (BallroomData) isPayload()   {}

// DecodePayload decodes raw JSON into the payload variant for sport.
func DecodePayload(sport Sport, raw json.RawMessage) (Payload, error) {
	if len(raw) == 0 || string(raw) == "null" {
		raw = json.RawMessage("{}")
	}
	switch sport {
	case SportRunning:
		var d RunningData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("failed to decode running data: %w", err)
		}
		return d, nil
	case SportCycling:
		var d CyclingData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("failed to decode cycling data: %w", err)
		}
		return d, nil
	case SportGym:
		var d GymData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("failed to decode gym data: %w", err)
		}
		return d, nil
	case SportBallroom:
		var d BallroomData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("failed to decode ballroom data: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown sport: %q", sport)
	}
}

// ClampRating limits a rating to the 0-5 star range.
func ClampRating(r int) int {
	if r < constants.MinRating {
		return constants.MinRating
	}
	if r > constants.MaxRating {
		return constants.MaxRating
	}
	return r
}
