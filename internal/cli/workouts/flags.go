package workouts

import (
	"fmt"
	"strings"

	"github.com/julianstephens/sportlog/internal/cli"
	"github.com/julianstephens/sportlog/internal/forms"
	"github.com/julianstephens/sportlog/internal/models"
)

// CommonFlags are accepted by every sport.
type CommonFlags struct {
	Date  *string `help:"Session date (YYYY-MM-DD). Defaults to today when logging."`
	Notes *string `help:"Free-form notes."`
}

// EnduranceFlags are shared by running and cycling.
type EnduranceFlags struct {
	Distance *string `help:"Distance in km."`
	Duration *string `help:"Duration in minutes."`
	Rating   *int    `help:"Session rating 0-5."`
}

type CyclingFlags struct {
	Indoor *bool `help:"Indoor session (trainer/rollers)."`
}

type GymFlags struct {
	Exercise []string `help:"Exercise as name:sets:reps:weight[:rating]. Repeatable; appended in order." short:"e"`
}

type BallroomFlags struct {
	Dance     []string `help:"Dance as name[:rating[:feedback]]. Omitted parts keep their current values. Repeatable." short:"d"`
	DropDance []string `help:"Deselect a dance, discarding its feedback and rating. Repeatable."`
}

func (c CommonFlags) apply(date, notes *string) {
	if c.Date != nil {
		*date = strings.TrimSpace(*c.Date)
	}
	if c.Notes != nil {
		*notes = *c.Notes
	}
}

// Flags bundles every per-sport flag group. Only the groups relevant to the
// entry's sport are consulted.
type Flags struct {
	Common    CommonFlags
	Endurance EnduranceFlags
	Cycling   CyclingFlags
	Gym       GymFlags
	Ballroom  BallroomFlags
	// Catalog is the set of dances that may be newly selected.
	Catalog []string
}

// ApplyRunning merges flags into a running form.
func (f Flags) ApplyRunning(form *forms.RunningForm) error {
	f.Common.apply(&form.Date, &form.Notes)
	if f.Endurance.Distance != nil {
		form.SetDistance(strings.TrimSpace(*f.Endurance.Distance))
	}
	if f.Endurance.Duration != nil {
		form.SetDuration(strings.TrimSpace(*f.Endurance.Duration))
	}
	if f.Endurance.Rating != nil {
		if err := cli.ValidateRating(*f.Endurance.Rating); err != nil {
			return err
		}
		form.SetRating(*f.Endurance.Rating)
	}
	return nil
}

// ApplyCycling merges flags into a cycling form.
func (f Flags) ApplyCycling(form *forms.CyclingForm) error {
	f.Common.apply(&form.Date, &form.Notes)
	if f.Cycling.Indoor != nil {
		form.Indoor = *f.Cycling.Indoor
	}
	if f.Endurance.Distance != nil {
		form.SetDistance(strings.TrimSpace(*f.Endurance.Distance))
	}
	if f.Endurance.Duration != nil {
		form.SetDuration(strings.TrimSpace(*f.Endurance.Duration))
	}
	if f.Endurance.Rating != nil {
		if err := cli.ValidateRating(*f.Endurance.Rating); err != nil {
			return err
		}
		form.SetRating(*f.Endurance.Rating)
	}
	return nil
}

// ApplyGym merges flags into a gym form. Exercises are appended; a fresh
// form's blank first row is filled before new rows are added.
func (f Flags) ApplyGym(form *forms.GymForm) error {
	f.Common.apply(&form.Date, &form.Notes)
	for _, raw := range f.Gym.Exercise {
		ex, err := cli.ParseExercise(raw)
		if err != nil {
			return err
		}
		idx := len(form.Exercises()) - 1
		if idx < 0 || form.Exercises()[idx] != (models.Exercise{}) {
			idx = form.AddExercise()
		}
		if err := form.UpdateExercise(idx, func(e *models.Exercise) { *e = ex }); err != nil {
			return err
		}
	}
	return nil
}

// ApplyBallroom merges flags into a ballroom form. Dances already selected
// may be updated even if they have since left the catalog.
func (f Flags) ApplyBallroom(form *forms.BallroomForm) error {
	f.Common.apply(&form.Date, &form.Notes)

	for _, name := range f.Ballroom.DropDance {
		matched, ok := MatchSelected(form, name)
		if !ok {
			return fmt.Errorf("dance %q is not selected", name)
		}
		form.Toggle(matched)
	}

	for _, raw := range f.Ballroom.Dance {
		d, err := cli.ParseDance(raw)
		if err != nil {
			return err
		}
		name, ok := MatchSelected(form, d.Name)
		if !ok {
			name, ok = cli.MatchDance(d.Name, f.Catalog)
			if !ok {
				return fmt.Errorf("unknown or disabled dance %q (enabled: %s)", d.Name, strings.Join(f.Catalog, ", "))
			}
			form.Toggle(name)
		}
		// parts left out keep their stored values
		if d.HasRating {
			form.SetRating(name, d.Rating)
		}
		if d.HasFeedback {
			form.SetFeedback(name, d.Feedback)
		}
	}
	return nil
}

// MatchSelected finds a selected dance ignoring case.
func MatchSelected(form *forms.BallroomForm, name string) (string, bool) {
	return cli.MatchDance(name, form.Selected())
}

type edited struct {
	payload models.Payload
	err     error
}

// editor loads a saved payload into its form and applies flags on top.
type editor struct {
	flags Flags
}

func (e editor) Running(d models.RunningData) edited {
	form := forms.NewRunningForm(d.Date)
	form.Load(d)
	err := e.flags.ApplyRunning(form)
	return edited{form.Payload(), err}
}

func (e editor) Cycling(d models.CyclingData) edited {
	form := forms.NewCyclingForm(d.Date)
	form.Load(d)
	err := e.flags.ApplyCycling(form)
	return edited{form.Payload(), err}
}

func (e editor) Gym(d models.GymData) edited {
	form := forms.NewGymForm(d.Date)
	form.Load(d)
	err := e.flags.ApplyGym(form)
	return edited{form.Payload(), err}
}

func (e editor) Ballroom(d models.BallroomData) edited {
	form := forms.NewBallroomForm(d.Date, e.flags.Catalog)
	form.Load(d)
	err := e.flags.ApplyBallroom(form)
	return edited{form.Payload(), err}
}

// Edit returns p with flags merged in. Derived fields are recomputed.
func Edit(p models.Payload, flags Flags) (models.Payload, error) {
	res := models.Match[edited](p, editor{flags: flags})
	if res.err != nil {
		return nil, res.err
	}
	return res.payload, nil
}
