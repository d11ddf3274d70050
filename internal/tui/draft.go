package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/forms"
	"github.com/julianstephens/sportlog/internal/models"
)

// EnduranceFormModel holds the huh-bound values of a run or ride.
type EnduranceFormModel struct {
	Date     string
	Distance string
	Duration string
	Indoor   bool
	Rating   int
	Notes    string
}

type ExerciseFormModel struct {
	Name   string
	Sets   string
	Reps   string
	Weight string
	Rating int
}

type GymFormModel struct {
	Date       string
	Exercises  []*ExerciseFormModel
	Notes      string
	AddAnother bool
}

type DanceFormModel struct {
	Name     string
	Feedback string
	Rating   int
}

type BallroomFormModel struct {
	Date   string
	Dances []string
	Per    []*DanceFormModel
	Notes  string
}

// draft is an entry being logged or edited. It owns the forms model and the
// huh-bound values, and builds the huh form for the current step.
type draft struct {
	form      forms.Form
	timestamp int64

	endurance *EnduranceFormModel
	gym       *GymFormModel
	ballroom  *BallroomFormModel

	// ballroom is two-step: pick dances, then rate them.
	step int
}

func newDraft(f forms.Form, timestamp int64) *draft {
	d := &draft{form: f, timestamp: timestamp}
	switch f := f.(type) {
	case *forms.RunningForm:
		d.endurance = &EnduranceFormModel{
			Date:     f.Date,
			Distance: f.Distance(),
			Duration: f.Duration(),
			Rating:   f.Rating,
			Notes:    f.Notes,
		}
	case *forms.CyclingForm:
		d.endurance = &EnduranceFormModel{
			Date:     f.Date,
			Distance: f.Distance(),
			Duration: f.Duration(),
			Indoor:   f.Indoor,
			Rating:   f.Rating,
			Notes:    f.Notes,
		}
	case *forms.GymForm:
		d.gym = &GymFormModel{Date: f.Date, Notes: f.Notes}
		d.loadExercises(f)
	case *forms.BallroomForm:
		d.ballroom = &BallroomFormModel{Date: f.Date, Dances: f.Selected(), Notes: f.Notes}
	}
	return d
}

func (d *draft) editing() bool {
	return d.timestamp != 0
}

func (d *draft) loadExercises(f *forms.GymForm) {
	d.gym.Exercises = nil
	for _, ex := range f.Exercises() {
		d.gym.Exercises = append(d.gym.Exercises, &ExerciseFormModel{
			Name:   ex.Name,
			Sets:   ex.Sets,
			Reps:   ex.Reps,
			Weight: ex.Weight,
			Rating: ex.Rating,
		})
	}
}

// sync pushes the huh-bound values into the forms model so derived fields
// are recomputed.
func (d *draft) sync() {
	switch f := d.form.(type) {
	case *forms.RunningForm:
		v := d.endurance
		f.Date = v.Date
		f.SetDistance(v.Distance)
		f.SetDuration(v.Duration)
		f.SetRating(v.Rating)
		f.Notes = v.Notes
	case *forms.CyclingForm:
		v := d.endurance
		f.Date = v.Date
		f.Indoor = v.Indoor
		f.SetDistance(v.Distance)
		f.SetDuration(v.Duration)
		f.SetRating(v.Rating)
		f.Notes = v.Notes
	case *forms.GymForm:
		f.Date = d.gym.Date
		f.Notes = d.gym.Notes
		for i, ex := range d.gym.Exercises {
			_ = f.UpdateExercise(i, func(e *models.Exercise) {
				e.Name = ex.Name
				e.Sets = ex.Sets
				e.Reps = ex.Reps
				e.Weight = ex.Weight
				e.Rating = ex.Rating
			})
		}
	case *forms.BallroomForm:
		f.Date = d.ballroom.Date
		f.Notes = d.ballroom.Notes
		if d.step == 0 {
			f.SetSelection(d.ballroom.Dances)
			return
		}
		for _, fb := range d.ballroom.Per {
			f.SetFeedback(fb.Name, fb.Feedback)
			f.SetRating(fb.Name, fb.Rating)
		}
	}
}

// advance is called when the current huh form completes. It returns true
// when the draft is ready to be saved, false when another form follows.
func (d *draft) advance() bool {
	d.sync()
	switch f := d.form.(type) {
	case *forms.GymForm:
		if d.gym.AddAnother {
			d.gym.AddAnother = false
			f.AddExercise()
			d.loadExercises(f)
			return false
		}
	case *forms.BallroomForm:
		if d.step == 0 {
			d.step = 1
			d.ballroom.Per = nil
			for _, name := range f.Selected() {
				text, rating := f.Feedback(name)
				d.ballroom.Per = append(d.ballroom.Per, &DanceFormModel{Name: name, Feedback: text, Rating: rating})
			}
			return false
		}
	}
	return true
}

func (d *draft) title() string {
	verb := "Log"
	if d.editing() {
		verb = "Edit"
	}
	info := d.form.Sport().Info()
	return fmt.Sprintf("%s %s %s", verb, info.Icon, info.Sport)
}

// huhForm builds the huh form for the draft's current step.
func (d *draft) huhForm() *huh.Form {
	var groups []*huh.Group
	switch f := d.form.(type) {
	case *forms.RunningForm:
		groups = d.enduranceGroups("Pace", func() string {
			d.sync()
			return derived(f.Pace(), "min/km")
		}, false)
	case *forms.CyclingForm:
		groups = d.enduranceGroups("Average speed", func() string {
			d.sync()
			return derived(f.AvgSpeed(), "km/h")
		}, true)
	case *forms.GymForm:
		groups = d.gymGroups()
	case *forms.BallroomForm:
		if d.step == 0 {
			groups = d.danceSelectGroups(f)
		} else {
			groups = d.danceFeedbackGroups()
		}
	}
	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
}

func derived(value, unit string) string {
	if value == "" {
		return "Enter a positive distance and duration"
	}
	return value + " " + unit
}

func ratingSelect(title string, value *int) *huh.Select[int] {
	opts := make([]huh.Option[int], 0, constants.MaxRating-constants.MinRating+1)
	for r := constants.MinRating; r <= constants.MaxRating; r++ {
		stars := strings.Repeat("★", r) + strings.Repeat("☆", constants.MaxRating-r)
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%d)", stars, r), r))
	}
	return huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(value)
}

func (d *draft) enduranceGroups(derivedTitle string, derivedFn func() string, indoor bool) []*huh.Group {
	v := d.endurance
	fields := []huh.Field{
		huh.NewInput().
			Title("Date (YYYY-MM-DD)").
			Value(&v.Date),
		huh.NewInput().
			Title("Distance (km)").
			Value(&v.Distance),
		huh.NewInput().
			Title("Duration (min)").
			Value(&v.Duration),
		huh.NewNote().
			Title(derivedTitle).
			DescriptionFunc(derivedFn, v),
	}
	if indoor {
		fields = append(fields, huh.NewConfirm().
			Title("Indoor").
			Value(&v.Indoor))
	}
	fields = append(fields,
		ratingSelect("Rating", &v.Rating),
		huh.NewText().
			Title("Notes").
			Value(&v.Notes),
	)
	return []*huh.Group{huh.NewGroup(fields...).Title(d.title())}
}

func (d *draft) gymGroups() []*huh.Group {
	v := d.gym
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&v.Date),
		).Title(d.title()),
	}
	for i, ex := range v.Exercises {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Exercise").
				Value(&ex.Name),
			huh.NewInput().
				Title("Sets").
				Value(&ex.Sets),
			huh.NewInput().
				Title("Reps").
				Value(&ex.Reps),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&ex.Weight),
			ratingSelect("Rating", &ex.Rating),
		).Title(fmt.Sprintf("Exercise %d of %d", i+1, len(v.Exercises))))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewText().
			Title("Notes").
			Value(&v.Notes),
		huh.NewConfirm().
			Title("Add another exercise?").
			Value(&v.AddAnother),
	))
	return groups
}

func (d *draft) danceSelectGroups(f *forms.BallroomForm) []*huh.Group {
	v := d.ballroom
	names := f.Catalog()
	for _, name := range v.Dances {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&v.Date),
			huh.NewMultiSelect[string]().
				Title("Dances").
				Description("Only dances enabled in Settings are offered").
				Options(huh.NewOptions(names...)...).
				Value(&v.Dances),
		).Title(d.title()),
	}
}

func (d *draft) danceFeedbackGroups() []*huh.Group {
	v := d.ballroom
	var groups []*huh.Group
	for _, fb := range v.Per {
		groups = append(groups, huh.NewGroup(
			huh.NewText().
				Title(fb.Name+" feedback").
				Value(&fb.Feedback),
			ratingSelect(fb.Name+" rating", &fb.Rating),
		))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewText().
			Title("Notes").
			Value(&v.Notes),
	))
	return groups
}
