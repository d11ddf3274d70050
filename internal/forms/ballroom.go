package forms

import (
	"slices"

	"github.com/julianstephens/sportlog/internal/models"
)

type danceState struct {
	feedback string
	rating   int
}

// BallroomForm collects a ballroom session over a catalog of dance names
// supplied at construction. Deselecting a dance drops its feedback and rating.
type BallroomForm struct {
	Date     string
	Notes    string
	catalog  []string
	order    []string
	selected map[string]*danceState
}

func NewBallroomForm(today string, catalog []string) *BallroomForm {
	return &BallroomForm{
		Date:     today,
		catalog:  slices.Clone(catalog),
		selected: make(map[string]*danceState),
	}
}

func (f *BallroomForm) Sport() models.Sport { return models.SportBallroom }

// Catalog returns the selectable dance names.
func (f *BallroomForm) Catalog() []string {
	return slices.Clone(f.catalog)
}

// IsSelected reports whether name is currently selected.
func (f *BallroomForm) IsSelected(name string) bool {
	_, ok := f.selected[name]
	return ok
}

// Toggle selects or deselects name and reports the new selection state.
func (f *BallroomForm) Toggle(name string) bool {
	if f.IsSelected(name) {
		f.deselect(name)
		return false
	}
	f.selectDance(name)
	return true
}

// SetSelection replaces the selection with names, keeping feedback for dances
// that stay selected.
func (f *BallroomForm) SetSelection(names []string) {
	for _, name := range slices.Clone(f.order) {
		if !slices.Contains(names, name) {
			f.deselect(name)
		}
	}
	for _, name := range names {
		f.selectDance(name)
	}
}

func (f *BallroomForm) selectDance(name string) {
	if f.IsSelected(name) {
		return
	}
	f.selected[name] = &danceState{}
	f.order = append(f.order, name)
}

func (f *BallroomForm) deselect(name string) {
	delete(f.selected, name)
	f.order = slices.DeleteFunc(f.order, func(n string) bool { return n == name })
}

// SetFeedback stores feedback for a selected dance. It is ignored for
// dances that are not selected.
func (f *BallroomForm) SetFeedback(name, feedback string) {
	if st, ok := f.selected[name]; ok {
		st.feedback = feedback
	}
}

// SetRating stores the rating for a selected dance.
func (f *BallroomForm) SetRating(name string, rating int) {
	if st, ok := f.selected[name]; ok {
		st.rating = models.ClampRating(rating)
	}
}

// Feedback returns the feedback and rating of a selected dance.
func (f *BallroomForm) Feedback(name string) (string, int) {
	if st, ok := f.selected[name]; ok {
		return st.feedback, st.rating
	}
	return "", 0
}

// Selected returns the selected dances, catalog dances first in catalog
// order, followed by any selected dance that is not in the catalog.
func (f *BallroomForm) Selected() []string {
	var names []string
	for _, name := range f.catalog {
		if f.IsSelected(name) {
			names = append(names, name)
		}
	}
	for _, name := range f.order {
		if !slices.Contains(f.catalog, name) {
			names = append(names, name)
		}
	}
	return names
}

// Load restores a saved session. Dances no longer in the catalog stay
// selected so editing does not silently drop them.
func (f *BallroomForm) Load(d models.BallroomData) {
	f.Date = d.Date
	f.Notes = d.Notes
	f.order = nil
	f.selected = make(map[string]*danceState)
	for _, name := range d.Dances {
		f.selectDance(name)
	}
	for _, fb := range d.PerDanceFeedback {
		f.SetFeedback(fb.Name, fb.Feedback)
		f.SetRating(fb.Name, fb.Rating)
	}
}

func (f *BallroomForm) Payload() models.Payload {
	dances := f.Selected()
	feedback := make([]models.DanceFeedback, 0, len(dances))
	for _, name := range dances {
		text, rating := f.Feedback(name)
		feedback = append(feedback, models.DanceFeedback{Name: name, Feedback: text, Rating: rating})
	}
	if dances == nil {
		dances = []string{}
	}
	return models.BallroomData{
		Date:             f.Date,
		Dances:           dances,
		PerDanceFeedback: feedback,
		Notes:            f.Notes,
	}
}
