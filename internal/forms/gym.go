package forms

import (
	"fmt"

	"github.com/julianstephens/sportlog/internal/models"
)

// GymForm collects a gym session. Exercises can only be appended; there is
// no reordering or removal.
type GymForm struct {
	Date      string
	exercises []models.Exercise
	Notes     string
}

// NewGymForm starts with a single blank exercise.
func NewGymForm(today string) *GymForm {
	return &GymForm{Date: today, exercises: []models.Exercise{{}}}
}

func (f *GymForm) Sport() models.Sport { return models.SportGym }

// Exercises returns a copy of the exercise list.
func (f *GymForm) Exercises() []models.Exercise {
	out := make([]models.Exercise, len(f.exercises))
	copy(out, f.exercises)
	return out
}

// AddExercise appends a blank exercise and returns its index.
func (f *GymForm) AddExercise() int {
	f.exercises = append(f.exercises, models.Exercise{})
	return len(f.exercises) - 1
}

// UpdateExercise edits the exercise at index i in place.
func (f *GymForm) UpdateExercise(i int, fn func(*models.Exercise)) error {
	if i < 0 || i >= len(f.exercises) {
		return fmt.Errorf("exercise %d out of range (have %d)", i+1, len(f.exercises))
	}
	ex := f.exercises[i]
	fn(&ex)
	ex.Rating = models.ClampRating(ex.Rating)
	f.exercises[i] = ex
	return nil
}

func (f *GymForm) Load(d models.GymData) {
	f.Date = d.Date
	f.exercises = make([]models.Exercise, len(d.Exercises))
	copy(f.exercises, d.Exercises)
	f.Notes = d.Notes
}

func (f *GymForm) Payload() models.Payload {
	return models.GymData{
		Date:      f.Date,
		Exercises: f.Exercises(),
		Notes:     f.Notes,
	}
}
