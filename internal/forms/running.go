package forms

import (
	"github.com/julianstephens/sportlog/internal/metrics"
	"github.com/julianstephens/sportlog/internal/models"
)

// RunningForm collects a run. Pace is kept in sync with distance and duration.
type RunningForm struct {
	Date     string
	distance string
	duration string
	pace     string
	Rating   int
	Notes    string
}

func NewRunningForm(today string) *RunningForm {
	return &RunningForm{Date: today}
}

func (f *RunningForm) Sport() models.Sport { return models.SportRunning }

func (f *RunningForm) Distance() string { return f.distance }
func (f *RunningForm) Duration() string { return f.duration }

// Pace is empty whenever distance or duration is not a positive number.
func (f *RunningForm) Pace() string { return f.pace }

func (f *RunningForm) SetDistance(v string) {
	f.distance = v
	f.recompute()
}

func (f *RunningForm) SetDuration(v string) {
	f.duration = v
	f.recompute()
}

func (f *RunningForm) SetRating(r int) {
	f.Rating = models.ClampRating(r)
}

func (f *RunningForm) recompute() {
	f.pace, _ = metrics.Pace(f.distance, f.duration)
}

func (f *RunningForm) Load(d models.RunningData) {
	f.Date = d.Date
	f.distance = d.Distance
	f.duration = d.Duration
	f.Rating = models.ClampRating(d.Rating)
	f.Notes = d.Notes
	f.recompute()
}

func (f *RunningForm) Payload() models.Payload {
	return models.RunningData{
		Date:     f.Date,
		Distance: f.distance,
		Duration: f.duration,
		Pace:     f.pace,
		Rating:   f.Rating,
		Notes:    f.Notes,
	}
}
