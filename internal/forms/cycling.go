package forms

import (
	"github.com/julianstephens/sportlog/internal/metrics"
	"github.com/julianstephens/sportlog/internal/models"
)

// CyclingForm collects a ride. Duration is in minutes; average speed is
// distance per hour.
type CyclingForm struct {
	Date     string
	Indoor   bool
	distance string
	duration string
	avgSpeed string
	Rating   int
	Notes    string
}

func NewCyclingForm(today string) *CyclingForm {
	return &CyclingForm{Date: today}
}

func (f *CyclingForm) Sport() models.Sport { return models.SportCycling }

func (f *CyclingForm) Distance() string { return f.distance }
func (f *CyclingForm) Duration() string { return f.duration }
func (f *CyclingForm) AvgSpeed() string { return f.avgSpeed }

func (f *CyclingForm) SetDistance(v string) {
	f.distance = v
	f.recompute()
}

func (f *CyclingForm) SetDuration(v string) {
	f.duration = v
	f.recompute()
}

func (f *CyclingForm) SetRating(r int) {
	f.Rating = models.ClampRating(r)
}

func (f *CyclingForm) recompute() {
	f.avgSpeed, _ = metrics.AvgSpeed(f.distance, f.duration)
}

func (f *CyclingForm) Load(d models.CyclingData) {
	f.Date = d.Date
	f.Indoor = d.Indoor
	f.distance = d.Distance
	f.duration = d.Duration
	f.Rating = models.ClampRating(d.Rating)
	f.Notes = d.Notes
	f.recompute()
}

func (f *CyclingForm) Payload() models.Payload {
	return models.CyclingData{
		Date:     f.Date,
		Indoor:   f.Indoor,
		Distance: f.distance,
		Duration: f.duration,
		AvgSpeed: f.avgSpeed,
		Rating:   f.Rating,
		Notes:    f.Notes,
	}
}
