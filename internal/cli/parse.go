package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/models"
)

// DanceArg is a parsed --dance flag value.
type DanceArg struct {
	Name     string
	Rating   int
	Feedback string
	// HasRating and HasFeedback report which optional parts were given, so
	// an edit can leave the others untouched.
	HasRating   bool
	HasFeedback bool
}

// ValidateRating rejects ratings outside 0-5.
func ValidateRating(r int) error {
	if r < constants.MinRating || r > constants.MaxRating {
		return fmt.Errorf("rating %d out of range %d-%d", r, constants.MinRating, constants.MaxRating)
	}
	return nil
}

// ParseRating parses and validates a 0-5 rating.
func ParseRating(s string) (int, error) {
	r, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q", s)
	}
	if err := ValidateRating(r); err != nil {
		return 0, err
	}
	return r, nil
}

// ParseExercise parses "name:sets:reps:weight[:rating]". Sets, reps and
// weight are kept as entered.
func ParseExercise(raw string) (models.Exercise, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 4 || len(parts) > 5 {
		return models.Exercise{}, fmt.Errorf("invalid exercise %q (expected name:sets:reps:weight[:rating])", raw)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return models.Exercise{}, fmt.Errorf("invalid exercise %q: name is required", raw)
	}

	ex := models.Exercise{Name: parts[0], Sets: parts[1], Reps: parts[2], Weight: parts[3]}
	if len(parts) == 5 && parts[4] != "" {
		r, err := ParseRating(parts[4])
		if err != nil {
			return models.Exercise{}, fmt.Errorf("exercise %q: %w", parts[0], err)
		}
		ex.Rating = r
	}
	return ex, nil
}

// ParseDance parses "name[:rating[:feedback]]". Feedback may contain colons.
func ParseDance(raw string) (DanceArg, error) {
	parts := strings.SplitN(raw, ":", 3)
	d := DanceArg{Name: strings.TrimSpace(parts[0])}
	if d.Name == "" {
		return DanceArg{}, fmt.Errorf("invalid dance %q: name is required", raw)
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		r, err := ParseRating(parts[1])
		if err != nil {
			return DanceArg{}, fmt.Errorf("dance %q: %w", d.Name, err)
		}
		d.Rating = r
		d.HasRating = true
	}
	if len(parts) > 2 {
		d.Feedback = strings.TrimSpace(parts[2])
		d.HasFeedback = true
	}
	return d, nil
}

// MatchDance finds name in catalog ignoring case and returns the catalog
// spelling.
func MatchDance(name string, catalog []string) (string, bool) {
	for _, c := range catalog {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}
