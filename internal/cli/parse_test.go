package cli

import (
	"testing"

	"github.com/julianstephens/sportlog/internal/models"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{" 5 ", 5, false},
		{"6", 0, true},
		{"-1", 0, true},
		{"good", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseRating(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRating(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRating(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseExercise(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    models.Exercise
		wantErr bool
	}{
		{"full", "Squat:3:5:100:4", models.Exercise{Name: "Squat", Sets: "3", Reps: "5", Weight: "100", Rating: 4}, false},
		{"no rating", "Bench Press:5:5:60", models.Exercise{Name: "Bench Press", Sets: "5", Reps: "5", Weight: "60"}, false},
		{"verbatim values", "Row:three:8-10:bodyweight", models.Exercise{Name: "Row", Sets: "three", Reps: "8-10", Weight: "bodyweight"}, false},
		{"too few parts", "Squat:3:5", models.Exercise{}, true},
		{"too many parts", "Squat:3:5:100:4:x", models.Exercise{}, true},
		{"missing name", ":3:5:100", models.Exercise{}, true},
		{"bad rating", "Squat:3:5:100:9", models.Exercise{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExercise(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseExercise(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseExercise(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDance(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    DanceArg
		wantErr bool
	}{
		{"name only", "Waltz", DanceArg{Name: "Waltz"}, false},
		{"with rating", "Tango:4", DanceArg{Name: "Tango", Rating: 4, HasRating: true}, false},
		{"with feedback", "Jive:3:kicks: sharper", DanceArg{Name: "Jive", Rating: 3, Feedback: "kicks: sharper", HasRating: true, HasFeedback: true}, false},
		{"empty rating", "Rumba::hips", DanceArg{Name: "Rumba", Feedback: "hips", HasFeedback: true}, false},
		{"zero rating", "Foxtrot:0", DanceArg{Name: "Foxtrot", HasRating: true}, false},
		{"empty feedback", "Quickstep:2:", DanceArg{Name: "Quickstep", Rating: 2, HasRating: true, HasFeedback: true}, false},
		{"missing name", ":3", DanceArg{}, true},
		{"bad rating", "Samba:x", DanceArg{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDance(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDance(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDance(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatchDance(t *testing.T) {
	catalog := []string{"Waltz", "Viennese Waltz"}

	if got, ok := MatchDance("viennese waltz", catalog); !ok || got != "Viennese Waltz" {
		t.Errorf("MatchDance = %q, %v", got, ok)
	}
	if _, ok := MatchDance("Salsa", catalog); ok {
		t.Error("MatchDance matched a dance outside the catalog")
	}
}
