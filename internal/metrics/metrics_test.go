package metrics

import "testing"

func TestPace(t *testing.T) {
	tests := []struct {
		name     string
		distance string
		duration string
		want     string
		wantOK   bool
	}{
		{"whole numbers", "5", "30", "6.00", true},
		{"fractional", "10", "47", "4.70", true},
		{"repeating decimal", "3", "20", "6.67", true},
		{"decimal distance", "21.1", "105", "4.98", true},
		{"surrounding spaces", " 5 ", " 25 ", "5.00", true},
		{"half tie", "8", "1", "0.13", true},
		{"unit suffix", "5km", "30", "", false},
		{"zero distance", "0", "30", "", false},
		{"zero duration", "5", "0", "", false},
		{"negative distance", "-5", "30", "", false},
		{"negative duration", "5", "-30", "", false},
		{"empty distance", "", "30", "", false},
		{"non numeric", "five", "30", "", false},
		{"nan", "NaN", "30", "", false},
		{"infinite", "Inf", "30", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pace(tt.distance, tt.duration)
			if ok != tt.wantOK {
				t.Fatalf("Pace(%q, %q) ok = %v, want %v", tt.distance, tt.duration, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Pace(%q, %q) = %q, want %q", tt.distance, tt.duration, got, tt.want)
			}
		})
	}
}

func TestAvgSpeed(t *testing.T) {
	tests := []struct {
		name     string
		distance string
		duration string
		want     string
		wantOK   bool
	}{
		{"one hour", "20", "60", "20.00", true},
		{"ninety minutes", "40", "90", "26.67", true},
		{"half hour", "12.5", "30", "25.00", true},
		{"short sprint", "1", "7", "8.57", true},
		{"half tie rounds up", "1.3", "16", "4.88", true},
		{"small half tie", "0.14", "16", "0.53", true},
		{"another half tie", "0.18", "16", "0.68", true},
		{"zero distance", "0", "60", "", false},
		{"zero duration", "20", "0", "", false},
		{"negative", "-20", "60", "", false},
		{"blank", "20", "", "", false},
		{"garbage", "20km", "60", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AvgSpeed(tt.distance, tt.duration)
			if ok != tt.wantOK {
				t.Fatalf("AvgSpeed(%q, %q) ok = %v, want %v", tt.distance, tt.duration, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("AvgSpeed(%q, %q) = %q, want %q", tt.distance, tt.duration, got, tt.want)
			}
		})
	}
}
