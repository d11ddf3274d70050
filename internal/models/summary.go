package models

import "fmt"

type summarizer struct{}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func (summarizer) Running(d RunningData) string {
	return fmt.Sprintf("%s km in %s min", orUnknown(d.Distance), orUnknown(d.Duration))
}

func (summarizer) Cycling(d CyclingData) string {
	where := "(Outdoor)"
	if d.Indoor {
		where = "(Indoor)"
	}
	return fmt.Sprintf("%s km in %s min %s", orUnknown(d.Distance), orUnknown(d.Duration), where)
}

func (summarizer) Gym(d GymData) string {
	return plural(len(d.Exercises), "exercise")
}

func (summarizer) Ballroom(d BallroomData) string {
	return plural(len(d.Dances), "dance")
}

// Summarize builds the one-line description shown in entry lists.
func Summarize(e Entry) string {
	if e.Data == nil {
		return ""
	}
	return Match[string](e.Data, summarizer{})
}
