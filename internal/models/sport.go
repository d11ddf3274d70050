package models

import (
	"fmt"
	"strings"
)

// Sport identifies which payload variant an entry carries.
type Sport string

const (
	SportRunning  Sport = "Running"
	SportCycling  Sport = "Cycling"
	SportGym      Sport = "Gym"
	SportBallroom Sport = "Ballroom"
)

// SportInfo describes how a sport is presented in menus.
type SportInfo struct {
	Sport Sport
	Key   string
	Icon  string
}

var sports = []SportInfo{
	{Sport: SportRunning, Key: "running", Icon: "🏃"},
	{Sport: SportCycling, Key: "cycling", Icon: "🚴"},
	{Sport: SportGym, Key: "gym", Icon: "🏋️"},
	{Sport: SportBallroom, Key: "ballroom", Icon: "💃"},
}

// AllSports returns the supported sports in menu order.
func AllSports() []SportInfo {
	out := make([]SportInfo, len(sports))
	copy(out, sports)
	return out
}

// ParseSport resolves a sport by name or key, ignoring case.
func ParseSport(s string) (Sport, error) {
	s = strings.TrimSpace(s)
	for _, info := range sports {
		if strings.EqualFold(s, string(info.Sport)) || strings.EqualFold(s, info.Key) {
			return info.Sport, nil
		}
	}
	return "", fmt.Errorf("unknown sport: %q", s)
}

// Valid reports whether s is one of the supported sports.
func (s Sport) Valid() bool {
	switch s {
	case SportRunning, SportCycling, SportGym, SportBallroom:
		return true
	}
	return false
}

// Info returns the menu metadata for the sport.
func (s Sport) Info() SportInfo {
	for _, info := range sports {
		if info.Sport == s {
			return info
		}
	}
	return SportInfo{Sport: s, Key: strings.ToLower(string(s))}
}
