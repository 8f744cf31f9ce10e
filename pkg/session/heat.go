package session

import (
	"strings"

	"github.com/matzehuels/mazewalk/pkg/errors"
)

// HeatSource selects which end of the maze distances are measured from.
type HeatSource int

const (
	HeatOff HeatSource = iota
	HeatOrigin
	HeatDestination
)

func (h HeatSource) String() string {
	switch h {
	case HeatOrigin:
		return "origin"
	case HeatDestination:
		return "destination"
	default:
		return "off"
	}
}

// ParseHeatSource accepts "off", "origin" or "destination".
func ParseHeatSource(s string) (HeatSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "none":
		return HeatOff, nil
	case "origin", "start":
		return HeatOrigin, nil
	case "destination", "dest", "end":
		return HeatDestination, nil
	}
	return HeatOff, errors.New(errors.ErrCodeInvalidInput, "unknown heat source %q", s)
}

// HeatMap labels every reachable cell with its distance from src and returns
// the bound to scale colors by. HeatOff turns the heat map off and returns 0.
// While the heat map is on, it is recomputed after every step.
func (s *Session) HeatMap(src HeatSource) int {
	s.heat = src
	s.refreshHeat()
	return s.heatBound
}

// CycleHeat advances off → origin → destination → off and returns the new source.
func (s *Session) CycleHeat() HeatSource {
	s.HeatMap((s.heat + 1) % 3)
	return s.heat
}

// Heat returns the active source and its bound.
func (s *Session) Heat() (HeatSource, int) { return s.heat, s.heatBound }

func (s *Session) refreshHeat() {
	switch s.heat {
	case HeatOrigin:
		s.heatBound = s.grid.LabelDistances(s.grid.Origin())
	case HeatDestination:
		s.heatBound = s.grid.LabelDistances(s.grid.Destination())
	default:
		s.heatBound = 0
	}
}
