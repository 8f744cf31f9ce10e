package session

// Stats summarizes a session for display and for the HTTP API.
type Stats struct {
	ID         string  `json:"id"`
	Seed       int64   `json:"seed"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	HBias      float64 `json:"horizontal_bias"`
	VBias      float64 `json:"vertical_bias"`
	Mode       string  `json:"mode"`
	Candidates int     `json:"candidates"`
	Examined   int     `json:"examined"`
	Opened     int     `json:"opened"`
	Regions    int     `json:"regions"`
	Discipline string  `json:"discipline,omitempty"`
	Steps      int     `json:"steps"`
	Moves      int     `json:"moves"`
	PathLength int     `json:"path_length"`
	Heat       string  `json:"heat"`
	HeatBound  int     `json:"heat_bound"`
}

// Stats returns a snapshot of the session's counters.
func (s *Session) Stats() Stats {
	st := Stats{
		ID:         s.id,
		Seed:       s.seed,
		Width:      s.opts.Width,
		Height:     s.opts.Height,
		HBias:      s.opts.HorizontalBias,
		VBias:      s.opts.VerticalBias,
		Mode:       s.Mode().String(),
		Candidates: s.gen.Len(),
		Examined:   s.gen.Cursor(),
		Opened:     s.grid.OpenCount(),
		Regions:    s.gen.Components(),
		Heat:       s.heat.String(),
		HeatBound:  s.heatBound,
	}
	if s.search != nil {
		st.Discipline = s.search.Discipline().String()
		st.Steps = s.search.Steps()
	}
	if s.walker != nil {
		st.Discipline = "manual"
		st.Moves = s.walker.Moves()
	}
	st.PathLength = len(s.Path())
	return st
}
