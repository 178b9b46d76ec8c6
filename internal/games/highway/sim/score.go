package sim

import "math"

// Score holds the run score. Total is always Distance + Collected after a
// Playing tick.
type Score struct {
	Collected int
	Distance  int
	Total     int
}

func (s *Score) recompute(z, scale float64) {
	s.Distance = int(math.Floor(z / scale))
	s.Total = s.Distance + s.Collected
}
