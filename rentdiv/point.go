package rentdiv

import "math"

// Point is an immutable price split on the rent simplex: one non-negative
// price per room, summing to the total rent within Eps, plus the room each
// housemate's strategy selects at these prices.
//
// Points are value objects: sibling triangles that touch the same simplex
// location share the same *Point, and nothing mutates one after newPoint
// returns.
type Point struct {
	// Coords holds the price of Config.Rooms[i] at index i, zero-clamped
	// and rounded to Config.Rounding decimals.
	Coords []float64

	// Choices holds the room id selected by the strategy of
	// Config.Housemates[i] at index i, computed once at construction.
	Choices []int
}

// NewPoint constructs a simplex point from prices ordered like cfg.Rooms,
// asking the strategy of every configured housemate for its room choice.
// A housemate without a strategy yields ErrMissingStrategy; a strategy
// referencing an unconfigured room is rejected with the same sentinel
// Config.Validate would report, before any strategy is invoked.
func NewPoint(coords []float64, strategies map[string]Strategy, cfg *Config) (*Point, error) {
	ordered := make([]Strategy, len(cfg.Housemates))
	for i, h := range cfg.Housemates {
		s, ok := strategies[h]
		if !ok || s == nil {
			return nil, ErrMissingStrategy
		}
		if err := cfg.validateStrategy(s); err != nil {
			return nil, err
		}
		ordered[i] = s
	}

	return newPoint(coords, ordered, cfg)
}

// newPoint validates and normalizes coords, then records every housemate's
// room choice at the resulting prices.
//
// Normalization order: dimension check, negativity check on the raw values
// (clamping would silently swallow small negatives), then clamping of
// values below Eps to exactly 0 and rounding to Rounding decimals, and only
// then the sum check against TotalRent within Eps. The sum invariant binds
// the STORED coordinates, so it must run after clamping: a point whose raw
// sum is fine can still lose more than Eps of rent to the clamp when
// several coordinates sit just below the threshold. A room priced at ~0 is
// "free" — exactly 0 — which the strategies' boundary fallback rules key on.
//
// Errors: ErrDimensionMismatch, ErrInvalidSimplexPoint, ErrNegativeCoord.
//
// Complexity: O(rooms · housemates) — three strategy calls on a 2-simplex.
func newPoint(coords []float64, strategies []Strategy, cfg *Config) (*Point, error) {
	if len(coords) != len(cfg.Rooms) {
		return nil, ErrDimensionMismatch
	}

	for _, v := range coords {
		if v < 0 {
			return nil, ErrNegativeCoord
		}
	}

	clean := make([]float64, len(coords))
	var sum float64
	for i, v := range coords {
		if v < cfg.Eps {
			clean[i] = 0
			continue
		}
		clean[i] = roundTo(v, cfg.Rounding)
		sum += clean[i]
	}
	if math.Abs(sum-cfg.TotalRent) > cfg.Eps {
		return nil, ErrInvalidSimplexPoint
	}

	p := &Point{
		Coords:  clean,
		Choices: make([]int, len(cfg.Housemates)),
	}
	for i, s := range strategies {
		p.Choices[i] = s.Choose(p.Coords, cfg)
	}

	return p, nil
}

// Distance returns the Euclidean distance between two points.
func (p *Point) Distance(q *Point) float64 {
	var sum float64
	for i := range p.Coords {
		d := p.Coords[i] - q.Coords[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Equal reports whether every coordinate of p and q differs by less than eps.
func (p *Point) Equal(q *Point, eps float64) bool {
	for i := range p.Coords {
		if math.Abs(p.Coords[i]-q.Coords[i]) >= eps {
			return false
		}
	}

	return true
}

// lerp returns the raw coordinates of the linear blend (1-t)·p + t·q.
// t=0.5 yields an edge midpoint; t=2/3 from a corner toward the opposite
// midpoint yields the barycentre.
func lerp(p, q *Point, t float64) []float64 {
	out := make([]float64, len(p.Coords))
	for i := range out {
		out[i] = (1-t)*p.Coords[i] + t*q.Coords[i]
	}

	return out
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(v*scale) / scale
}
