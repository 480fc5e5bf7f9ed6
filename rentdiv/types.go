// Package rentdiv defines configuration, result types, and sentinel errors
// for the envy-free rent division solver.
package rentdiv

import "errors"

// simplexSize is the fixed problem dimension: three housemates, three rooms.
// The Sperner labelling below is specific to a 2-simplex; generalizing it is
// out of scope.
const simplexSize = 3

// Default tunables, mirroring DefaultConfig.
const (
	// DefaultEps is the tolerance for sum checks, zero clamping, and
	// convergence detection.
	DefaultEps = 0.01

	// DefaultRounding is the number of decimal places coordinates are
	// rounded to when a point is constructed.
	DefaultRounding = 3

	// DefaultMaxIterations caps the refinement loop.
	DefaultMaxIterations = 1000

	// DefaultTotalRent is the rent split across rooms by DefaultConfig.
	DefaultTotalRent = 1000
)

// Sentinel errors for rentdiv operations.
var (
	// ErrDimensionMismatch indicates a coordinate vector whose length does
	// not match the configured room count.
	ErrDimensionMismatch = errors.New("rentdiv: coordinate count must match room count")

	// ErrNegativeCoord indicates a negative price in a coordinate vector.
	ErrNegativeCoord = errors.New("rentdiv: negative price in coordinates")

	// ErrInvalidSimplexPoint indicates coordinates whose sum deviates from
	// the total rent by more than Eps.
	ErrInvalidSimplexPoint = errors.New("rentdiv: coordinates do not sum to the total rent")

	// ErrHousemateCount indicates the configuration does not name exactly
	// three distinct housemates.
	ErrHousemateCount = errors.New("rentdiv: exactly three distinct housemates required")

	// ErrRoomCount indicates the configuration does not name exactly three
	// distinct rooms.
	ErrRoomCount = errors.New("rentdiv: exactly three distinct rooms required")

	// ErrNonPositiveRent indicates TotalRent ≤ 0.
	ErrNonPositiveRent = errors.New("rentdiv: total rent must be positive")

	// ErrBadTolerance indicates Eps < 0 or Rounding < 0.
	ErrBadTolerance = errors.New("rentdiv: Eps and Rounding must be non-negative")

	// ErrBadIterationCap indicates MaxIterations ≤ 0.
	ErrBadIterationCap = errors.New("rentdiv: MaxIterations must be positive")

	// ErrMissingStrategy indicates a housemate without a configured strategy.
	ErrMissingStrategy = errors.New("rentdiv: housemate has no configured strategy")

	// ErrUnknownRoom indicates a strategy referencing a room id that is not
	// part of the configuration.
	ErrUnknownRoom = errors.New("rentdiv: strategy references a room outside the configuration")

	// ErrMissingCap indicates a capped strategy whose preference order names
	// a room without a price cap.
	ErrMissingCap = errors.New("rentdiv: capped strategy lacks a cap for an ordered room")

	// ErrNoGoodTriangle indicates that no fully-labelled child triangle was
	// found. This signals a broken boundary anchoring condition (a strategy
	// insisting on a free room) or a labelling bug — never convergence.
	ErrNoGoodTriangle = errors.New("rentdiv: no fully-labelled child triangle found")
)

// Status reports how the search loop terminated.
type Status int

const (
	// Converged — the final triangle's corners collapsed within Eps; the
	// result is an envy-free division.
	Converged Status = iota

	// Exhausted — the iteration cap was reached first; the result is a
	// best-effort approximation and must not be read as envy-free.
	Exhausted

	// Failed — no good child triangle existed (see ErrNoGoodTriangle).
	Failed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case Exhausted:
		return "Exhausted"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Config carries the fixed problem description and numeric tunables,
// threaded explicitly through point construction and the search loop.
type Config struct {
	// Housemates are the three distinct participant labels, in a fixed order.
	Housemates []string

	// Rooms are the three distinct room ids; coordinate i of every point is
	// the price of Rooms[i].
	Rooms []int

	// TotalRent is the positive sum every price vector must reach.
	TotalRent float64

	// Eps is the tolerance for sum checks, zero clamping, and convergence.
	Eps float64

	// Rounding is the number of decimal places coordinates are rounded to.
	Rounding int

	// MaxIterations caps the refinement loop.
	MaxIterations int
}

// DefaultConfig returns the classic three-flatmate setup: housemates A/B/C,
// rooms 1..3, a total rent of 1000, and the default tolerances.
func DefaultConfig() Config {
	return Config{
		Housemates:    []string{"A", "B", "C"},
		Rooms:         []int{1, 2, 3},
		TotalRent:     DefaultTotalRent,
		Eps:           DefaultEps,
		Rounding:      DefaultRounding,
		MaxIterations: DefaultMaxIterations,
	}
}

// RoomIndex returns the coordinate index of room id, or -1 when the room is
// not configured.
func (c *Config) RoomIndex(room int) int {
	for i, r := range c.Rooms {
		if r == room {
			return i
		}
	}

	return -1
}

// StepEvent describes one refinement step: the good child the loop descended
// into, with everything a tracer or visualizer needs to draw it.
type StepEvent struct {
	// Iteration counts refinement steps, starting at 1.
	Iteration int

	// ChildIndex is the position (0..5) of the selected child within its
	// parent's fixed scan order.
	ChildIndex int

	// Corners holds the three corner coordinate vectors of the child.
	Corners [3][]float64

	// Labels holds the housemate owning each corner.
	Labels [3]string

	// Choices holds the room each labelled corner selects.
	Choices [3]int
}

// Options configures observation of the search loop.
type Options struct {
	// OnStep, when non-nil, is invoked once per refinement step before the
	// convergence test. It must not retain the event's slices past the call.
	OnStep func(StepEvent)
}

// DefaultOptions returns Options with no observer attached.
func DefaultOptions() Options {
	return Options{}
}

// Result holds the outcome of the search loop.
type Result struct {
	// Status reports how the loop terminated.
	Status Status

	// Prices maps each room id to its price at the final barycentre.
	// Prices of an Exhausted run are best-effort, not envy-free.
	Prices map[int]float64

	// Assignment maps each housemate to the room they select at the final
	// prices. Distinct housemates get distinct rooms.
	Assignment map[string]int

	// Iterations is the number of refinement steps performed.
	Iterations int
}
