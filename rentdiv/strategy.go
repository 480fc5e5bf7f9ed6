package rentdiv

import "math/rand"

// Strategy is a housemate's preference function: given a price vector over
// the configured rooms, it names the room that housemate would take.
//
// Contract:
//   - Total: a valid configured room id must be returned for every point of
//     the simplex, boundary included.
//   - Pure: the choice depends only on the coordinates and the
//     configuration. The seeded random variant is the single sanctioned
//     exception.
//   - Anchored: no strategy may select a room priced at 0 while another
//     room carries a price. This boundary condition is what makes a good
//     triangle exist at every depth; the fixed-room and capped variants
//     enforce it via their cheapest-room fallback.
type Strategy interface {
	// Choose returns the room id selected at the given prices.
	// coords is indexed like cfg.Rooms and must not be mutated.
	Choose(coords []float64, cfg *Config) int
}

// NewCheapest returns the strategy that always takes the cheapest room,
// breaking ties by the lowest room index.
func NewCheapest() Strategy { return cheapest{} }

// NewRandom returns a strategy choosing a uniformly random room.
// The stream is deterministic per seed; seed==0 selects a fixed default
// seed, so repeated runs stay reproducible either way.
//
// A random strategy does not honor the boundary anchoring contract, so a
// run using it may legitimately end with ErrNoGoodTriangle.
func NewRandom(seed int64) Strategy { return &random{rng: rngFromSeed(seed)} }

// NewFixedRoom returns the strategy that insists on room n, except at the
// simplex boundary: when some other room is free while room n is not, it
// falls back to cheapest-room behavior. Without that fallback the Sperner
// labelling loses its anchor and the search can fail.
func NewFixedRoom(room int) Strategy { return fixedRoom{room: room} }

// NewCappedOrder returns the strategy of a housemate with a per-room price
// cap: among the rooms of order, take the first priced strictly below its
// cap, with favorite enjoying the same boundary fallback as a fixed-room
// strategy. When no room is under its cap, fall back to cheapest-room
// behavior so the contract stays total.
//
// caps maps room id → cap; every room named in order needs an entry
// (validated at configuration time).
func NewCappedOrder(favorite int, order []int, caps map[int]float64) Strategy {
	o := make([]int, len(order))
	copy(o, order)
	c := make(map[int]float64, len(caps))
	for room, limit := range caps {
		c[room] = limit
	}

	return cappedOrder{favorite: favorite, order: o, caps: c}
}

type cheapest struct{}

func (cheapest) Choose(coords []float64, cfg *Config) int {
	best := 0
	for i := 1; i < len(coords); i++ {
		if coords[i] < coords[best] {
			best = i
		}
	}

	return cfg.Rooms[best]
}

type random struct{ rng *rand.Rand }

func (r *random) Choose(_ []float64, cfg *Config) int {
	return cfg.Rooms[r.rng.Intn(len(cfg.Rooms))]
}

type fixedRoom struct{ room int }

func (f fixedRoom) Choose(coords []float64, cfg *Config) int {
	if freeElsewhere(coords, cfg.RoomIndex(f.room)) {
		return cheapest{}.Choose(coords, cfg)
	}

	return f.room
}

type cappedOrder struct {
	favorite int
	order    []int
	caps     map[int]float64
}

func (c cappedOrder) Choose(coords []float64, cfg *Config) int {
	if freeElsewhere(coords, cfg.RoomIndex(c.favorite)) {
		return cheapest{}.Choose(coords, cfg)
	}
	for _, room := range c.order {
		if coords[cfg.RoomIndex(room)] < c.caps[room] {
			return room
		}
	}

	// Every room is at or above its cap; only the cheapest one is bearable.
	return cheapest{}.Choose(coords, cfg)
}

// freeElsewhere reports whether some room is free (priced exactly 0 after
// clamping) while the room at keep is not. This is the boundary trigger for
// the cheapest-room fallback.
func freeElsewhere(coords []float64, keep int) bool {
	if coords[keep] == 0 {
		return false
	}
	for _, v := range coords {
		if v == 0 {
			return true
		}
	}

	return false
}
