package rentdiv_test

import (
	"testing"

	"github.com/Numball/Fair-Division/rentdiv"
	"github.com/stretchr/testify/assert"
)

// TestCheapest_PicksMinimum verifies the cheapest-room choice.
func TestCheapest_PicksMinimum(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	s := rentdiv.NewCheapest()

	assert.Equal(t, 3, s.Choose([]float64{400, 350, 250}, &cfg))
	assert.Equal(t, 2, s.Choose([]float64{400, 200, 400}, &cfg))
}

// TestCheapest_TieBreaksLowestIndex verifies ties go to the lowest room
// index.
func TestCheapest_TieBreaksLowestIndex(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	s := rentdiv.NewCheapest()

	assert.Equal(t, 1, s.Choose([]float64{200, 200, 600}, &cfg), "tie between rooms 1 and 2 goes to 1")
	assert.Equal(t, 2, s.Choose([]float64{500, 250, 250}, &cfg), "tie between rooms 2 and 3 goes to 2")
}

// TestFixedRoom_PrefersItsRoom verifies the fixed choice away from the
// simplex boundary.
func TestFixedRoom_PrefersItsRoom(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	s := rentdiv.NewFixedRoom(2)

	assert.Equal(t, 2, s.Choose([]float64{600, 300, 100}, &cfg), "no free room, so the fixed room wins")
	assert.Equal(t, 2, s.Choose([]float64{100, 800, 100}, &cfg), "the fixed room wins even when expensive")
}

// TestFixedRoom_FallbackAtBoundary verifies the documented anchoring rule:
// when some other room is free while the fixed room carries the simplex
// maximum, the strategy falls back to cheapest-room behavior.
func TestFixedRoom_FallbackAtBoundary(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	s := rentdiv.NewFixedRoom(3)

	assert.Equal(t, 1, s.Choose([]float64{0, 0, 1000}, &cfg), "room 3 at the maximum, rooms 1 and 2 free")
	assert.Equal(t, 1, s.Choose([]float64{0, 400, 600}, &cfg), "room 1 free, fall back to it")
}

// TestFixedRoom_KeepsOwnFreeRoom verifies the fallback does not trigger when
// the free room is the fixed room itself.
func TestFixedRoom_KeepsOwnFreeRoom(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	s := rentdiv.NewFixedRoom(1)

	assert.Equal(t, 1, s.Choose([]float64{0, 400, 600}, &cfg))
}

// TestCappedOrder_FirstRoomUnderCap verifies the ordered scan over caps.
func TestCappedOrder_FirstRoomUnderCap(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	s := rentdiv.NewCappedOrder(1, []int{1, 2, 3}, map[int]float64{1: 500, 2: 500, 3: 0})

	assert.Equal(t, 1, s.Choose([]float64{400, 300, 300}, &cfg), "favorite under its cap")
	assert.Equal(t, 2, s.Choose([]float64{600, 300, 100}, &cfg), "favorite over cap, next in order under")
}

// TestCappedOrder_FallbackWhenAllOverCap verifies the contract stays total:
// with every room at or above its cap the strategy degrades to cheapest.
func TestCappedOrder_FallbackWhenAllOverCap(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	s := rentdiv.NewCappedOrder(1, []int{1, 2, 3}, map[int]float64{1: 100, 2: 100, 3: 0})

	assert.Equal(t, 3, s.Choose([]float64{400, 350, 250}, &cfg), "nothing affordable, take the cheapest")
}

// TestCappedOrder_BoundaryFallback verifies the capped variant shares the
// fixed-room anchoring rule, keyed on its favorite.
func TestCappedOrder_BoundaryFallback(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	s := rentdiv.NewCappedOrder(2, []int{2, 1, 3}, map[int]float64{1: 500, 2: 800, 3: 500})

	assert.Equal(t, 1, s.Choose([]float64{0, 700, 300}, &cfg), "room 1 free while the favorite is not")
	assert.Equal(t, 2, s.Choose([]float64{300, 400, 300}, &cfg), "interior point, ordered scan applies")
}

// TestRandom_SeededReproducible verifies identical seeds yield identical
// choice sequences, and that seed 0 maps to a fixed default stream.
func TestRandom_SeededReproducible(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	coords := []float64{300, 300, 400}

	a := rentdiv.NewRandom(42)
	b := rentdiv.NewRandom(42)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Choose(coords, &cfg), b.Choose(coords, &cfg), "same seed, same stream")
	}

	c := rentdiv.NewRandom(0)
	d := rentdiv.NewRandom(0)
	for i := 0; i < 32; i++ {
		assert.Equal(t, c.Choose(coords, &cfg), d.Choose(coords, &cfg), "seed 0 is a fixed default stream")
	}
}

// TestRandom_ReturnsConfiguredRooms verifies every random choice is a valid
// configured room id.
func TestRandom_ReturnsConfiguredRooms(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	s := rentdiv.NewRandom(7)

	for i := 0; i < 64; i++ {
		room := s.Choose([]float64{0, 0, 1000}, &cfg)
		assert.GreaterOrEqual(t, cfg.RoomIndex(room), 0, "choice must be a configured room")
	}
}
