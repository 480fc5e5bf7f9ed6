package rentdiv_test

import (
	"testing"

	"github.com/Numball/Fair-Division/rentdiv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stuckStrategy insists on one room unconditionally, free or not. It
// deliberately violates the boundary anchoring contract so tests can drive
// the search into its structural failure mode.
type stuckStrategy struct{ room int }

func (s stuckStrategy) Choose(_ []float64, _ *rentdiv.Config) int { return s.room }

// TestNewRootTriangle_ExtremeSplitCorners verifies the documented outer
// simplex rule: corner k prices one room at the full rent, in the fixed
// order (0,0,T), (0,T,0), (T,0,0).
func TestNewRootTriangle_ExtremeSplitCorners(t *testing.T) {
	cfg := rentdiv.DefaultConfig()

	root, err := rentdiv.NewRootTriangle(&cfg, allCheapest())
	require.NoError(t, err)

	corners := root.Corners()
	assert.Equal(t, []float64{0, 0, 1000}, corners[0].Coords)
	assert.Equal(t, []float64{0, 1000, 0}, corners[1].Coords)
	assert.Equal(t, []float64{1000, 0, 0}, corners[2].Coords)
}

// TestNewRootTriangle_ValidatesConfig verifies configuration failures
// surface before any geometry is built.
func TestNewRootTriangle_ValidatesConfig(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	cfg.Rooms = []int{1, 1, 2}

	_, err := rentdiv.NewRootTriangle(&cfg, allCheapest())
	assert.ErrorIs(t, err, rentdiv.ErrRoomCount)
}

// TestTriangle_SubdivideProducesSixChildren verifies the barycentric
// subdivision geometry: six children, edge midpoints, and the centroid.
func TestTriangle_SubdivideProducesSixChildren(t *testing.T) {
	cfg := rentdiv.DefaultConfig()

	root, err := rentdiv.NewRootTriangle(&cfg, allCheapest())
	require.NoError(t, err)

	children, err := root.Subdivide()
	require.NoError(t, err)
	require.Len(t, children, 6)

	bary, err := root.Barycentre()
	require.NoError(t, err)
	assert.InDelta(t, 333.333, bary.Coords[0], 0.001)
	assert.InDelta(t, 333.333, bary.Coords[1], 0.001)
	assert.InDelta(t, 333.333, bary.Coords[2], 0.001)

	// First child: corner 0, the midpoint of edge 0-1, and the centroid.
	cs := children[0].Corners()
	assert.Equal(t, []float64{0, 0, 1000}, cs[0].Coords)
	assert.Equal(t, []float64{0, 500, 500}, cs[1].Coords)
	assert.Equal(t, bary.Coords, cs[2].Coords)
}

// TestTriangle_SubdivideIdempotent verifies repeated calls return the same
// cached structure, not a rebuilt one.
func TestTriangle_SubdivideIdempotent(t *testing.T) {
	cfg := rentdiv.DefaultConfig()

	root, err := rentdiv.NewRootTriangle(&cfg, allCheapest())
	require.NoError(t, err)

	first, err := root.Subdivide()
	require.NoError(t, err)
	second, err := root.Subdivide()
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, first[i], second[i], "child %d must be the cached instance", i)
	}
}

// TestTriangle_GoodChild_AllCheapest verifies a fully-labelled child exists
// at the root under the all-cheapest configuration, and that its corner
// choices cover every room with distinct owners.
func TestTriangle_GoodChild_AllCheapest(t *testing.T) {
	cfg := rentdiv.DefaultConfig()

	root, err := rentdiv.NewRootTriangle(&cfg, allCheapest())
	require.NoError(t, err)

	good, idx, err := root.GoodChild()
	require.NoError(t, err)
	require.NotNil(t, good)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 6)
	assert.True(t, good.Good())

	choices := good.Choices()
	assert.ElementsMatch(t, cfg.Rooms, choices[:], "choices must cover the full room set")

	labels := good.CornerLabels()
	assert.ElementsMatch(t, cfg.Housemates, labels[:], "a good child is owned by all three housemates")
}

// TestTriangle_GoodChild_ExistsAtDepth descends twelve levels under the
// anchored all-cheapest configuration and asserts a good child exists at
// every one of them. Twelve levels keep triangle diameters far above the
// Rounding granularity, the regime the search actually operates in.
func TestTriangle_GoodChild_ExistsAtDepth(t *testing.T) {
	cfg := rentdiv.DefaultConfig()

	current, err := rentdiv.NewRootTriangle(&cfg, allCheapest())
	require.NoError(t, err)

	for depth := 0; depth < 12; depth++ {
		next, _, err := current.GoodChild()
		require.NoError(t, err, "anchored strategies must yield a good child at depth %d", depth)
		current = next
	}
}

// TestTriangle_GoodChild_FailsWithoutAnchoring verifies that strategies
// violating the boundary condition surface ErrNoGoodTriangle instead of a
// silent wrong answer.
func TestTriangle_GoodChild_FailsWithoutAnchoring(t *testing.T) {
	cfg := rentdiv.DefaultConfig()
	strategies := map[string]rentdiv.Strategy{
		"A": stuckStrategy{room: 1},
		"B": stuckStrategy{room: 1},
		"C": stuckStrategy{room: 1},
	}

	root, err := rentdiv.NewRootTriangle(&cfg, strategies)
	require.NoError(t, err)

	_, _, err = root.GoodChild()
	assert.ErrorIs(t, err, rentdiv.ErrNoGoodTriangle)
}

// TestTriangle_CornerSumsHoldEverywhere walks a few levels and checks the
// simplex sum invariant on every corner the search constructs.
func TestTriangle_CornerSumsHoldEverywhere(t *testing.T) {
	cfg := rentdiv.DefaultConfig()

	current, err := rentdiv.NewRootTriangle(&cfg, allCheapest())
	require.NoError(t, err)

	for depth := 0; depth < 10; depth++ {
		children, err := current.Subdivide()
		require.NoError(t, err)
		for _, child := range children {
			for _, corner := range child.Corners() {
				var sum float64
				for _, v := range corner.Coords {
					sum += v
				}
				assert.InDelta(t, cfg.TotalRent, sum, cfg.Eps)
			}
		}
		next, _, err := current.GoodChild()
		require.NoError(t, err)
		current = next
	}
}
