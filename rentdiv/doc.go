// Package rentdiv computes an envy-free rent division for three housemates
// and three rooms via Sperner-style simplex subdivision.
//
// 🚀 What is rentdiv?
//
//	The rent simplex is the set of non-negative price vectors over the three
//	rooms that sum to the total rent — geometrically a triangle. Each corner
//	of a candidate triangle is "owned" by one housemate, and that housemate's
//	preference strategy is asked which room it would take at the corner's
//	prices. A triangle is good when the three answers cover all three rooms.
//	Sperner's lemma guarantees a good triangle exists at every subdivision
//	level, so repeatedly zooming into a good child shrinks the triangle onto
//	a price vector where three different housemates want three different
//	rooms: an envy-free division.
//
// ✨ Key features:
//   - barycentric subdivision into six children with a fixed descent order
//   - consistent corner-ownership labelling propagated across depths
//   - pluggable preference strategies: cheapest, fixed-room, capped, random
//   - per-step progress events for tracing and visualization
//   - deterministic runs: seeded randomness only, no map-order dependence
//
// ⚙️ Usage:
//
//	import "github.com/Numball/Fair-Division/rentdiv"
//
//	cfg := rentdiv.DefaultConfig()
//	strategies := map[string]rentdiv.Strategy{
//	  "A": rentdiv.NewCheapest(),
//	  "B": rentdiv.NewFixedRoom(2),
//	  "C": rentdiv.NewFixedRoom(3),
//	}
//
//	res, err := rentdiv.Solve(&cfg, strategies, nil)
//	if err != nil {
//	  // handle ErrNoGoodTriangle or a configuration error
//	}
//	fmt.Println(res.Status, res.Prices, res.Assignment)
//
// Termination:
//
//   - Converged — the good child's corners collapsed within Eps; the result
//     is its barycentre and the corner-label room assignment.
//   - Exhausted — MaxIterations refinements passed without collapse; the
//     current barycentre is returned as a flagged best-effort result.
//   - Failed — no good child existed, which means a strategy violated the
//     boundary anchoring condition (it insisted on a free room).
//
// Complexity: each refinement evaluates 4 new points (3 midpoints + the
// barycentre), 3 strategy calls each, and scans 6 children — O(1) per step,
// O(MaxIterations) overall.
package rentdiv
