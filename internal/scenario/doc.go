// Package scenario loads solver configurations from YAML scenario files.
//
// A scenario names the housemates, the rooms, the total rent, the numeric
// tunables, and one preference strategy per housemate:
//
//	housemates: [A, B, C]
//	rooms: [1, 2, 3]
//	total_rent: 1000
//	strategies:
//	  A: {kind: capped, favorite: 1, order: [1, 2, 3], caps: {1: 500, 2: 500, 3: 0}}
//	  B: {kind: cheapest}
//	  C: {kind: fixed, room: 3}
//
// Strategy kinds: cheapest, random (seed), fixed (room), capped (favorite,
// order, caps). Omitted top-level fields fall back to rentdiv's defaults;
// everything else is validated by the solver itself.
package scenario
