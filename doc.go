// Package fairdivision is an in-memory toolkit for splitting rent among
// housemates so that nobody envies anybody else's deal.
//
// 🚀 What is Fair-Division?
//
//	A compact, deterministic library that brings together:
//		• Simplex geometry: price splits as barycentric points of a triangle
//		• Sperner-style labelling: detect fully-labelled "good" micro-triangles
//		• Recursive barycentric subdivision with a fixed descent order
//		• Pluggable preference strategies: cheapest, fixed-room, capped, random
//
// ✨ Why choose Fair-Division?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seeded randomness only, reproducible runs
//   - Pure Go core – the solver has no service or storage surface
//   - Observable – per-step progress events for tracing and visualization
//
// Under the hood, everything is organized under:
//
//	rentdiv/           — PricePoint, Triangle, strategies & the search loop
//	internal/scenario/ — YAML scenario files → solver configuration
//	cmd/rentdiv/       — CLI driver with a colored refinement trace
//
// Quick ASCII example:
//
//	    (0,0,T)
//	      /\
//	     /  \
//	    /    \
//	(0,T,0)──(T,0,0)
//
//	the outer simplex: every corner prices one room at the full rent.
//
// Dive into rentdiv's package docs for the algorithm walkthrough.
//
//	go get github.com/Numball/Fair-Division/rentdiv
package fairdivision
