// Package rentdiv - search loop driving the simplex refinement.
//
// Design principles:
//   - Deterministic: fixed child scan order, strategy evaluation in
//     housemate order; no map iteration anywhere on the hot path.
//   - Strict sentinels: only errors from types.go.
//   - Sequential: one triangle in flight; the five rejected children and
//     the parent are dropped each step, so memory stays O(1).
package rentdiv

// Solve runs the refinement loop from the outer simplex until the good
// child collapses within cfg.Eps (Converged), the iteration cap passes
// (Exhausted — a flagged best-effort result, not an error), or no good
// child exists (Failed, with ErrNoGoodTriangle).
//
// A nil cfg means DefaultConfig; a nil opts means no progress events.
// Configuration problems surface before the first refinement step.
//
// Complexity: O(MaxIterations) steps, O(1) work and memory per step.
func Solve(cfg *Config, strategies map[string]Strategy, opts *Options) (Result, error) {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	var onStep func(StepEvent)
	if opts != nil {
		onStep = opts.OnStep
	}

	current, err := NewRootTriangle(cfg, strategies)
	if err != nil {
		return Result{Status: Failed}, err
	}

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		child, idx, err := current.GoodChild()
		if err != nil {
			return Result{Status: Failed, Iterations: iter - 1}, err
		}

		if onStep != nil {
			onStep(stepEvent(child, iter, idx))
		}

		if child.collapsed(cfg.Eps) {
			return finish(Converged, child, iter)
		}
		current = child
	}

	return finish(Exhausted, current, cfg.MaxIterations)
}

// stepEvent snapshots a freshly selected child for the observer. Corner
// coordinates are copied so the observer may retain them.
func stepEvent(t *Triangle, iteration, childIndex int) StepEvent {
	ev := StepEvent{
		Iteration:  iteration,
		ChildIndex: childIndex,
		Labels:     t.CornerLabels(),
		Choices:    t.Choices(),
	}
	for i, c := range t.corners {
		ev.Corners[i] = append([]float64(nil), c.Coords...)
	}

	return ev
}

// finish reads the final triangle out into a Result: barycentre prices per
// room, and the corner-label room assignment. The final triangle of any
// descended search has three distinct corner labels, so the assignment
// covers every housemate.
func finish(status Status, t *Triangle, iterations int) (Result, error) {
	bary, err := t.Barycentre()
	if err != nil {
		return Result{Status: Failed, Iterations: iterations}, err
	}

	res := Result{
		Status:     status,
		Prices:     make(map[int]float64, len(t.cfg.Rooms)),
		Assignment: make(map[string]int, len(t.cfg.Housemates)),
		Iterations: iterations,
	}
	for i, room := range t.cfg.Rooms {
		res.Prices[room] = bary.Coords[i]
	}

	labels := t.CornerLabels()
	choices := t.Choices()
	for i := range labels {
		res.Assignment[labels[i]] = choices[i]
	}

	return res, nil
}
