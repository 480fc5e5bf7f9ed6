package rentdiv

// Validate checks the configuration and the strategy map before a search
// starts, so that every failure mode of a bad setup surfaces ahead of the
// first refinement step.
//
// Checks, in order: housemate and room counts and distinctness, rent
// positivity, tolerance sanity, iteration cap, strategy coverage (every
// housemate needs one), and per-strategy room references.
//
// Errors: ErrHousemateCount, ErrRoomCount, ErrNonPositiveRent,
// ErrBadTolerance, ErrBadIterationCap, ErrMissingStrategy, ErrUnknownRoom,
// ErrMissingCap.
func (c *Config) Validate(strategies map[string]Strategy) error {
	if len(c.Housemates) != simplexSize || hasDupStrings(c.Housemates) {
		return ErrHousemateCount
	}
	if len(c.Rooms) != simplexSize || hasDupInts(c.Rooms) {
		return ErrRoomCount
	}
	if c.TotalRent <= 0 {
		return ErrNonPositiveRent
	}
	if c.Eps < 0 || c.Rounding < 0 {
		return ErrBadTolerance
	}
	if c.MaxIterations <= 0 {
		return ErrBadIterationCap
	}

	for _, h := range c.Housemates {
		s, ok := strategies[h]
		if !ok || s == nil {
			return ErrMissingStrategy
		}
		if err := c.validateStrategy(s); err != nil {
			return err
		}
	}

	return nil
}

// validateStrategy checks the room references of the known strategy kinds.
// The strategy set is closed, so a type switch keeps the Strategy interface
// down to Choose; unknown implementations are accepted as-is and must honor
// the interface contract themselves.
func (c *Config) validateStrategy(s Strategy) error {
	switch st := s.(type) {
	case fixedRoom:
		if c.RoomIndex(st.room) < 0 {
			return ErrUnknownRoom
		}
	case cappedOrder:
		if c.RoomIndex(st.favorite) < 0 {
			return ErrUnknownRoom
		}
		if len(st.order) == 0 {
			return ErrUnknownRoom
		}
		for _, room := range st.order {
			if c.RoomIndex(room) < 0 {
				return ErrUnknownRoom
			}
			if _, ok := st.caps[room]; !ok {
				return ErrMissingCap
			}
		}
	}

	return nil
}

// hasDupStrings reports whether any label repeats.
func hasDupStrings(xs []string) bool {
	seen := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			return true
		}
		seen[x] = struct{}{}
	}

	return false
}

// hasDupInts reports whether any id repeats.
func hasDupInts(xs []int) bool {
	seen := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			return true
		}
		seen[x] = struct{}{}
	}

	return false
}
