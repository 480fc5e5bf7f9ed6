package rentdiv

// Triangle is one triangular cell of the current subdivision level: three
// corner Points, each owned by a housemate, plus a lazily built set of six
// children. A Triangle is immutable apart from the one-shot child cache.
//
// Geometry of a subdivision (corners c, midpoints m, barycentre b):
//
//	              c0
//	              /\
//	             /| \
//	            / |  \
//	           /  |   \
//	          /   |    \
//	        m0  0 |  5  m2
//	        /  .  |   .   \
//	       /      b        \
//	      /  1 .  |  . 4    \
//	     /  .  2  |  3  .    \
//	    / .       |        .  \
//	  c1----------m1-----------c2
//
// The numbers are the fixed child scan order. Each child inherits a corner
// labelling from the parent's label table, so that every boundary vertex
// keeps its owner from one level to the next.
type Triangle struct {
	corners [3]*Point
	labels  [3]int    // housemate index owning each corner
	table   [6][3]int // corner labellings handed to the six children

	cfg        *Config
	strategies []Strategy

	// subdivision cache, populated once by Subdivide
	mids     [3]*Point
	bary     *Point
	children []*Triangle
}

// rootTable is the corner-label table of the outer simplex: original corners
// owned by housemate 0, edge midpoints by housemate 1, the centre by
// housemate 2. Every deeper table is derived from a good child's own labels
// by deriveTable.
var rootTable = [6][3]int{
	{0, 1, 2},
	{1, 0, 2},
	{2, 0, 1},
	{2, 1, 0},
	{1, 2, 0},
	{0, 2, 1},
}

// NewRootTriangle validates the configuration and builds the outer simplex:
// corner k prices exactly one room at the full rent and the others at 0, in
// the fixed order (0,0,T), (0,T,0), (T,0,0).
//
// Errors: any validation error from Config.Validate, or a point
// construction error (cannot happen for a valid configuration).
func NewRootTriangle(cfg *Config, strategies map[string]Strategy) (*Triangle, error) {
	if err := cfg.Validate(strategies); err != nil {
		return nil, err
	}

	// Fix strategy evaluation order to the housemate order; map iteration
	// order must never influence the refinement path.
	ordered := make([]Strategy, len(cfg.Housemates))
	for i, h := range cfg.Housemates {
		ordered[i] = strategies[h]
	}

	var corners [3]*Point
	for k := 0; k < simplexSize; k++ {
		coords := make([]float64, simplexSize)
		coords[simplexSize-1-k] = cfg.TotalRent
		p, err := newPoint(coords, ordered, cfg)
		if err != nil {
			return nil, err
		}
		corners[k] = p
	}

	return &Triangle{
		corners:    corners,
		labels:     [3]int{0, 0, 0},
		table:      rootTable,
		cfg:        cfg,
		strategies: ordered,
	}, nil
}

// newChild builds a subdivision cell sharing the parent's configuration.
// Children with three distinct corner labels derive their own label table;
// the rest keep the root table, but only good children — which always carry
// distinct labels — ever get subdivided.
func (t *Triangle) newChild(corners [3]*Point, labels [3]int) *Triangle {
	child := &Triangle{
		corners:    corners,
		labels:     labels,
		table:      rootTable,
		cfg:        t.cfg,
		strategies: t.strategies,
	}
	if labels[0] != labels[1] && labels[1] != labels[2] && labels[0] != labels[2] {
		child.table = deriveTable(labels)
	}

	return child
}

// deriveTable extends a triangle's own distinct corner labels (l0,l1,l2)
// to its six children: corners keep their owner, each edge midpoint takes
// the label absent from its edge, and the centre completes each child to a
// distinct triple.
//
//	              l0
//	              /\
//	             /| \
//	            / |  \
//	          l2  0| 5 l1
//	          /  . | .   \
//	         /  1 .|. 4   \
//	        /  . 2 | 3 .   \
//	      l1-------l0-------l2
func deriveTable(l [3]int) [6][3]int {
	third := func(a, b int) int { return 3 - a - b } // indices sum to 3

	m0, m1, m2 := l[2], l[0], l[1] // midpoint owners, by opposite label

	return [6][3]int{
		{l[0], m0, third(l[0], m0)},
		{m0, l[1], third(m0, l[1])},
		{third(l[1], m1), l[1], m1},
		{third(m1, l[2]), m1, l[2]},
		{m2, third(m2, l[2]), l[2]},
		{l[0], third(l[0], m2), m2},
	}
}

// Corners returns the three corner points.
func (t *Triangle) Corners() [3]*Point { return t.corners }

// CornerLabels returns the housemate owning each corner.
func (t *Triangle) CornerLabels() [3]string {
	var out [3]string
	for i, l := range t.labels {
		out[i] = t.cfg.Housemates[l]
	}

	return out
}

// Choices returns, per corner, the room its owning housemate selects there.
func (t *Triangle) Choices() [3]int {
	var out [3]int
	for i, l := range t.labels {
		out[i] = t.corners[i].Choices[l]
	}

	return out
}

// Good reports whether this triangle is fully labelled: the three corner
// choices cover every configured room with no repeats.
func (t *Triangle) Good() bool {
	choices := t.Choices()
	for _, room := range t.cfg.Rooms {
		found := false
		for _, c := range choices {
			if c == room {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Subdivide returns the six children of the standard barycentric
// subdivision, in the fixed scan order shown on the Triangle doc. The
// result is cached; calling Subdivide again returns the same structure.
//
// Each call past the first is O(1); the first call constructs four new
// points (three edge midpoints and the barycentre), each of which invokes
// every housemate's strategy once.
func (t *Triangle) Subdivide() ([]*Triangle, error) {
	if t.children != nil {
		return t.children, nil
	}
	if err := t.initGeometry(); err != nil {
		return nil, err
	}

	c, m, b := t.corners, t.mids, t.bary
	cells := [6][3]*Point{
		{c[0], m[0], b},
		{m[0], c[1], b},
		{b, c[1], m[1]},
		{b, m[1], c[2]},
		{m[2], b, c[2]},
		{c[0], b, m[2]},
	}

	children := make([]*Triangle, 0, len(cells))
	for i, cell := range cells {
		children = append(children, t.newChild(cell, t.table[i]))
	}
	t.children = children

	return t.children, nil
}

// GoodChild subdivides (if needed) and returns the first good child in scan
// order together with its index. When none of the six qualifies it returns
// ErrNoGoodTriangle: the boundary anchoring condition was violated, and the
// caller must surface that, never treat it as convergence.
func (t *Triangle) GoodChild() (*Triangle, int, error) {
	children, err := t.Subdivide()
	if err != nil {
		return nil, 0, err
	}
	for i, child := range children {
		if child.Good() {
			return child, i, nil
		}
	}

	return nil, 0, ErrNoGoodTriangle
}

// Barycentre returns the centroid point of the triangle, constructing it on
// first use (shared with Subdivide's geometry).
func (t *Triangle) Barycentre() (*Point, error) {
	if err := t.initGeometry(); err != nil {
		return nil, err
	}

	return t.bary, nil
}

// initGeometry computes the three edge midpoints and the barycentre once.
// The barycentre is the 2/3 blend from corner 0 toward the opposite edge
// midpoint, which equals the equal-weight average of the corners.
func (t *Triangle) initGeometry() error {
	if t.bary != nil {
		return nil
	}

	c := t.corners
	var mids [3]*Point
	for i := range c {
		p, err := newPoint(lerp(c[i], c[(i+1)%simplexSize], 0.5), t.strategies, t.cfg)
		if err != nil {
			return err
		}
		mids[i] = p
	}
	bary, err := newPoint(lerp(c[0], mids[1], 2.0/3.0), t.strategies, t.cfg)
	if err != nil {
		return err
	}
	t.mids = mids
	t.bary = bary

	return nil
}

// collapsed reports whether the three corners lie pairwise within eps of
// each other — the convergence test of the search loop.
func (t *Triangle) collapsed(eps float64) bool {
	return t.corners[0].Equal(t.corners[1], eps) &&
		t.corners[1].Equal(t.corners[2], eps) &&
		t.corners[0].Equal(t.corners[2], eps)
}
