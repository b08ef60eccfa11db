package genvec

// DefaultRecursionCeiling is the number of node visits after which the
// recursive generators stop descending.
const DefaultRecursionCeiling = 10000

// Governor bounds the work of the recursive generators. One Governor is
// allocated per generation call and reset before every layer.
//
// Visit is called once per recursive node; it refuses once the count
// reaches the ceiling. Hitting the ceiling halts the current branch and is
// not an error.
type Governor struct {
	ceiling int
	count   int
	visits  int
	hit     bool
}

// NewGovernor returns a Governor with the given ceiling. A non-positive
// ceiling selects DefaultRecursionCeiling.
func NewGovernor(ceiling int) *Governor {
	if ceiling <= 0 {
		ceiling = DefaultRecursionCeiling
	}
	return &Governor{ceiling: ceiling}
}

// Visit counts one node visit. It returns false, without counting, once
// the ceiling has been reached.
func (g *Governor) Visit() bool {
	if g.count >= g.ceiling {
		g.hit = true
		return false
	}
	g.count++
	g.visits++
	return true
}

// Add counts n extra elements emitted by a node, such as quadtree dividing
// lines. They bring the ceiling closer but are not node visits.
func (g *Governor) Add(n int) {
	g.count += n
}

// Exhausted reports whether the ceiling has been reached.
func (g *Governor) Exhausted() bool {
	if g.count >= g.ceiling {
		g.hit = true
		return true
	}
	return false
}

// Count returns everything counted since the last reset.
func (g *Governor) Count() int { return g.count }

// Visits returns the node visits since the last reset. It never exceeds
// the ceiling.
func (g *Governor) Visits() int { return g.visits }

// Ceiling returns the visit ceiling.
func (g *Governor) Ceiling() int { return g.ceiling }

// CeilingHit reports whether a visit was refused since the last reset.
func (g *Governor) CeilingHit() bool { return g.hit }

// Reset clears the counters.
func (g *Governor) Reset() {
	g.count = 0
	g.visits = 0
	g.hit = false
}
