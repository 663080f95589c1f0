package bipartite

import "math"

// infinity is the layer label of vertices outside the current layering.
const infinity = math.MaxInt32

// Matcher computes a maximum matching of a [Graph] with the Hopcroft–Karp
// algorithm. It owns pairLeft, pairRight and dist for its whole lifetime;
// the graph itself is only read.
//
// The zero value is not usable - use NewMatcher.
type Matcher struct {
	g         *Graph
	pairLeft  []int // pairLeft[u] = right partner of u, or None
	pairRight []int // pairRight[v] = left partner of v, or None
	dist      []int // layer label per left vertex, valid within one phase

	stack  []frame
	queue  []int
	size   int
	phases int
	done   bool
}

// frame is one level of the augmenting-path search: left vertex u currently
// trying its i-th neighbor.
type frame struct {
	u, i int
}

// NewMatcher creates a matcher for g with an empty matching.
func NewMatcher(g *Graph) *Matcher {
	return &Matcher{
		g:         g,
		pairLeft:  make([]int, g.left+1),
		pairRight: make([]int, g.right+1),
		dist:      make([]int, g.left+1),
	}
}

// Run computes a maximum matching and returns its size. Calling Run again
// returns the same size without recomputing.
func (m *Matcher) Run() int {
	if m.done {
		return m.size
	}
	for m.layer() {
		m.phases++
		for u := 1; u <= m.g.left; u++ {
			if m.pairLeft[u] == None && m.augment(u) {
				m.size++
			}
		}
	}
	m.done = true
	return m.size
}

// Size returns the current matching size.
func (m *Matcher) Size() int { return m.size }

// Phases returns the number of phases that found at least one augmenting path.
func (m *Matcher) Phases() int { return m.phases }

// layer runs the breadth-first pass. Free left vertices get label 0 and seed
// the queue; matched ones start at infinity. A free right vertex ends a layer
// and is never enqueued. Reports whether any free right vertex was reached.
func (m *Matcher) layer() bool {
	queue := m.queue[:0]
	for u := 1; u <= m.g.left; u++ {
		if m.pairLeft[u] == None {
			m.dist[u] = 0
			queue = append(queue, u)
		} else {
			m.dist[u] = infinity
		}
	}

	found := false
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range m.g.adj[u] {
			w := m.pairRight[v]
			if w == None {
				found = true
			} else if m.dist[w] == infinity {
				m.dist[w] = m.dist[u] + 1
				queue = append(queue, w)
			}
		}
	}
	m.queue = queue[:0]
	return found
}

// augment searches for a layer-respecting augmenting path from free left
// vertex root and flips it on success. A left vertex whose neighbors are all
// exhausted gets label infinity so the phase never enters it again.
func (m *Matcher) augment(root int) bool {
	stack := append(m.stack[:0], frame{u: root})
	defer func() { m.stack = stack[:0] }()

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		adj := m.g.adj[top.u]

		if top.i >= len(adj) {
			m.dist[top.u] = infinity
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				stack[len(stack)-1].i++
			}
			continue
		}

		v := adj[top.i]
		w := m.pairRight[v]
		switch {
		case w == None:
			for k := len(stack) - 1; k >= 0; k-- {
				u := stack[k].u
				right := m.g.adj[u][stack[k].i]
				m.pairLeft[u] = right
				m.pairRight[right] = u
			}
			return true
		case m.dist[w] == m.dist[top.u]+1:
			stack = append(stack, frame{u: w})
		default:
			top.i++
		}
	}
	return false
}

// Matching returns a snapshot of the current matching. The snapshot does not
// change if the matcher runs afterwards.
func (m *Matcher) Matching() *Matching {
	return &Matching{
		Size:      m.size,
		Phases:    m.phases,
		pairLeft:  append([]int(nil), m.pairLeft...),
		pairRight: append([]int(nil), m.pairRight...),
	}
}

// MaxMatching runs a new Matcher on g and returns the resulting matching.
func MaxMatching(g *Graph) *Matching {
	m := NewMatcher(g)
	m.Run()
	return m.Matching()
}
