package bipartite

import "fmt"

// Matching is a read-only view of a finished matching. Pair arrays are
// 1-indexed; index 0 is unused.
type Matching struct {
	Size   int // number of matched pairs
	Phases int // phases that augmented the matching

	pairLeft  []int
	pairRight []int
}

// Left returns the right partner of left vertex u and whether u is matched.
func (m *Matching) Left(u int) (int, bool) {
	if u < 1 || u >= len(m.pairLeft) || m.pairLeft[u] == None {
		return None, false
	}
	return m.pairLeft[u], true
}

// Right returns the left partner of right vertex v and whether v is matched.
func (m *Matching) Right(v int) (int, bool) {
	if v < 1 || v >= len(m.pairRight) || m.pairRight[v] == None {
		return None, false
	}
	return m.pairRight[v], true
}

// LeftCount returns the number of left vertices the matching covers.
func (m *Matching) LeftCount() int { return max(len(m.pairLeft)-1, 0) }

// RightCount returns the number of right vertices the matching covers.
func (m *Matching) RightCount() int { return max(len(m.pairRight)-1, 0) }

// PairLeft returns a copy of the left pairing array (index 0 unused, None
// for free vertices).
func (m *Matching) PairLeft() []int { return append([]int(nil), m.pairLeft...) }

// PairRight returns a copy of the right pairing array.
func (m *Matching) PairRight() []int { return append([]int(nil), m.pairRight...) }

// Pairs returns matched (left, right) pairs ordered by left vertex.
func (m *Matching) Pairs() [][2]int {
	pairs := make([][2]int, 0, m.Size)
	for u := 1; u < len(m.pairLeft); u++ {
		if v := m.pairLeft[u]; v != None {
			pairs = append(pairs, [2]int{u, v})
		}
	}
	return pairs
}

// Verify checks that the two pairing arrays agree with each other and that
// Size equals the number of matched left vertices.
func (m *Matching) Verify() error {
	if err := checkPairing(m.pairLeft, m.pairRight, "left", "right"); err != nil {
		return err
	}
	if err := checkPairing(m.pairRight, m.pairLeft, "right", "left"); err != nil {
		return err
	}
	if n := len(m.Pairs()); n != m.Size {
		return fmt.Errorf("matching size %d does not match %d pairs", m.Size, n)
	}
	return nil
}

func checkPairing(from, to []int, fromSide, toSide string) error {
	for a := 1; a < len(from); a++ {
		b := from[a]
		if b == None {
			continue
		}
		if b < 1 || b >= len(to) || to[b] != a {
			return fmt.Errorf("inconsistent pairing: %s %d -> %s %d is not mirrored", fromSide, a, toSide, b)
		}
	}
	return nil
}
