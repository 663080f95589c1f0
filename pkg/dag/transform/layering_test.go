package transform

import "testing"

func TestAssignLayers(t *testing.T) {
	g := build(
		[]string{"a", "b", "c", "d", "e"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}, {"d", "c"}},
	)

	rows := AssignLayers(g)

	want := map[string]int{"a": 0, "b": 1, "c": 2, "d": 0, "e": 0}
	for id, row := range want {
		if rows[id] != row {
			t.Errorf("rows[%q] = %d, want %d", id, rows[id], row)
		}
		if n, _ := g.Node(id); n.Row != row {
			t.Errorf("node %q Row = %d, want %d", id, n.Row, row)
		}
	}
}

func TestAssignLayersEmpty(t *testing.T) {
	g := build(nil, nil)
	if rows := AssignLayers(g); len(rows) != 0 {
		t.Errorf("AssignLayers(empty) = %v, want empty", rows)
	}
}
