package transform

import "github.com/matzehuels/pathcover/pkg/dag"

// AssignLayers assigns nodes to horizontal rows (layers) based on their depth
// in the graph and returns the assignment.
//
// AssignLayers uses a longest-path algorithm via topological sort (Kahn's
// algorithm). Each node is placed at one plus the maximum row of any of its
// parents, so sources sit at row 0 and every edge points strictly downward.
//
// Existing row assignments in the DAG are overwritten. Nodes on a cycle never
// reach in-degree zero and stay at row 0; run [BreakCycles] first.
func AssignLayers(g *dag.DAG) map[string]int {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		rows[n.ID] = 0
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRows(rows)
	return rows
}
