package grid

// Components finds all 4-connected regions of walkable cells.
// Regions are returned in row-major order of their first cell; each
// region lists its points in BFS discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Point {
	seen := make([]bool, len(g.cells))
	var comps [][]Point

	for i0, c := range g.cells {
		if !c.Walkable() || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var comp []Point

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range Directions {
				v := u.Add(d)
				if !g.InBounds(v) {
					continue
				}
				vi := g.index(v.X, v.Y)
				if !seen[vi] && g.cells[vi].Walkable() {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
