package navmesh

const maxHeight = 1 << 16

// filterLowHangingObstacles re-marks unwalkable spans as walkable when they
// sit within climb distance directly above a walkable span. Kerbs and other
// low clutter should not cut holes into the floor they rest on.
func (hf *heightfield) filterLowHangingObstacles(climb int) {
	for z := 0; z < hf.depth; z++ {
		for x := 0; x < hf.width; x++ {
			var prev *span
			prevWalkable := false
			for s := hf.columns[x+z*hf.width]; s != nil; s = s.next {
				walkable := s.walkable
				if !walkable && prevWalkable && abs(s.max-prev.max) <= climb {
					s.walkable = true
				}
				// The original flag gates the next span, so walkability
				// cannot propagate through stacked obstacles.
				prevWalkable = walkable
				prev = s
			}
		}
	}
}

// filterLedgeSpans un-marks walkable spans whose drop to any neighbour
// column exceeds the climb height. Agents standing there would fall off.
func (hf *heightfield) filterLedgeSpans(walkableHeight, climb int) {
	for z := 0; z < hf.depth; z++ {
		for x := 0; x < hf.width; x++ {
			for s := hf.columns[x+z*hf.width]; s != nil; s = s.next {
				if !s.walkable {
					continue
				}

				floor := s.max
				ceiling := maxHeight
				if s.next != nil {
					ceiling = s.next.min
				}

				minDrop := maxHeight
				for dir := 0; dir < 4; dir++ {
					nx := x + dirOffsetX(dir)
					nz := z + dirOffsetZ(dir)
					if nx < 0 || nz < 0 || nx >= hf.width || nz >= hf.depth {
						minDrop = min(minDrop, -climb-1)
						continue
					}

					// Gap below the neighbour column's first span counts as
					// a potential floor at negative infinity.
					nbSpan := hf.columns[nx+nz*hf.width]
					nbFloor := -climb - 1
					nbCeiling := maxHeight
					if nbSpan != nil {
						nbCeiling = nbSpan.min
					}
					if min(ceiling, nbCeiling)-floor > walkableHeight {
						minDrop = min(minDrop, nbFloor-floor)
					}

					for nb := nbSpan; nb != nil; nb = nb.next {
						nbFloor = nb.max
						nbCeiling = maxHeight
						if nb.next != nil {
							nbCeiling = nb.next.min
						}
						if min(ceiling, nbCeiling)-max(floor, nbFloor) > walkableHeight {
							minDrop = min(minDrop, nbFloor-floor)
						}
					}
				}

				if minDrop < -climb {
					s.walkable = false
				}
			}
		}
	}
}

// filterLowHeightSpans un-marks walkable spans without enough clearance
// above them for the agent to stand.
func (hf *heightfield) filterLowHeightSpans(walkableHeight int) {
	for z := 0; z < hf.depth; z++ {
		for x := 0; x < hf.width; x++ {
			for s := hf.columns[x+z*hf.width]; s != nil; s = s.next {
				if !s.walkable {
					continue
				}
				ceiling := maxHeight
				if s.next != nil {
					ceiling = s.next.min
				}
				if ceiling-s.max < walkableHeight {
					s.walkable = false
				}
			}
		}
	}
}

// erodeWalkableArea shrinks the walkable area away from edges by radius
// voxels, so the mesh keeps the agent's center at least its radius from
// any drop or wall.
func (hf *heightfield) erodeWalkableArea(radius, climb int) {
	for i := 0; i < radius; i++ {
		var edge []*span
		for z := 0; z < hf.depth; z++ {
			for x := 0; x < hf.width; x++ {
				for s := hf.columns[x+z*hf.width]; s != nil; s = s.next {
					if s.walkable && hf.isEdge(x, z, s, climb) {
						edge = append(edge, s)
					}
				}
			}
		}
		for _, s := range edge {
			s.walkable = false
		}
	}
}

// isEdge reports whether a walkable span lacks a reachable walkable
// neighbour in any of the four cardinal directions.
func (hf *heightfield) isEdge(x, z int, s *span, climb int) bool {
	for dir := 0; dir < 4; dir++ {
		nx := x + dirOffsetX(dir)
		nz := z + dirOffsetZ(dir)
		if nx < 0 || nz < 0 || nx >= hf.width || nz >= hf.depth {
			return true
		}
		if hf.findNeighbor(nx, nz, s, climb) == nil {
			return true
		}
	}
	return false
}

// findNeighbor returns a walkable span in column (x, z) reachable from s
// within climb voxels, or nil.
func (hf *heightfield) findNeighbor(x, z int, s *span, climb int) *span {
	for nb := hf.columns[x+z*hf.width]; nb != nil; nb = nb.next {
		if nb.walkable && abs(nb.max-s.max) <= climb {
			return nb
		}
	}
	return nil
}

// removeIslands drops connected walkable regions smaller than minArea
// columns. Tiny disconnected patches are useless for navigation and only
// add noise to the output.
func (hf *heightfield) removeIslands(minArea, climb int) {
	if minArea <= 0 {
		return
	}

	type cell struct {
		x, z int
		s    *span
	}
	visited := make(map[*span]bool)

	for z := 0; z < hf.depth; z++ {
		for x := 0; x < hf.width; x++ {
			for s := hf.columns[x+z*hf.width]; s != nil; s = s.next {
				if !s.walkable || visited[s] {
					continue
				}

				var region []cell
				queue := []cell{{x, z, s}}
				visited[s] = true
				for len(queue) > 0 {
					c := queue[0]
					queue = queue[1:]
					region = append(region, c)

					for dir := 0; dir < 4; dir++ {
						nx := c.x + dirOffsetX(dir)
						nz := c.z + dirOffsetZ(dir)
						if nx < 0 || nz < 0 || nx >= hf.width || nz >= hf.depth {
							continue
						}
						if nb := hf.findNeighbor(nx, nz, c.s, climb); nb != nil && !visited[nb] {
							visited[nb] = true
							queue = append(queue, cell{nx, nz, nb})
						}
					}
				}

				if len(region) < minArea {
					for _, c := range region {
						c.s.walkable = false
					}
				}
			}
		}
	}
}

func dirOffsetX(dir int) int {
	return [4]int{-1, 0, 1, 0}[dir]
}

func dirOffsetZ(dir int) int {
	return [4]int{0, 1, 0, -1}[dir]
}
