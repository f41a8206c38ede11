package navmesh

import gomath "math"

// span is one solid vertical extent in a heightfield column, in voxel
// units. Spans in a column are kept sorted by min and never overlap.
type span struct {
	min, max int
	walkable bool
	next     *span
}

// heightfield is a grid of span columns on the xz plane. Column (x, z)
// lives at columns[x + z*width].
type heightfield struct {
	width, depth int
	bmin, bmax   [3]float32
	cs, ch       float32
	columns      []*span
}

func newHeightfield(width, depth int, bmin, bmax [3]float32, cs, ch float32) *heightfield {
	return &heightfield{
		width:   width,
		depth:   depth,
		bmin:    bmin,
		bmax:    bmax,
		cs:      cs,
		ch:      ch,
		columns: make([]*span, width*depth),
	}
}

// addSpan inserts a solid span into column (x, z), merging it with any
// spans it overlaps. When the merged tops are within one voxel of each
// other the walkable flag survives the merge, so a thin unwalkable sliver
// cannot erase a walkable floor at the same height.
func (hf *heightfield) addSpan(x, z, smin, smax int, walkable bool) {
	newSpan := &span{min: smin, max: smax, walkable: walkable}

	col := x + z*hf.width
	var prev *span
	cur := hf.columns[col]

	for cur != nil {
		if cur.min > newSpan.max {
			break
		}
		if cur.max < newSpan.min {
			prev = cur
			cur = cur.next
			continue
		}
		if cur.min < newSpan.min {
			newSpan.min = cur.min
		}
		if cur.max > newSpan.max {
			newSpan.max = cur.max
		}
		if abs(newSpan.max-cur.max) <= 1 {
			newSpan.walkable = newSpan.walkable || cur.walkable
		}

		next := cur.next
		if prev != nil {
			prev.next = next
		} else {
			hf.columns[col] = next
		}
		cur = next
	}

	if prev != nil {
		newSpan.next = prev.next
		prev.next = newSpan
	} else {
		newSpan.next = hf.columns[col]
		hf.columns[col] = newSpan
	}
}

// rasterizeTriangle clips the triangle into every grid column it touches
// and records the clipped fragment's vertical extent as a solid span.
func (hf *heightfield) rasterizeTriangle(v0, v1, v2 [3]float32, walkable bool) {
	triMin := minv3(minv3(v0, v1), v2)
	triMax := maxv3(maxv3(v0, v1), v2)
	if !overlaps(triMin, triMax, hf.bmin, hf.bmax) {
		return
	}

	ics := 1 / hf.cs
	ich := 1 / hf.ch
	by := hf.bmax[1] - hf.bmin[1]

	z0 := clampInt(int((triMin[2]-hf.bmin[2])*ics), -1, hf.depth-1)
	z1 := clampInt(int((triMax[2]-hf.bmin[2])*ics), 0, hf.depth-1)

	// Scratch polygons for the two-axis clipping below. A triangle clipped
	// by two parallel planes has at most 7 vertices.
	in := make([][3]float32, 0, 8)
	in = append(in, v0, v1, v2)
	row := make([][3]float32, 0, 8)
	rest := make([][3]float32, 0, 8)
	cell := make([][3]float32, 0, 8)
	restX := make([][3]float32, 0, 8)

	for z := z0; z <= z1; z++ {
		cellZ := hf.bmin[2] + float32(z)*hf.cs
		row, rest = splitPoly(in, row[:0], rest[:0], cellZ+hf.cs, 2)
		in, rest = rest, in

		if len(row) < 3 || z < 0 {
			continue
		}

		minX := row[0][0]
		maxX := row[0][0]
		for _, v := range row[1:] {
			minX = min(minX, v[0])
			maxX = max(maxX, v[0])
		}
		x0 := int((minX - hf.bmin[0]) * ics)
		x1 := int((maxX - hf.bmin[0]) * ics)
		if x1 < 0 || x0 >= hf.width {
			continue
		}
		x0 = clampInt(x0, -1, hf.width-1)
		x1 = clampInt(x1, 0, hf.width-1)

		p := row
		for x := x0; x <= x1; x++ {
			cellX := hf.bmin[0] + float32(x)*hf.cs
			cell, restX = splitPoly(p, cell[:0], restX[:0], cellX+hf.cs, 0)
			p, restX = restX, p

			if len(cell) < 3 || x < 0 {
				continue
			}

			smin := cell[0][1]
			smax := cell[0][1]
			for _, v := range cell[1:] {
				smin = min(smin, v[1])
				smax = max(smax, v[1])
			}
			smin -= hf.bmin[1]
			smax -= hf.bmin[1]
			if smax < 0 || smin > by {
				continue
			}
			smin = max(smin, 0)
			smax = min(smax, by)

			// Snap to the height grid; a span is always at least one
			// voxel tall.
			voxMin := int(gomath.Floor(float64(smin * ich)))
			voxMax := int(gomath.Ceil(float64(smax * ich)))
			if voxMax <= voxMin {
				voxMax = voxMin + 1
			}
			hf.addSpan(x, z, voxMin, voxMax, walkable)
		}
	}
}

// splitPoly splits a convex polygon by an axis-aligned plane at offset
// along the given axis. below receives the part with coordinates <= offset,
// above the remainder. Vertices on the plane land in both parts exactly
// once.
func splitPoly(verts, below, above [][3]float32, offset float32, axis int) (b, a [][3]float32) {
	n := len(verts)
	if n == 0 {
		return below, above
	}

	d := make([]float32, n)
	for i, v := range verts {
		d[i] = offset - v[axis]
	}

	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		va, vb := verts[i], verts[j]
		sameSide := (d[i] >= 0) == (d[j] >= 0)
		if !sameSide {
			s := d[j] / (d[j] - d[i])
			mid := [3]float32{
				vb[0] + (va[0]-vb[0])*s,
				vb[1] + (va[1]-vb[1])*s,
				vb[2] + (va[2]-vb[2])*s,
			}
			below = append(below, mid)
			above = append(above, mid)
		}
		switch {
		case d[i] > 0:
			below = append(below, va)
		case d[i] < 0:
			above = append(above, va)
		default:
			// On the plane: belongs to both halves.
			below = append(below, va)
			above = append(above, va)
		}
	}
	return below, above
}

func overlaps(aMin, aMax, bMin, bMax [3]float32) bool {
	return aMin[0] <= bMax[0] && aMax[0] >= bMin[0] &&
		aMin[1] <= bMax[1] && aMax[1] >= bMin[1] &&
		aMin[2] <= bMax[2] && aMax[2] >= bMin[2]
}

func minv3(a, b [3]float32) [3]float32 {
	return [3]float32{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

func maxv3(a, b [3]float32) [3]float32 {
	return [3]float32{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
