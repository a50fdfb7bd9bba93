package canvas

// overlaps reports whether the item's drawn shape touches r. The caller has
// already checked the bounding boxes.
func (it *item) overlaps(r Rect) bool {
	switch it.kind {
	case KindOval:
		return ovalOverlaps(it.bbox, r)
	case KindPolygon:
		return polygonOverlaps(it.coords, r)
	case KindLine:
		return lineOverlaps(it.coords, max(it.style.Width, 1), r)
	}
	return true
}

// ovalOverlaps tests the ellipse inscribed in box against r. Scaling both by
// the inverse radii turns the ellipse into a unit circle and keeps r an
// axis-aligned box, so the nearest point of r is found by clamping.
func ovalOverlaps(box, r Rect) bool {
	rx := float64(box.Width()) / 2
	ry := float64(box.Height()) / 2
	if rx == 0 || ry == 0 {
		return true
	}
	cx := float64(box.Left) + rx
	cy := float64(box.Top) + ry
	nx := clamp(cx, float64(r.Left), float64(r.Right))
	ny := clamp(cy, float64(r.Top), float64(r.Bottom))
	dx := (nx - cx) / rx
	dy := (ny - cy) / ry
	return dx*dx+dy*dy <= 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// polygonOverlaps reports whether the polygon and r intersect: a vertex lies
// in r, a corner of r lies in the polygon, or an edge crosses r.
func polygonOverlaps(pts []Point, r Rect) bool {
	for _, p := range pts {
		if r.Contains(p) {
			return true
		}
	}
	corners := [4]Point{
		{r.Left, r.Top}, {r.Right, r.Top}, {r.Right, r.Bottom}, {r.Left, r.Bottom},
	}
	for _, c := range corners {
		if polygonContains(pts, float64(c.X), float64(c.Y)) {
			return true
		}
	}
	n := len(pts)
	for i := 0; i < n; i++ {
		if segmentHitsRect(pts[i], pts[(i+1)%n], r) {
			return true
		}
	}
	return false
}

// polygonContains is an even-odd ray cast, so it handles concave and
// self-intersecting outlines.
func polygonContains(pts []Point, x, y float64) bool {
	inside := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := float64(pts[i].X), float64(pts[i].Y)
		xj, yj := float64(pts[j].X), float64(pts[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// lineOverlaps tests each segment of a polyline, widened by half the stroke.
func lineOverlaps(pts []Point, width int, r Rect) bool {
	pad := width / 2
	grown := Rect{Left: r.Left - pad, Top: r.Top - pad, Right: r.Right + pad, Bottom: r.Bottom + pad}
	for i := 0; i+1 < len(pts); i++ {
		if segmentHitsRect(pts[i], pts[i+1], grown) {
			return true
		}
	}
	return false
}

// segmentHitsRect clips the segment a-b against r (Liang-Barsky).
func segmentHitsRect(a, b Point, r Rect) bool {
	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(r.Left)},
		{dx, float64(r.Right) - x0},
		{-dy, y0 - float64(r.Top)},
		{dy, float64(r.Bottom) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
	}
	return t0 <= t1
}
