package collision

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlap checks whether a and b intersect. Rects that only touch along an edge
// are treated as colliding.
func Overlap(a, b Rect) bool {
	if a.X+a.W < b.X || a.X > b.X+b.W || a.Y+a.H < b.Y || a.Y > b.Y+b.H {
		return false
	}
	return true
}

// AnyOverlap checks r against every rect in rects.
// TODO: walls are scanned linearly; bucket them by cell if mazes grow past a few thousand walls.
func AnyOverlap(r Rect, rects []Rect) bool {
	for _, other := range rects {
		if Overlap(r, other) {
			return true
		}
	}
	return false
}
