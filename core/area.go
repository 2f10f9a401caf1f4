package core

// Area represents an axis-aligned rectangle in field coordinates
// X, Y is the top-left corner; the field's y axis grows downward
type Area struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// CenteredArea builds an Area from a centre point and dimensions
func CenteredArea(cx, cy, width, height float64) Area {
	return Area{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge
func (a Area) Right() float64 { return a.X + a.Width }

// Bottom returns the y coordinate of the bottom edge
func (a Area) Bottom() float64 { return a.Y + a.Height }

// CenterX returns the horizontal centre
func (a Area) CenterX() float64 { return a.X + a.Width/2 }

// CenterY returns the vertical centre
func (a Area) CenterY() float64 { return a.Y + a.Height/2 }

// ContainsPoint reports whether (px, py) lies strictly inside the area
// Points on an edge do not count as hits
func (a Area) ContainsPoint(px, py float64) bool {
	return px > a.X && px < a.Right() && py > a.Y && py < a.Bottom()
}

// OverlapsSpanX reports whether the open horizontal span (left, right) intersects the area's x-span
func (a Area) OverlapsSpanX(left, right float64) bool {
	return right > a.X && left < a.Right()
}
