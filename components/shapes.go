package components

import "math"

// Polygon returns the vertices of a regular polygon with the given number of
// edges, centered on c and rotated by angle. Fewer than 3 edges yields nil.
func Polygon(c V2, radius float64, edges int, angle float64) []V2 {
	if edges < 3 {
		return nil
	}
	pts := make([]V2, edges)
	step := 2 * math.Pi / float64(edges)
	for i := range pts {
		pts[i] = c.Add(Heading(angle + float64(i)*step).Scale(radius))
	}
	return pts
}

// ShipOutline returns the nose, left wing and right wing of a ship of the
// given size at c pointing along angle
func ShipOutline(c V2, size, angle float64) []V2 {
	const wing = 2.5 // Radians between nose and each wing
	return []V2{
		c.Add(Heading(angle).Scale(size)),
		c.Add(Heading(angle + wing).Scale(size * 0.7)),
		c.Add(Heading(angle - wing).Scale(size * 0.7)),
	}
}
