package components

import "math"

// V2 is a 2D vector in world units
type V2 struct {
	X, Y float64
}

// Add returns v+o
func (v V2) Add(o V2) V2 {
	return V2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s
func (v V2) Scale(s float64) V2 {
	return V2{X: v.X * s, Y: v.Y * s}
}

// Heading returns the unit vector pointing along angle (radians)
func Heading(angle float64) V2 {
	return V2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// PlayerComponent is the unique state of the player ship
type PlayerComponent struct {
	Thrust       bool    // Set by input, consumed and cleared by the next player update
	FireCooldown float64 // Seconds until the weapon may fire again; <= 0 means ready
}

// AsteroidComponent stores asteroid shape information
type AsteroidComponent struct {
	Edges  int     // Number of polygon sides
	Radius float64 // Outer radius in world units, drives mass
}

// DiskMass returns the mass of a disk of the given radius and density
func DiskMass(density, radius float64) float64 {
	return density * math.Pi * radius * radius
}
