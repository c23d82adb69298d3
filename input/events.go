// Package input holds the per-frame input snapshot consumed by the simulation.
package input

// Events is a read-only snapshot of player intent for one frame.
// Frontends build a fresh value every frame from whatever device they poll.
type Events struct {
	ShipLeft   bool
	ShipRight  bool
	ShipThrust bool
	ShipFire   bool
}

// Any reports whether any action is requested
func (e Events) Any() bool {
	return e.ShipLeft || e.ShipRight || e.ShipThrust || e.ShipFire
}
