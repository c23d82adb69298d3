package components

import "strings"

// Tag is a set of capability flags carried by an entity.
// Tags are assigned once at spawn and never cleared.
type Tag uint8

// Define component tags for our game
const (
	TagMovable Tag = 1 << iota // Integrated by the movement system
	TagPlayer                  // Owns the unique player component
	TagAsteroid                // Owns an asteroid component
)

// Has reports whether every flag in o is set in t
func (t Tag) Has(o Tag) bool {
	return o != 0 && t&o == o
}

var tagNames = []struct {
	tag  Tag
	name string
}{
	{TagMovable, "movable"},
	{TagPlayer, "player"},
	{TagAsteroid, "asteroid"},
}

func (t Tag) String() string {
	if t == 0 {
		return "none"
	}
	var parts []string
	for _, n := range tagNames {
		if t.Has(n.tag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
