package physics

// Lightweight physics abstractions for 2D bodies observed in a turn snapshot.
// Nothing here integrates motion: the game engine owns the simulation and the
// agent only reads positions and velocities.

// Vector2 represents a 2D vector.
type Vector2 interface {
	X() float64
	Y() float64
}
