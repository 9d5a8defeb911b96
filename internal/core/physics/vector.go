package physics

import (
	"math"
	"strconv"
)

var _ Vector2 = Vec2{}

// Vec2 is a 2D point or vector. It is a value type; every operation returns a new value.
type Vec2 struct{ Xv, Yv float64 }

// V2 builds a Vec2.
func V2(x, y float64) Vec2 { return Vec2{Xv: x, Yv: y} }

// Zero2 is the null vector.
var Zero2 = Vec2{}

func (v Vec2) X() float64 { return v.Xv }
func (v Vec2) Y() float64 { return v.Yv }

func (v Vec2) Add(b Vec2) Vec2           { return Vec2{v.Xv + b.Xv, v.Yv + b.Yv} }
func (v Vec2) Sub(b Vec2) Vec2           { return Vec2{v.Xv - b.Xv, v.Yv - b.Yv} }
func (v Vec2) Scale(s float64) Vec2      { return Vec2{v.Xv * s, v.Yv * s} }
func (v Vec2) Neg() Vec2                 { return Vec2{-v.Xv, -v.Yv} }
func (v Vec2) Dot(b Vec2) float64        { return v.Xv*b.Xv + v.Yv*b.Yv }
func (v Vec2) SquaredMag() float64       { return v.Xv*v.Xv + v.Yv*v.Yv }
func (v Vec2) Mag() float64              { return math.Sqrt(v.Xv*v.Xv + v.Yv*v.Yv) }
func (v Vec2) IsZero() bool              { return v.Xv == 0 && v.Yv == 0 }
func (v Vec2) DistanceTo(b Vec2) float64 { return b.Sub(v).Mag() }

// Cross returns the z component of v x b. Positive means b is counter-clockwise from v.
func (v Vec2) Cross(b Vec2) float64 { return v.Xv*b.Yv - v.Yv*b.Xv }

// Perp rotates v by 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Yv, v.Xv} }

// Norm returns the unit vector in the direction of v.
// The zero vector has no direction and yields NaN components.
func (v Vec2) Norm() Vec2 {
	m := v.Mag()
	return Vec2{v.Xv / m, v.Yv / m}
}

// Limit returns v unchanged when its magnitude is at most d, otherwise v rescaled to magnitude d.
func (v Vec2) Limit(d float64) Vec2 {
	m := v.Mag()
	if m > d {
		return Vec2{d * v.Xv / m, d * v.Yv / m}
	}
	return v
}

// Rotate returns v rotated counter-clockwise by r radians.
func (v Vec2) Rotate(r float64) Vec2 {
	s, c := math.Sincos(r)
	return Vec2{v.Xv*c - v.Yv*s, v.Xv*s + v.Yv*c}
}

func (v Vec2) String() string {
	return "(" + strconv.FormatFloat(v.Xv, 'g', 6, 64) + ", " + strconv.FormatFloat(v.Yv, 'g', 6, 64) + ")"
}

// Vec3 is a 3D point; map vertices carry a height the agent never uses.
type Vec3 struct{ Xv, Yv, Zv float64 }

func (v Vec3) X() float64 { return v.Xv }
func (v Vec3) Y() float64 { return v.Yv }
func (v Vec3) Z() float64 { return v.Zv }

// Flat drops the height component.
func (v Vec3) Flat() Vec2 { return Vec2{v.Xv, v.Yv} }

// Clamp returns x constrained to [low, high].
func Clamp(x, low, high float64) float64 {
	if x < low {
		x = low
	}
	if x > high {
		x = high
	}
	return x
}

// Distance2V computes distance between two Vector2.
func Distance2V(a, b Vector2) float64 { return math.Hypot(b.X()-a.X(), b.Y()-a.Y()) }
