package event

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Event ids used with evreg registers.
const (
	PointerDownEvId = iota
	PointerMoveEvId
	PointerUpEvId
)

//----------

// Client is the position relative to the viewport; Page is the position
// relative to the document (client + scroll).
type PointerDown struct {
	Client f64.Vec2
	Page   f64.Vec2
	Button MouseButton
}
type PointerMove struct {
	Client  f64.Vec2
	Page    f64.Vec2
	Buttons MouseButtons
}
type PointerUp struct {
	Client f64.Vec2
	Page   f64.Vec2
	Button MouseButton
}

// Returns the evreg id for a pointer event, or -1.
func EvId(ev any) int {
	switch ev.(type) {
	case *PointerDown:
		return PointerDownEvId
	case *PointerMove:
		return PointerMoveEvId
	case *PointerUp:
		return PointerUpEvId
	}
	return -1
}

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

func Vec(x, y float64) f64.Vec2 {
	return f64.Vec2{x, y}
}
func Add(a, b f64.Vec2) f64.Vec2 {
	return f64.Vec2{a[0] + b[0], a[1] + b[1]}
}
func Sub(a, b f64.Vec2) f64.Vec2 {
	return f64.Vec2{a[0] - b[0], a[1] - b[1]}
}

// Used for geometry of detached elements.
func NaNVec() f64.Vec2 {
	return f64.Vec2{math.NaN(), math.NaN()}
}
func IsNaN(v f64.Vec2) bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1])
}

//----------

// Axis aligned rectangle in float coordinates. Max is exclusive.
type Rect struct {
	Min, Max f64.Vec2
}

func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: f64.Vec2{x, y}, Max: f64.Vec2{x + w, y + h}}
}
func NaNRect() Rect {
	return Rect{Min: NaNVec(), Max: NaNVec()}
}

func (r Rect) Contains(p f64.Vec2) bool {
	return p[0] >= r.Min[0] && p[0] < r.Max[0] &&
		p[1] >= r.Min[1] && p[1] < r.Max[1]
}
func (r Rect) Add(p f64.Vec2) Rect {
	return Rect{Min: Add(r.Min, p), Max: Add(r.Max, p)}
}
