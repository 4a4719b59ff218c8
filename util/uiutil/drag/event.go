package drag

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

type Kind int

const (
	Start Kind = iota
	Move
	End
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Move:
		return "move"
	case End:
		return "end"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Single value form of the callbacks. Pos and Delta are only set for Move.
type Event struct {
	Kind  Kind
	Pos   f64.Vec2
	Delta f64.Vec2
}

func (ev Event) String() string {
	if ev.Kind != Move {
		return ev.Kind.String()
	}
	return fmt.Sprintf("move(%v,%v,%v,%v)", ev.Pos[0], ev.Pos[1], ev.Delta[0], ev.Delta[1])
}

// Callbacks that forward every phase to fn.
func FuncCallbacks(fn func(Event)) Callbacks {
	return Callbacks{
		OnStart: func() { fn(Event{Kind: Start}) },
		OnMove: func(x, y, dx, dy float64) {
			fn(Event{Kind: Move, Pos: f64.Vec2{x, y}, Delta: f64.Vec2{dx, dy}})
		},
		OnEnd: func() { fn(Event{Kind: End}) },
	}
}
