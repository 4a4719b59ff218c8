package event

import "strings"

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return "none"
}

// Accepts "left", "middle", "right" (case insensitive).
func ParseMouseButton(s string) (MouseButton, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return ButtonLeft, true
	case "middle":
		return ButtonMiddle, true
	case "right":
		return ButtonRight, true
	}
	return ButtonNone, false
}

//----------

type MouseButtons int32

func Buttons(bs ...MouseButton) MouseButtons {
	u := MouseButtons(0)
	for _, b := range bs {
		u |= MouseButtons(b)
	}
	return u
}

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}
