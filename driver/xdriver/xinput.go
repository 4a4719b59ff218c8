package xdriver

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/jmigpin/nodedrag/util/uiutil/event"
	"golang.org/x/image/math/f64"
)

func buttonPress(ev *xproto.ButtonPressEvent) (f64.Vec2, event.MouseButton) {
	return point(ev.EventX, ev.EventY), translateButtonToEventButton(ev.Detail)
}
func buttonRelease(ev *xproto.ButtonReleaseEvent) (f64.Vec2, event.MouseButton) {
	return point(ev.EventX, ev.EventY), translateButtonToEventButton(ev.Detail)
}
func motionNotify(ev *xproto.MotionNotifyEvent) (f64.Vec2, event.MouseButtons) {
	return point(ev.EventX, ev.EventY), translateModifiersToEventMouseButtons(ev.State)
}

// Window relative point.
func point(x, y int16) f64.Vec2 {
	return f64.Vec2{float64(x), float64(y)}
}

//----------

func translateModifiersToEventMouseButtons(v uint16) event.MouseButtons {
	type pair struct {
		a uint16
		b event.MouseButton
	}
	pairs := []pair{
		{xproto.KeyButMaskButton1, event.ButtonLeft},
		{xproto.KeyButMaskButton2, event.ButtonMiddle},
		{xproto.KeyButMaskButton3, event.ButtonRight},
	}
	var w event.MouseButtons
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= event.MouseButtons(p.b)
		}
	}
	return w
}

// Wheel and extra buttons map to ButtonNone.
func translateButtonToEventButton(xb xproto.Button) event.MouseButton {
	var b event.MouseButton
	switch xb {
	case 1:
		b = event.ButtonLeft
	case 2:
		b = event.ButtonMiddle
	case 3:
		b = event.ButtonRight
	}
	return b
}
