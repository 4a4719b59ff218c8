// Tracks pointer drags on a surface and reports start, move (position and
// delta) and end to callbacks.
//
// All methods and callbacks run on the goroutine that dispatches events to the
// registers. Nothing here is safe for concurrent dispatch.
package drag

import (
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/nodedrag/util/evreg"
	"github.com/jmigpin/nodedrag/util/uiutil/event"
	"golang.org/x/image/math/f64"
)

// Draggable element. Externally owned.
type Surface interface {
	// Register receiving pointer-down events targeted at the surface.
	EvReg() *evreg.Register
	// Bounds in client coordinates. NaN if not laid out.
	BoundingBox() event.Rect
	// Page position of the parent container. False if detached.
	ParentOffset() (f64.Vec2, bool)
}

//----------

type Callbacks struct {
	OnStart func()
	OnMove  func(x, y, dx, dy float64)
	OnEnd   func()
}

func (cbs *Callbacks) start() {
	if cbs.OnStart != nil {
		cbs.OnStart()
	}
}
func (cbs *Callbacks) move(p, d f64.Vec2) {
	if cbs.OnMove != nil {
		cbs.OnMove(p[0], p[1], d[0], d[1])
	}
}
func (cbs *Callbacks) end() {
	if cbs.OnEnd != nil {
		cbs.OnEnd()
	}
}

//----------

type Controller struct {
	doc     *evreg.Register
	buttons event.MouseButtons // zero: any button
	logger  *log.Logger
	debug   bool
}

// The doc register receives pointer events from anywhere in the window; move
// and up listeners are attached there for the duration of a gesture.
func NewController(doc *evreg.Register, opts ...Option) *Controller {
	ctrl := &Controller{doc: doc}
	for _, o := range opts {
		o(ctrl)
	}
	return ctrl
}

func (ctrl *Controller) Bind(s Surface, cbs Callbacks) *Binding {
	b := &Binding{ctrl: ctrl, surface: s, cbs: cbs}
	b.downReg = s.EvReg().Add(event.PointerDownEvId, b.onDown)
	return b
}

func (ctrl *Controller) logf(f string, args ...any) {
	if ctrl.logger != nil && ctrl.debug {
		ctrl.logger.Printf(f, args...)
	}
}

func (ctrl *Controller) acceptDown(button event.MouseButton) bool {
	return ctrl.buttons == 0 || ctrl.buttons.Has(button)
}
func (ctrl *Controller) acceptUp(sess *session, button event.MouseButton) bool {
	return ctrl.buttons == 0 || button == sess.button
}

//----------

type Option func(*Controller)

// Buttons that start a gesture. By default any button starts a gesture and
// any pointer-up ends it. With a filter, only the release of the button that
// started the gesture ends it.
func WithButtons(bs ...event.MouseButton) Option {
	return func(ctrl *Controller) {
		ctrl.buttons = event.Buttons(bs...)
	}
}

func WithLogger(l *log.Logger) Option {
	return func(ctrl *Controller) {
		ctrl.logger = l
	}
}

// Logs gesture transitions and session dumps (needs a logger).
func WithDebug(v bool) Option {
	return func(ctrl *Controller) {
		ctrl.debug = v
	}
}

//----------

// A surface bound to a controller.
type Binding struct {
	ctrl    *Controller
	surface Surface
	cbs     Callbacks
	downReg *evreg.Regist
	sess    *session
}

// Reports whether a gesture is in progress.
func (b *Binding) Active() bool {
	return b.sess != nil
}

// Ends the active gesture as if the pointer was released: OnEnd runs and the
// gesture listeners are removed. No-op when idle.
func (b *Binding) Cancel() {
	if b.sess != nil {
		b.ctrl.logf("drag: cancel")
		b.end(b.sess)
	}
}

// Ends any active gesture and stops listening on the surface.
func (b *Binding) Unbind() {
	b.Cancel()
	b.downReg.Unregister()
}

//----------

func (b *Binding) onDown(ev any) {
	down, ok := ev.(*event.PointerDown)
	if !ok {
		return
	}
	if b.sess != nil {
		return // one gesture at a time
	}
	if !b.ctrl.acceptDown(down.Button) {
		return
	}

	b.cbs.start()
	if !b.downReg.Registered() {
		return // unbound by the start callback
	}

	box := b.surface.BoundingBox()
	sess := &session{
		button: down.Button,
		anchor: AnchorOffset(box, down.Client),
	}
	b.sess = sess
	sess.unr.Add(
		b.ctrl.doc.Add(event.PointerMoveEvId, func(ev any) {
			if mv, ok := ev.(*event.PointerMove); ok {
				b.move(sess, mv)
			}
		}),
		b.ctrl.doc.Add(event.PointerUpEvId, func(ev any) {
			if up, ok := ev.(*event.PointerUp); ok && b.ctrl.acceptUp(sess, up.Button) {
				b.end(sess)
			}
		}),
	)

	if b.ctrl.debug {
		b.ctrl.logf("drag: start: box=%v\n%s", box, spew.Sdump(sess))
	}
}

func (b *Binding) move(sess *session, ev *event.PointerMove) {
	if b.sess != sess {
		return
	}
	off, ok := b.surface.ParentOffset()
	if !ok {
		off = event.NaNVec()
	}
	rel := event.Sub(ev.Page, off)
	p := event.Sub(rel, sess.anchor)
	d := sess.delta(p)

	if event.IsNaN(p) && !sess.nanLogged {
		sess.nanLogged = true
		b.ctrl.logf("drag: non-numeric position %v (detached surface?)", p)
	}

	b.cbs.move(p, d)
}

func (b *Binding) end(sess *session) {
	if b.sess != sess {
		return
	}
	b.sess = nil
	b.cbs.end()
	sess.unr.UnregisterAll()
	b.ctrl.logf("drag: end: samples=%v", sess.samples)
}

//----------

// Per gesture state. Created on pointer-down, dropped on pointer-up.
type session struct {
	button event.MouseButton
	anchor f64.Vec2 // fixed for the gesture

	last    f64.Vec2
	seeded  bool // last is valid
	samples int

	nanLogged bool

	unr evreg.Unregister // move/up listeners
}

// Returns the change since the previous sample. The first sample of a
// gesture reports a zero delta.
func (sess *session) delta(p f64.Vec2) f64.Vec2 {
	if !sess.seeded {
		sess.seeded = true
		sess.last = p
	}
	d := event.Sub(p, sess.last)
	sess.last = p
	sess.samples++
	return d
}

//----------

// Offset from the top-left of the box to the client point.
func AnchorOffset(box event.Rect, client f64.Vec2) f64.Vec2 {
	return event.Sub(client, box.Min)
}
