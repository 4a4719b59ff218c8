// X11 window that shows a document and feeds it pointer events.
package xdriver

import (
	"image"
	"log"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/pkg/errors"

	"github.com/jmigpin/nodedrag/ui"
	"github.com/jmigpin/nodedrag/util/uiutil/event"
)

type Window struct {
	X    *xgbutil.XUtil
	Win  *xwindow.Window
	Size image.Point

	Palette  *Palette
	IsActive func(id string) bool // highlights nodes being dragged

	doc       *ui.Document
	ximg      *xgraphics.Image
	closeOnce sync.Once
}

func NewWindow(doc *ui.Document, title string, size image.Point) (*Window, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}
	win := &Window{X: xu, Size: size, Palette: &DefaultPalette, doc: doc}
	if err := win.initialize(title); err != nil {
		xu.Conn().Close()
		return nil, errors.Wrap(err, "win init")
	}
	return win, nil
}

func (win *Window) initialize(title string) error {
	w, err := xwindow.Generate(win.X)
	if err != nil {
		return err
	}
	win.Win = w

	// button motion only: moves without a pressed button are of no use
	evMask := 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskButtonMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		0
	w.Create(win.X.RootWin(), 0, 0, win.Size.X, win.Size.Y,
		xproto.CwBackPixel|xproto.CwEventMask, 0x222222, uint32(evMask))

	if err := ewmh.WmNameSet(win.X, w.Id, title); err != nil {
		log.Printf("xdriver: set name: %v", err)
	}
	w.WMGracefulClose(func(w *xwindow.Window) {
		xevent.Detach(w.X, w.Id)
		w.Destroy()
		xevent.Quit(w.X)
	})

	xevent.ExposeFun(func(X *xgbutil.XUtil, ev xevent.ExposeEvent) {
		if ev.Count == 0 {
			win.Paint()
		}
	}).Connect(win.X, w.Id)
	xevent.ConfigureNotifyFun(func(X *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		size := image.Point{int(ev.Width), int(ev.Height)}
		if size != win.Size {
			win.Size = size
			win.Paint()
		}
	}).Connect(win.X, w.Id)

	xevent.ButtonPressFun(func(X *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		p, b := buttonPress(ev.ButtonPressEvent)
		if b == event.ButtonNone {
			return // wheel
		}
		win.dispatched(win.doc.PointerDown(p, b))
	}).Connect(win.X, w.Id)
	xevent.MotionNotifyFun(func(X *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		p, bs := motionNotify(ev.MotionNotifyEvent)
		win.dispatched(win.doc.PointerMove(p, bs))
	}).Connect(win.X, w.Id)
	xevent.ButtonReleaseFun(func(X *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		p, b := buttonRelease(ev.ButtonReleaseEvent)
		if b == event.ButtonNone {
			return
		}
		win.dispatched(win.doc.PointerUp(p, b))
	}).Connect(win.X, w.Id)

	w.Map()
	return nil
}

func (win *Window) dispatched(h event.Handle) {
	if h == event.Handled {
		win.Paint()
	}
}

//----------

// Blocks running the X event loop until the window is closed.
func (win *Window) Run() {
	win.Paint()
	xevent.Main(win.X)
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		xevent.Quit(win.X)
		if win.ximg != nil {
			win.ximg.Destroy()
		}
		win.X.Conn().Close()
	})
	return nil
}

//----------

func (win *Window) Paint() {
	if win.Size.X <= 0 || win.Size.Y <= 0 {
		return
	}
	img := Render(win.doc, win.Size, win.Palette, win.IsActive)
	ximg := xgraphics.NewConvert(win.X, img)
	if err := ximg.XSurfaceSet(win.Win.Id); err != nil {
		log.Printf("xdriver: paint: %v", err)
		ximg.Destroy()
		return
	}
	ximg.XDraw()
	ximg.XPaint(win.Win.Id)

	if win.ximg != nil {
		win.ximg.Destroy()
	}
	win.ximg = ximg
}
