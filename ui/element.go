package ui

import (
	"github.com/jmigpin/nodedrag/util/evreg"
	"github.com/jmigpin/nodedrag/util/uiutil/event"
	"golang.org/x/image/math/f64"
)

// Rectangular node of the document tree. Implements drag.Surface.
type Element struct {
	Id   string
	Pos  f64.Vec2 // relative to the parent top-left (page coords for roots)
	Size f64.Vec2

	doc      *Document
	parent   *Element
	children []*Element

	reg evreg.Register
}

func (e *Element) EvReg() *evreg.Register {
	return &e.reg
}

func (e *Element) Children() []*Element {
	return e.children
}

func (e *Element) Attached() bool {
	return e.doc != nil
}

//----------

func (e *Element) SetPos(x, y float64) {
	e.Pos = f64.Vec2{x, y}
}

// Position in page coordinates.
func (e *Element) PagePos() (f64.Vec2, bool) {
	if e.doc == nil {
		return f64.Vec2{}, false
	}
	p := e.Pos
	for u := e.parent; u != nil; u = u.parent {
		p = event.Add(p, u.Pos)
	}
	return p, true
}

func (e *Element) PageRect() (event.Rect, bool) {
	p, ok := e.PagePos()
	if !ok {
		return event.NaNRect(), false
	}
	return event.Rect{Min: p, Max: event.Add(p, e.Size)}, true
}

// Client coordinates. NaN when detached.
func (e *Element) BoundingBox() event.Rect {
	r, ok := e.PageRect()
	if !ok {
		return r
	}
	return r.Add(event.Sub(f64.Vec2{}, e.doc.Scroll))
}

// Page position of the parent; the document body (0,0) for roots.
func (e *Element) ParentOffset() (f64.Vec2, bool) {
	if e.doc == nil {
		return f64.Vec2{}, false
	}
	if e.parent == nil {
		return f64.Vec2{}, true
	}
	return e.parent.PagePos()
}

//----------

// Removes the element (and its subtree) from the document. Listeners stay
// registered; drags in progress keep receiving document events.
func (e *Element) Detach() {
	if e.doc == nil {
		return
	}
	if e.parent != nil {
		e.parent.children = removeElem(e.parent.children, e)
	} else {
		e.doc.roots = removeElem(e.doc.roots, e)
	}
	e.doc.unindex(e)
	e.parent = nil
}

func (e *Element) iterate(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.iterate(fn)
	}
}

func removeElem(v []*Element, e *Element) []*Element {
	for i, u := range v {
		if u == e {
			return append(v[:i:i], v[i+1:]...)
		}
	}
	return v
}
