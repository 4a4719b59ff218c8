// Minimal retained element tree used to host draggable nodes.
package ui

import (
	"fmt"

	"github.com/jmigpin/nodedrag/util/evreg"
	"github.com/jmigpin/nodedrag/util/uiutil/event"
	"golang.org/x/image/math/f64"
)

type Document struct {
	Scroll f64.Vec2 // page = client + scroll

	reg   evreg.Register
	roots []*Element
	ids   map[string]*Element
}

func NewDocument() *Document {
	return &Document{ids: map[string]*Element{}}
}

// Document level listeners. Receive every pointer event after the target.
func (d *Document) EvReg() *evreg.Register {
	return &d.reg
}

//----------

// A nil parent makes a root element. Ids must be unique.
func (d *Document) NewElement(id string, parent *Element, r event.Rect) (*Element, error) {
	if _, ok := d.ids[id]; ok {
		return nil, fmt.Errorf("duplicate element id: %q", id)
	}
	if parent != nil && parent.doc != d {
		return nil, fmt.Errorf("element %q: parent %q not in document", id, parent.Id)
	}
	e := &Element{
		Id:     id,
		Pos:    r.Min,
		Size:   event.Sub(r.Max, r.Min),
		doc:    d,
		parent: parent,
	}
	if parent != nil {
		parent.children = append(parent.children, e)
	} else {
		d.roots = append(d.roots, e)
	}
	d.ids[id] = e
	return e, nil
}

func (d *Document) Element(id string) (*Element, bool) {
	e, ok := d.ids[id]
	return e, ok
}

// Paint order: parents before children, siblings in insertion order.
func (d *Document) Elements() []*Element {
	u := []*Element{}
	for _, r := range d.roots {
		r.iterate(func(e *Element) { u = append(u, e) })
	}
	return u
}

func (d *Document) unindex(e *Element) {
	e.iterate(func(c *Element) {
		delete(d.ids, c.Id)
		c.doc = nil
	})
}

//----------

// Topmost element under the client point.
func (d *Document) ElementAt(client f64.Vec2) (*Element, bool) {
	v := d.Elements()
	for i := len(v) - 1; i >= 0; i-- {
		if v[i].BoundingBox().Contains(client) {
			return v[i], true
		}
	}
	return nil, false
}

func (d *Document) PagePoint(client f64.Vec2) f64.Vec2 {
	return event.Add(client, d.Scroll)
}

//----------

// Pointer-down goes to the element under the point and bubbles to its
// ancestors. Every event then runs the document listeners.
func (d *Document) Dispatch(ev any) event.Handle {
	id := event.EvId(ev)
	if id < 0 {
		return event.NotHandled
	}
	n := 0
	if down, ok := ev.(*event.PointerDown); ok {
		if e, ok := d.ElementAt(down.Client); ok {
			for u := e; u != nil; u = u.parent {
				n += u.reg.RunCallbacks(id, ev)
			}
		}
	}
	n += d.reg.RunCallbacks(id, ev)
	return event.Handle(n > 0)
}

//----------

func (d *Document) PointerDown(client f64.Vec2, b event.MouseButton) event.Handle {
	return d.Dispatch(&event.PointerDown{Client: client, Page: d.PagePoint(client), Button: b})
}
func (d *Document) PointerMove(client f64.Vec2, bs event.MouseButtons) event.Handle {
	return d.Dispatch(&event.PointerMove{Client: client, Page: d.PagePoint(client), Buttons: bs})
}
func (d *Document) PointerUp(client f64.Vec2, b event.MouseButton) event.Handle {
	return d.Dispatch(&event.PointerUp{Client: client, Page: d.PagePoint(client), Button: b})
}
