package evreg

import "container/list"

// The zero register is empty and ready for use.
type Register struct {
	m map[int]*list.List
}

//----------

// Remove is done via *Regist.Unregister().
func (reg *Register) Add(evId int, fn func(any)) *Regist {
	return reg.AddCallback(evId, &Callback{F: fn})
}

//----------

func (reg *Register) AddCallback(evId int, cb *Callback) *Regist {
	if reg.m == nil {
		reg.m = map[int]*list.List{}
	}
	l, ok := reg.m[evId]
	if !ok {
		l = list.New()
		reg.m[evId] = l
	}
	elem := l.PushBack(&entry{cb: cb})
	return &Regist{evReg: reg, id: evId, elem: elem}
}

func (reg *Register) remove(evId int, elem *list.Element) {
	if reg.m == nil {
		return
	}
	l, ok := reg.m[evId]
	if !ok {
		return
	}
	l.Remove(elem)
	if l.Len() == 0 {
		delete(reg.m, evId)
	}
}

//----------

// Returns number of callbacks done. Callbacks can unregister themselves (or
// others) while running; removed callbacks that were not yet reached are not
// called.
func (reg *Register) RunCallbacks(evId int, ev any) int {
	if reg.m == nil {
		return 0
	}
	l, ok := reg.m[evId]
	if !ok {
		return 0
	}

	// snapshot: callbacks added during the run only see the next event
	elems := make([]*list.Element, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		elems = append(elems, e)
	}

	c := 0
	for _, e := range elems {
		en := e.Value.(*entry)
		if en.removed {
			continue
		}
		en.cb.F(ev)
		c++
	}
	return c
}

// Number of registered callbacks for an event id.
func (reg *Register) NCallbacks(evId int) int {
	if reg.m == nil {
		return 0
	}
	l, ok := reg.m[evId]
	if !ok {
		return 0
	}
	return l.Len()
}

//----------

// The same callback can be added more than once; each add is a separate
// registration.
type Callback struct {
	F func(ev any)
}

type entry struct {
	cb      *Callback
	removed bool
}

//----------

// Handle to a single registration. Unregister is idempotent.
type Regist struct {
	evReg *Register
	id    int
	elem  *list.Element
}

func (reg *Regist) Unregister() {
	if reg == nil || reg.elem == nil {
		return
	}
	reg.elem.Value.(*entry).removed = true
	reg.evReg.remove(reg.id, reg.elem)
	reg.elem = nil
}

// Reports whether the callback is still registered.
func (reg *Regist) Registered() bool {
	return reg != nil && reg.elem != nil
}

//----------

// Utility to unregister a group of regists at once.
type Unregister struct {
	v []*Regist
}

func (unr *Unregister) Add(u ...*Regist) {
	unr.v = append(unr.v, u...)
}
func (unr *Unregister) UnregisterAll() {
	for _, e := range unr.v {
		e.Unregister()
	}
	unr.v = nil
}
func (unr *Unregister) Len() int {
	return len(unr.v)
}
