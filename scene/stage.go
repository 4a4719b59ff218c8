package scene

import (
	"fmt"
	"strings"

	"github.com/jmigpin/nodedrag/ui"
	"github.com/jmigpin/nodedrag/util/uiutil/drag"
	"github.com/jmigpin/nodedrag/util/uiutil/event"
)

// Document built from a scene with every draggable node bound to a drag
// controller. Moves reposition the node.
type Stage struct {
	Doc      *ui.Document
	Bindings map[string]*drag.Binding
	Trace    Trace

	// Called after each recorded drag event (ex: repaint).
	OnEvent func(id string, ev drag.Event)

	ctrl    *drag.Controller
	buttons event.MouseButtons // currently pressed
}

func (sc *Scene) NewStage(opts ...drag.Option) (*Stage, error) {
	doc := ui.NewDocument()
	doc.Scroll = event.Vec(sc.Scroll[0], sc.Scroll[1])

	st := &Stage{
		Doc:      doc,
		Bindings: map[string]*drag.Binding{},
		ctrl:     drag.NewController(doc.EvReg(), opts...),
	}
	for _, n := range sc.Nodes {
		var parent *ui.Element
		if n.Parent != "" {
			p, ok := doc.Element(n.Parent)
			if !ok {
				return nil, fmt.Errorf("node %q: parent not found: %q", n.Id, n.Parent)
			}
			parent = p
		}
		e, err := doc.NewElement(n.Id, parent, n.rect())
		if err != nil {
			return nil, err
		}
		if n.Draggable {
			st.bind(e)
		}
	}
	return st, nil
}

func (st *Stage) bind(e *ui.Element) {
	id := e.Id
	st.Bindings[id] = st.ctrl.Bind(e, drag.FuncCallbacks(func(ev drag.Event) {
		if ev.Kind == drag.Move {
			e.SetPos(ev.Pos[0], ev.Pos[1])
		}
		st.Trace = append(st.Trace, TraceEntry{Id: id, Event: ev})
		if st.OnEvent != nil {
			st.OnEvent(id, ev)
		}
	}))
}

//----------

func (st *Stage) Replay(steps []Step) error {
	for i := range steps {
		if err := st.Step(&steps[i]); err != nil {
			return fmt.Errorf("step %v: %w", i, err)
		}
	}
	return nil
}

func (st *Stage) Step(s *Step) error {
	if err := s.validate(); err != nil {
		return err
	}
	b := s.button()
	switch {
	case s.Down != nil:
		st.buttons |= event.Buttons(b)
		st.Doc.PointerDown(event.Vec(s.Down[0], s.Down[1]), b)
	case s.Move != nil:
		st.Doc.PointerMove(event.Vec(s.Move[0], s.Move[1]), st.buttons)
	case s.Up != nil:
		st.buttons &^= event.Buttons(b)
		st.Doc.PointerUp(event.Vec(s.Up[0], s.Up[1]), b)
	case s.Scroll != nil:
		st.Doc.Scroll = event.Vec(s.Scroll[0], s.Scroll[1])
	case s.Cancel != "":
		bd, ok := st.Bindings[s.Cancel]
		if !ok {
			return fmt.Errorf("node not draggable: %q", s.Cancel)
		}
		bd.Cancel()
	}
	return nil
}

// Builds a stage and replays the scene steps.
func (sc *Scene) Run(opts ...drag.Option) (*Stage, error) {
	st, err := sc.NewStage(opts...)
	if err != nil {
		return nil, err
	}
	if err := st.Replay(sc.Steps); err != nil {
		return st, err
	}
	return st, nil
}

//----------

type TraceEntry struct {
	Id    string
	Event drag.Event
}

func (te TraceEntry) String() string {
	return te.Id + " " + te.Event.String()
}

type Trace []TraceEntry

// One entry per line.
func (t Trace) String() string {
	sb := &strings.Builder{}
	for _, e := range t {
		fmt.Fprintln(sb, e.String())
	}
	return sb.String()
}
