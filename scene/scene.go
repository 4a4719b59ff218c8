// Scene files: a tree of nodes (some draggable) plus a script of pointer
// steps to replay against it.
package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jmigpin/nodedrag/util/uiutil/event"
)

type Scene struct {
	Scroll [2]float64 `yaml:"scroll"`
	Nodes  []Node     `yaml:"nodes"`
	Steps  []Step     `yaml:"steps"`
}

type Node struct {
	Id        string     `yaml:"id"`
	Parent    string     `yaml:"parent,omitempty"`
	Rect      [4]float64 `yaml:"rect"` // x,y,w,h relative to parent
	Draggable bool       `yaml:"draggable,omitempty"`
}

func (n *Node) rect() event.Rect {
	return event.RectXYWH(n.Rect[0], n.Rect[1], n.Rect[2], n.Rect[3])
}

// One action per step. Points are client coordinates.
type Step struct {
	Down   *[2]float64 `yaml:"down,omitempty"`
	Move   *[2]float64 `yaml:"move,omitempty"`
	Up     *[2]float64 `yaml:"up,omitempty"`
	Scroll *[2]float64 `yaml:"scroll,omitempty"` // sets the document scroll
	Cancel string      `yaml:"cancel,omitempty"` // node id
	Button string      `yaml:"button,omitempty"` // defaults to left
}

func (st *Step) validate() error {
	n := 0
	for _, b := range []bool{st.Down != nil, st.Move != nil, st.Up != nil, st.Scroll != nil, st.Cancel != ""} {
		if b {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("expecting exactly one action, got %v", n)
	}
	if _, ok := event.ParseMouseButton(st.Button); !ok {
		return fmt.Errorf("bad button: %q", st.Button)
	}
	return nil
}

func (st *Step) button() event.MouseButton {
	b, _ := event.ParseMouseButton(st.Button)
	return b
}

//----------

func Load(filename string) (*Scene, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return sc, nil
}

func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	sc := &Scene{}
	if err := dec.Decode(sc); err != nil {
		if err == io.EOF {
			return sc, nil
		}
		return nil, errors.Wrap(err, "decode")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *Scene) Validate() error {
	seen := map[string]bool{}
	for i, n := range sc.Nodes {
		if n.Id == "" {
			return fmt.Errorf("node %v: missing id", i)
		}
		if seen[n.Id] {
			return fmt.Errorf("node %v: duplicate id %q", i, n.Id)
		}
		if n.Parent != "" && !seen[n.Parent] {
			return fmt.Errorf("node %q: parent %q must be declared before", n.Id, n.Parent)
		}
		seen[n.Id] = true
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		if err := st.validate(); err != nil {
			return errors.Wrapf(err, "step %v", i)
		}
		if st.Cancel != "" && !seen[st.Cancel] {
			return fmt.Errorf("step %v: unknown node %q", i, st.Cancel)
		}
	}
	return nil
}

func (sc *Scene) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return err
	}
	return enc.Close()
}
