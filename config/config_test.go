package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmigpin/nodedrag/util/evreg"
	"github.com/jmigpin/nodedrag/util/uiutil/drag"
	"github.com/jmigpin/nodedrag/util/uiutil/event"
	"golang.org/x/image/math/f64"
)

func TestLoadOrInit(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sub", configFile)

	conf, err := LoadOrInit(filename)
	if err != nil {
		t.Fatal(err)
	}
	if *conf != *Default() {
		t.Fatal(conf)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Fatal(err)
	}

	// second time reads the written file
	conf.Button = "middle"
	conf.Debug = true
	if err := Write(filename, conf); err != nil {
		t.Fatal(err)
	}
	conf2, err := LoadOrInit(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !conf2.Debug || conf2.MouseButton() != event.ButtonMiddle {
		t.Fatal(conf2)
	}
}

func TestReadPartial(t *testing.T) {
	filename := writeFile(t, "Button = \"right\"\n")
	conf, err := Read(filename)
	if err != nil {
		t.Fatal(err)
	}
	if conf.MouseButton() != event.ButtonRight || conf.WindowWidth != Default().WindowWidth {
		t.Fatal(conf)
	}
	if len(conf.DragOptions(nil)) != 3 {
		t.Fatal("expecting button filter option")
	}
}

func TestDragOptionsAnyButton(t *testing.T) {
	conf := Default()
	if conf.MouseButton() != event.ButtonNone {
		t.Fatal(conf.MouseButton())
	}
	if len(conf.DragOptions(nil)) != 2 {
		t.Fatal("unexpected button filter option")
	}

	// default controller ends on a release of another button
	doc := &evreg.Register{}
	ctrl := drag.NewController(doc, conf.DragOptions(nil)...)
	s := &testSurface{}
	ended := false
	ctrl.Bind(s, drag.Callbacks{OnEnd: func() { ended = true }})
	s.reg.RunCallbacks(event.PointerDownEvId, &event.PointerDown{Button: event.ButtonRight})
	doc.RunCallbacks(event.PointerUpEvId, &event.PointerUp{Button: event.ButtonLeft})
	if !ended {
		t.Fatal("expecting end")
	}
}

func TestReadErrors(t *testing.T) {
	for _, s := range []string{
		"Button = \"wheel\"\n",
		"WindowWidth = 0\n",
		"Unknown = 1\n",
		"Button = \n",
	} {
		if _, err := Read(writeFile(t, s)); err == nil {
			t.Fatalf("expecting error: %q", s)
		}
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if d := Dir(); d != "/tmp/xdg/nodedrag" {
		t.Fatal(d)
	}
	if p := DefaultPath(); p != "/tmp/xdg/nodedrag/config.toml" {
		t.Fatal(p)
	}
}

//----------

func writeFile(t *testing.T, s string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), configFile)
	if err := os.WriteFile(filename, []byte(s), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

type testSurface struct {
	reg evreg.Register
}

func (s *testSurface) EvReg() *evreg.Register         { return &s.reg }
func (s *testSurface) BoundingBox() event.Rect        { return event.RectXYWH(0, 0, 10, 10) }
func (s *testSurface) ParentOffset() (f64.Vec2, bool) { return f64.Vec2{}, true }
