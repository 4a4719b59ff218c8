package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmigpin/nodedrag/config"
)

func TestReplayFile(t *testing.T) {
	buf := &bytes.Buffer{}
	conf := config.Default()
	if err := replayFile(buf, conf, "../../scene/testdata/anchor.yaml", true); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	want := "n1 start\nn1 move(200,150,0,0)\nn1 move(210,150,10,0)\nn1 end\n"
	if !strings.HasPrefix(s, want) {
		t.Fatalf("got:\n%s", s)
	}
	if !strings.Contains(s, "210") || !strings.Contains(s, "n1") {
		t.Fatalf("expecting dump:\n%s", s)
	}
}

func TestReplayExample(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "example.yaml")
	buf := &bytes.Buffer{}
	if err := exampleScene().Encode(buf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	out := &bytes.Buffer{}
	if err := replayFile(out, config.Default(), filename, false); err != nil {
		t.Fatal(err)
	}
	want := "filter start\nfilter move(270,110,0,0)\nfilter move(290,220,20,110)\nfilter end\n"
	if out.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestSceneArg(t *testing.T) {
	conf := config.Default()
	if _, err := sceneArg(conf, nil); err == nil {
		t.Fatal("expecting error")
	}
	conf.Scene = "a.yaml"
	if s, _ := sceneArg(conf, nil); s != "a.yaml" {
		t.Fatal(s)
	}
	if s, _ := sceneArg(conf, []string{"b.yaml"}); s != "b.yaml" {
		t.Fatal(s)
	}
}

func TestWatchFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(filename, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, filename, func() { calls <- struct{}{} })
	}()

	wait := func() {
		t.Helper()
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatal("timeout")
		}
	}
	wait() // initial run
	if err := os.WriteFile(filename, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	wait()

	cancel()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}
