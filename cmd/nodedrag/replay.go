package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jmigpin/nodedrag/config"
	"github.com/jmigpin/nodedrag/scene"
)

var replayFlags struct {
	watch bool
	dump  bool
}

var replayCmd = &cobra.Command{
	Use:   "replay [scene.yaml]",
	Short: "Replay the scene steps and print the drag callbacks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReplay,
}

func init() {
	f := replayCmd.Flags()
	f.BoolVar(&replayFlags.watch, "watch", false, "replay again when the scene file changes")
	f.BoolVar(&replayFlags.dump, "dump", false, "dump final node positions")
}

func runReplay(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	filename, err := sceneArg(conf, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !replayFlags.watch {
		return replayFile(out, conf, filename, replayFlags.dump)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return watchFile(ctx, filename, func() {
		if err := replayFile(out, conf, filename, replayFlags.dump); err != nil {
			log.Print(err)
		}
	})
}

func replayFile(w io.Writer, conf *config.Config, filename string, dump bool) error {
	sc, err := scene.Load(filename)
	if err != nil {
		return err
	}
	logger := log.New(os.Stderr, "", conf.LogFlags)
	st, err := sc.Run(conf.DragOptions(logger)...)
	if st != nil {
		fmt.Fprint(w, st.Trace.String())
	}
	if err != nil {
		return err
	}
	if dump {
		pos := map[string][2]float64{}
		for _, e := range st.Doc.Elements() {
			pos[e.Id] = e.Pos
		}
		spew.Fdump(w, pos)
	}
	return nil
}

//----------

// Runs fn once, then again on every write to filename until ctx is done.
func watchFile(ctx context.Context, filename string, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace the file: watch the directory
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	fn()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || name != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.Printf("replay: %v changed", filename)
				fn()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("replay: watch: %v", err)
		}
	}
}
