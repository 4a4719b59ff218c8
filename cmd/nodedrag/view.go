package main

import (
	"image"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmigpin/nodedrag/driver/xdriver"
	"github.com/jmigpin/nodedrag/scene"
	"github.com/jmigpin/nodedrag/util/uiutil/drag"
)

var viewCmd = &cobra.Command{
	Use:   "view [scene.yaml]",
	Short: "Open an X11 window to drag the scene nodes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	filename, err := sceneArg(conf, args)
	if err != nil {
		return err
	}
	sc, err := scene.Load(filename)
	if err != nil {
		return err
	}
	logger := log.New(os.Stderr, "", conf.LogFlags)
	st, err := sc.NewStage(conf.DragOptions(logger)...)
	if err != nil {
		return err
	}
	if conf.Debug {
		st.OnEvent = func(id string, ev drag.Event) {
			logger.Printf("%v %v", id, ev)
		}
	}

	size := image.Point{conf.WindowWidth, conf.WindowHeight}
	win, err := xdriver.NewWindow(st.Doc, "nodedrag: "+filename, size)
	if err != nil {
		return err
	}
	defer win.Close()
	win.IsActive = func(id string) bool {
		b, ok := st.Bindings[id]
		return ok && b.Active()
	}
	win.Run()
	return nil
}
