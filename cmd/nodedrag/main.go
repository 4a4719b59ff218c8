// Drives node drag scenes: replays scripted gestures or opens an X11 window
// to drag the scene nodes by hand.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmigpin/nodedrag/config"
)

var flags struct {
	config string
	button string
	debug  bool
}

var rootCmd = &cobra.Command{
	Use:           "nodedrag",
	Short:         "Pointer drag tracking for node graph scenes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", config.DefaultPath(), "config file (created if missing)")
	pf.StringVar(&flags.button, "button", "", "drag button: any, left, middle, right (overrides config)")
	pf.BoolVar(&flags.debug, "debug", false, "log gesture transitions")

	rootCmd.AddCommand(replayCmd, viewCmd, configCmd, exampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//----------

// Config file with command line overrides. Also sets up the log flags.
func loadConfig() (*config.Config, error) {
	conf, err := config.LoadOrInit(flags.config)
	if err != nil {
		return nil, err
	}
	if flags.button != "" {
		conf.Button = flags.button
		if err := conf.Validate(); err != nil {
			return nil, err
		}
	}
	if flags.debug {
		conf.Debug = true
	}
	log.SetFlags(conf.LogFlags)
	return conf, nil
}

func sceneArg(conf *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if conf.Scene != "" {
		return conf.Scene, nil
	}
	return "", fmt.Errorf("missing scene file (arg or config Scene)")
}
