package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/jmigpin/nodedrag/util/uiutil/drag"
	"github.com/jmigpin/nodedrag/util/uiutil/event"
)

type Config struct {
	Button       string // mouse button that drags: any, left, middle, right
	Debug        bool   // log gesture transitions
	LogFlags     int
	WindowWidth  int
	WindowHeight int
	Scene        string // default scene file
}

func Default() *Config {
	return &Config{
		Button:       AnyButton,
		LogFlags:     log.Lshortfile,
		WindowWidth:  800,
		WindowHeight: 600,
	}
}

const configFile = "config.toml"

// Button value that leaves the drag controller unfiltered.
const AnyButton = "any"

func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "nodedrag")
}

func DefaultPath() string {
	return filepath.Join(Dir(), configFile)
}

//----------

// Reads the file, writing the defaults first if it doesn't exist.
func LoadOrInit(filename string) (*Config, error) {
	if _, err := os.Stat(filename); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		conf := Default()
		if err := Write(filename, conf); err != nil {
			return nil, errors.Wrap(err, "init config")
		}
		return conf, nil
	}
	return Read(filename)
}

func Read(filename string) (*Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(filename, conf)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if u := md.Undecoded(); len(u) > 0 {
		return nil, fmt.Errorf("read config: unknown keys: %v", u)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return conf, nil
}

func Write(filename string, conf *Config) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(conf); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}

//----------

func (conf *Config) Validate() error {
	if conf.Button != AnyButton {
		if _, ok := event.ParseMouseButton(conf.Button); !ok {
			return fmt.Errorf("bad button: %q", conf.Button)
		}
	}
	if conf.WindowWidth <= 0 || conf.WindowHeight <= 0 {
		return fmt.Errorf("bad window size: %vx%v", conf.WindowWidth, conf.WindowHeight)
	}
	return nil
}

// ButtonNone if any button drags.
func (conf *Config) MouseButton() event.MouseButton {
	if conf.Button == AnyButton {
		return event.ButtonNone
	}
	b, _ := event.ParseMouseButton(conf.Button)
	return b
}

// Drag controller options for this config.
func (conf *Config) DragOptions(logger *log.Logger) []drag.Option {
	opts := []drag.Option{
		drag.WithLogger(logger),
		drag.WithDebug(conf.Debug),
	}
	if b := conf.MouseButton(); b != event.ButtonNone {
		opts = append(opts, drag.WithButtons(b))
	}
	return opts
}
