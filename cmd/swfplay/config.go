package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// config holds the settings of one run. A config file supplies defaults;
// flags given on the command line override it.
type config struct {
	Info       bool    `toml:"info" yaml:"info"`
	Frames     int     `toml:"frames" yaml:"frames"`
	Out        string  `toml:"out" yaml:"out"`
	Anim       string  `toml:"anim" yaml:"anim"`
	Loop       bool    `toml:"loop" yaml:"loop"`
	Scale      float64 `toml:"scale" yaml:"scale"`
	Background string  `toml:"background" yaml:"background"`
	Verbose    bool    `toml:"verbose" yaml:"verbose"`
}

func defaultConfig() config {
	return config{Frames: 1, Out: ".", Scale: 1}
}

// loadConfig reads a TOML or YAML file into cfg, picking the format by
// extension. Keys absent from the file keep their current value.
func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported format, want .toml or .yaml", path)
	}
	return nil
}

// parseArgs parses the command line. The config file named by -config is
// applied first, then every flag that was set explicitly.
func parseArgs(args []string) (config, string, error) {
	fs := flag.NewFlagSet("swfplay", flag.ContinueOnError)
	var (
		flags      = defaultConfig()
		configPath = fs.String("config", "", "TOML or YAML file with default settings")
	)
	fs.BoolVar(&flags.Info, "info", false, "print the movie header, labels and characters")
	fs.IntVar(&flags.Frames, "frames", flags.Frames, "number of frames to render")
	fs.StringVar(&flags.Out, "out", flags.Out, "output directory for PNG frames")
	fs.StringVar(&flags.Anim, "anim", "", "animation (frame label) to play")
	fs.BoolVar(&flags.Loop, "loop", false, "loop the animation")
	fs.Float64Var(&flags.Scale, "scale", flags.Scale, "output pixels per stage pixel")
	fs.StringVar(&flags.Background, "background", "", "background color as RRGGBB, overrides the movie's")
	fs.BoolVar(&flags.Verbose, "v", false, "log timeline diagnostics to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: swfplay [flags] file.swf")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return config{}, "", fmt.Errorf("expected one movie file, got %d arguments", fs.NArg())
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return config{}, "", err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "info":
			cfg.Info = flags.Info
		case "frames":
			cfg.Frames = flags.Frames
		case "out":
			cfg.Out = flags.Out
		case "anim":
			cfg.Anim = flags.Anim
		case "loop":
			cfg.Loop = flags.Loop
		case "scale":
			cfg.Scale = flags.Scale
		case "background":
			cfg.Background = flags.Background
		case "v":
			cfg.Verbose = flags.Verbose
		}
	})
	return cfg, fs.Arg(0), nil
}
