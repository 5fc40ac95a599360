// Command swfplay inspects SWF movies and renders their frames to PNG.
//
// Usage:
//
//	swfplay -info movie.swf
//	swfplay -frames 48 -out frames -anim walk -loop movie.swf
//	swfplay -config swfplay.toml movie.swf
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/library"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("swfplay: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, path, err := parseArgs(args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		swf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	movie, err := swf.Load(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	lib, root := library.Preload(swf.NewSlice(movie))

	if cfg.Info {
		printInfo(stdout, movie, lib, root)
		return nil
	}
	n, err := renderFrames(cfg, lib, root)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %d frames to %s\n", n, cfg.Out)
	return nil
}

// parseColor parses an RRGGBB hex color.
func parseColor(s string) (swf.Color, error) {
	if len(s) != 6 {
		return swf.Color{}, fmt.Errorf("color %q: want RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return swf.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return swf.ColorFromRGBA(uint32(v)<<8 | 0xff), nil
}
