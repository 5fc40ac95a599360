package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/swf/library"
	"github.com/gogpu/swf/player"
	"github.com/gogpu/swf/render"
)

// renderFrames plays the movie for cfg.Frames ticks and writes each frame
// to cfg.Out as frameNNNN.png. Frames are rendered in order; encoding
// runs in parallel.
func renderFrames(cfg config, lib *library.Library, root *library.Sprite) (int, error) {
	if cfg.Frames <= 0 {
		return 0, errors.New("frames must be positive")
	}
	p, err := player.New(lib, root,
		player.WithAnimation(cfg.Anim),
		player.WithLooping(cfg.Loop),
	)
	if err != nil {
		return 0, err
	}

	opts := []render.Option{render.WithScale(cfg.Scale)}
	if cfg.Background != "" {
		c, err := parseColor(cfg.Background)
		if err != nil {
			return 0, err
		}
		opts = append(opts, render.WithBackground(c))
	}
	w, h := frameSize(lib, cfg.Scale)
	r := render.NewRasterizer(lib, opts...)

	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return 0, err
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range cfg.Frames {
		target := render.NewPixmapTarget(w, h)
		if err := r.Render(target, p.Root()); err != nil {
			_ = g.Wait()
			return i, fmt.Errorf("frame %d: %w", i+1, err)
		}
		name := filepath.Join(cfg.Out, fmt.Sprintf("frame%04d.png", i+1))
		img := target.Image()
		g.Go(func() error { return writePNG(name, img) })
		p.Advance()
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return cfg.Frames, nil
}

// frameSize returns the stage size in output pixels.
func frameSize(lib *library.Library, scale float64) (w, h int) {
	stage := lib.Movie().StageSize()
	w = int(math.Ceil(stage.Width().Pixels() * scale))
	h = int(math.Ceil(stage.Height().Pixels() * scale))
	return max(w, 1), max(h, 1)
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}
