// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewPixmapTarget(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"small", 100, 100},
		{"stage", 550, 400},
		{"wide", 1000, 100},
		{"tall", 100, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewPixmapTarget(tt.width, tt.height)

			if target.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", target.Width(), tt.width)
			}
			if target.Height() != tt.height {
				t.Errorf("Height() = %d, want %d", target.Height(), tt.height)
			}
			if target.Format() != gputypes.TextureFormatRGBA8Unorm {
				t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
			}
			if target.Pixels() == nil {
				t.Error("Pixels() should not be nil for CPU target")
			}
			if target.Stride() != tt.width*4 {
				t.Errorf("Stride() = %d, want %d", target.Stride(), tt.width*4)
			}
		})
	}
}

func TestPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	img.SetRGBA(50, 50, color.RGBA{255, 0, 0, 255})

	target := NewPixmapTargetFromImage(img)
	if target.Width() != 200 || target.Height() != 150 {
		t.Errorf("size = %dx%d, want 200x150", target.Width(), target.Height())
	}
	if got := target.GetPixel(50, 50); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("GetPixel(50, 50) = %v, want red", got)
	}
	if targetImage(target) != img {
		t.Error("targetImage() copied the image")
	}
}

func TestPixmapTargetClear(t *testing.T) {
	target := NewPixmapTarget(10, 10)
	target.Clear(color.RGBA{0, 0, 255, 255})

	for y := range 10 {
		for x := range 10 {
			if got := target.GetPixel(x, y); got != (color.RGBA{0, 0, 255, 255}) {
				t.Fatalf("GetPixel(%d, %d) = %v, want blue", x, y, got)
			}
		}
	}
}

type rawTarget struct{ *PixmapTarget }

func TestTargetImage_Wraps(t *testing.T) {
	inner := NewPixmapTarget(3, 2)
	img := targetImage(rawTarget{inner})
	img.SetRGBA(2, 1, color.RGBA{1, 2, 3, 4})
	if got := inner.GetPixel(2, 1); got != (color.RGBA{1, 2, 3, 4}) {
		t.Errorf("write through wrapped pixels = %v", got)
	}
}
