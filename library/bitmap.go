package library

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif" // DefineBitsJPEG payloads may be GIF
	_ "image/jpeg"
	_ "image/png" // DefineBitsJPEG payloads may be PNG
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/gogpu/swf"
)

// ErrBitmapData is returned when decompressed bitmap data is shorter than
// its declared dimensions require.
var ErrBitmapData = errors.New("library: bitmap data too short")

// Decode decompresses a bitmap definition. JPEG bitmaps with an alpha
// plane and lossless bitmaps with alpha decode to *image.NRGBA and
// *image.RGBA respectively; the rest keep the decoder's image type.
func Decode(b *Bitmap) (image.Image, error) {
	if b.Lossless != nil {
		return decodeLossless(b.Lossless)
	}
	return decodeJPEG(b.JPEG)
}

func decodeJPEG(def *swf.DefineBitsJPEG) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(def.Data))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", def.Format, err)
	}
	// Alpha planes only apply to JPEG data; PNG and GIF carry their own.
	if def.Format != swf.BitmapJPEG || len(def.Alpha) == 0 {
		return img, nil
	}
	bounds := img.Bounds()
	alpha, err := inflate(def.Alpha, bounds.Dx()*bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("alpha: %w", err)
	}
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)
	for i, a := range alpha {
		out.Pix[i*4+3] = a
	}
	return out, nil
}

func decodeLossless(def *swf.DefineBitsLossless) (image.Image, error) {
	w, h := int(def.Width), int(def.Height)
	rect := image.Rect(0, 0, w, h)
	withAlpha := def.Version >= 2

	switch def.Format {
	case swf.LosslessColorMapped8:
		entry := 3
		if withAlpha {
			entry = 4
		}
		stride := (w + 3) &^ 3
		data, err := inflate(def.Data, def.ColorTableSize*entry+stride*h)
		if err != nil {
			return nil, err
		}
		palette := make(color.Palette, def.ColorTableSize)
		for i := range palette {
			c := data[i*entry:]
			if withAlpha {
				palette[i] = premultiplied(c[0], c[1], c[2], c[3])
			} else {
				palette[i] = color.RGBA{c[0], c[1], c[2], 0xff}
			}
		}
		pix := data[def.ColorTableSize*entry:]
		img := image.NewPaletted(rect, palette)
		for y := range h {
			for x := range w {
				idx := pix[y*stride+x]
				if int(idx) >= len(palette) {
					idx = 0
				}
				img.Pix[y*img.Stride+x] = idx
			}
		}
		return img, nil

	case swf.LosslessRGB15:
		stride := (w*2 + 3) &^ 3
		data, err := inflate(def.Data, stride*h)
		if err != nil {
			return nil, err
		}
		img := image.NewRGBA(rect)
		for y := range h {
			for x := range w {
				v := uint16(data[y*stride+x*2])<<8 | uint16(data[y*stride+x*2+1])
				i := y*img.Stride + x*4
				img.Pix[i+0] = expand5(v >> 10)
				img.Pix[i+1] = expand5(v >> 5)
				img.Pix[i+2] = expand5(v)
				img.Pix[i+3] = 0xff
			}
		}
		return img, nil

	case swf.LosslessRGB32:
		data, err := inflate(def.Data, w*h*4)
		if err != nil {
			return nil, err
		}
		img := image.NewRGBA(rect)
		for i := range w * h {
			a, r, g, b := data[i*4], data[i*4+1], data[i*4+2], data[i*4+3]
			if !withAlpha {
				a = 0xff
			}
			c := premultiplied(r, g, b, a)
			copy(img.Pix[i*4:], []byte{c.R, c.G, c.B, c.A})
		}
		return img, nil
	}
	return nil, fmt.Errorf("lossless format %d: %w", def.Format, swf.ErrInvalidData)
}

// premultiplied returns an already premultiplied color, clamping channels
// that exceed alpha as some encoders emit.
func premultiplied(r, g, b, a uint8) color.RGBA {
	return color.RGBA{min(r, a), min(g, a), min(b, a), a}
}

func expand5(v uint16) uint8 {
	v &= 0x1f
	return uint8(v<<3 | v>>2)
}

func inflate(data []byte, want int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	defer zr.Close()
	out := make([]byte, want)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBitmapData, err)
	}
	return out, nil
}
