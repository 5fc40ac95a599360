// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/display"
	"github.com/gogpu/swf/library"
	"github.com/gogpu/swf/shape"
)

// Rasterizer is a CPU renderer for a display tree.
//
// It draws the fills and strokes of graphics and morph shapes, with
// solid, gradient and bitmap paints, and clip layers. Color transforms
// are honoured; blend modes and filters are not, everything composites
// source-over.
//
// A Rasterizer keeps scratch buffers between frames and is not safe for
// concurrent use.
type Rasterizer struct {
	lib  *library.Library
	opts options

	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
	cov     *image.Alpha
	acc     *image.Alpha
	layer   *image.RGBA
	dst     *image.RGBA
	view    f64.Aff3
	clips   []clipMask

	// Distilled graphics by character id. Morph shapes change with their
	// ratio and are distilled on every draw.
	graphics map[swf.CharacterID]*shape.Distilled
}

// clipMask is an active clip layer. It masks the siblings above it up to
// clipDepth and their descendants.
type clipMask struct {
	level     int
	clipDepth swf.Depth
	mask      *image.Alpha

	// building is set while the layer's own descendants are still being
	// added to the mask.
	building bool
}

// NewRasterizer creates a rasterizer drawing characters from lib.
func NewRasterizer(lib *library.Library, opts ...Option) *Rasterizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Rasterizer{
		lib:      lib,
		opts:     o,
		graphics: make(map[swf.CharacterID]*shape.Distilled),
	}
}

// Render clears target and draws root into it. Stage coordinates are
// mapped so the stage origin lands on the target origin.
func (r *Rasterizer) Render(target RenderTarget, root display.Object) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	dst := targetImage(target)
	if dst == nil {
		return errors.New("render: target does not support CPU rendering")
	}
	r.begin(dst)
	r.clear()
	if root == nil {
		return nil
	}

	Walk(root, r.lib, func(it *Item) bool {
		r.popClips(it)
		d := r.distill(it.Object)
		if top := r.topClip(); top != nil && top.building {
			if d != nil {
				r.addToMask(top.mask, d, it)
			}
			return true
		}
		if it.ClipDepth > 0 {
			r.pushClip(d, it)
			return true
		}
		if d != nil {
			r.drawShape(d, it)
		}
		return true
	})
	return nil
}

func (r *Rasterizer) begin(dst *image.RGBA) {
	r.dst = dst
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if r.cov == nil || r.cov.Bounds() != dst.Bounds() {
		r.cov = image.NewAlpha(dst.Bounds())
		r.acc = image.NewAlpha(dst.Bounds())
		r.layer = image.NewRGBA(dst.Bounds())
		r.scanner = rasterx.NewScannerGV(w, h, r.cov, r.cov.Bounds())
		r.scanner.SetColor(color.Opaque)
		r.filler = rasterx.NewFiller(w, h, r.scanner)
		r.stroker = rasterx.NewStroker(w, h, r.scanner)
	}
	r.clips = r.clips[:0]
	r.view = r.viewTransform(w, h)
}

// viewTransform maps twips in stage space to target pixels.
func (r *Rasterizer) viewTransform(w, h int) f64.Aff3 {
	s := r.opts.scale / swf.TwipsPerPixel
	var origin swf.Point
	if r.lib != nil {
		if stage := r.lib.Movie().StageSize(); stage.Valid() {
			origin = swf.Pt(stage.XMin, stage.YMin)
		}
	}
	sx, tx := s, -s*float64(origin.X)
	sy, ty := s, -s*float64(origin.Y)
	if r.opts.flipX {
		sx, tx = -sx, float64(w)-tx
	}
	if r.opts.flipY {
		sy, ty = -sy, float64(h)-ty
	}
	return f64.Aff3{sx, 0, tx, 0, sy, ty}
}

func (r *Rasterizer) clear() {
	var bg color.Color = color.Transparent
	if r.opts.background != nil {
		bg = *r.opts.background
	} else if r.lib != nil {
		if c, ok := r.lib.Movie().BackgroundColor(); ok {
			bg = c
		}
	}
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (r *Rasterizer) distill(obj display.Object) *shape.Distilled {
	switch o := obj.(type) {
	case *display.Graphic:
		if d, ok := r.graphics[o.CharacterID()]; ok {
			return d
		}
		d := shape.Distill(o.Shape())
		r.graphics[o.CharacterID()] = &d
		return &d
	case *display.MorphShape:
		d := shape.Distill(o.Frame().Shape)
		return &d
	default:
		return nil
	}
}

func (r *Rasterizer) topClip() *clipMask {
	if len(r.clips) == 0 {
		return nil
	}
	return &r.clips[len(r.clips)-1]
}

// currentMask returns the combined mask of every finished clip layer, or
// nil when nothing clips.
func (r *Rasterizer) currentMask() *image.Alpha {
	if top := r.topClip(); top != nil && !top.building {
		return top.mask
	}
	return nil
}

// popClips finishes and discards clip layers that no longer apply to it.
func (r *Rasterizer) popClips(it *Item) {
	for len(r.clips) > 0 {
		top := &r.clips[len(r.clips)-1]
		if top.building {
			if it.Level > top.level {
				return
			}
			top.building = false
			if len(r.clips) > 1 {
				intersect(top.mask, r.clips[len(r.clips)-2].mask)
			}
		}
		if it.Level > top.level || (it.Level == top.level && it.Depth <= top.clipDepth) {
			return
		}
		r.clips = r.clips[:len(r.clips)-1]
	}
}

// pushClip starts a clip layer. A movie clip layer keeps building its
// mask from its descendants; a shape layer is complete at once.
func (r *Rasterizer) pushClip(d *shape.Distilled, it *Item) {
	mask := image.NewAlpha(r.dst.Bounds())
	if d != nil {
		r.addToMask(mask, d, it)
	}
	_, building := it.Object.(*display.MovieClip)
	if !building {
		if parent := r.currentMask(); parent != nil {
			intersect(mask, parent)
		}
	}
	r.clips = append(r.clips, clipMask{
		level:     it.Level,
		clipDepth: it.ClipDepth,
		mask:      mask,
		building:  building,
	})
}

// addToMask unions the fills of d into mask.
func (r *Rasterizer) addToMask(mask *image.Alpha, d *shape.Distilled, it *Item) {
	m := r.objectTransform(it)
	for i := range d.Paths {
		p := &d.Paths[i]
		if p.IsStroke() {
			continue
		}
		r.fillCoverage(p, m)
		for j, a := range r.cov.Pix {
			mask.Pix[j] = max(mask.Pix[j], a)
		}
	}
}

func (r *Rasterizer) objectTransform(it *Item) f64.Aff3 {
	return mul(r.view, toAff3(it.Transform.Matrix))
}

func (r *Rasterizer) drawShape(d *shape.Distilled, it *Item) {
	m := r.objectTransform(it)
	ct := it.Transform.ColorTransform
	clip := r.currentMask()
	for i := range d.Paths {
		p := &d.Paths[i]
		var fill swf.FillStyle
		if p.IsStroke() {
			r.strokeCoverage(p, m)
			fill = p.Line.Fill
		} else {
			r.fillCoverage(p, m)
			fill = p.Fill
		}
		if clip != nil {
			intersect(r.cov, clip)
		}
		r.composite(fill, m, ct)
	}
}

// composite draws fill through the coverage mask onto the target.
func (r *Rasterizer) composite(fill swf.FillStyle, m f64.Aff3, ct swf.ColorTransform) {
	b := r.dst.Bounds()
	switch f := fill.(type) {
	case swf.BitmapFill:
		if r.lib == nil {
			break
		}
		img, err := r.lib.DecodeBitmap(f.ID)
		if err != nil {
			swf.Logger().Warn("bitmap fill", "id", f.ID, "err", err)
			break
		}
		if !ct.IsIdentity() {
			img = transformColors(img, ct)
		}
		var interp draw.Interpolator = draw.NearestNeighbor
		if f.Smoothed {
			interp = draw.ApproxBiLinear
		}
		draw.Draw(r.layer, b, image.Transparent, image.Point{}, draw.Src)
		interp.Transform(r.layer, mul(m, toAff3(f.Matrix)), img, img.Bounds(), draw.Src, nil)
		draw.DrawMask(r.dst, b, r.layer, b.Min, r.cov, b.Min, draw.Over)
		return
	case swf.LinearGradientFill:
		r.drawGradient(f.Gradient, false, 0, m, ct)
		return
	case swf.RadialGradientFill:
		r.drawGradient(f.Gradient, true, 0, m, ct)
		return
	case swf.FocalGradientFill:
		r.drawGradient(f.Gradient, true, f.FocalPoint, m, ct)
		return
	}
	c := ct.Apply(swf.FillColor(fill))
	if c.A == 0 {
		return
	}
	draw.DrawMask(r.dst, b, image.NewUniform(c), image.Point{}, r.cov, b.Min, draw.Over)
}

// gradientSize is the half width, in twips, of the square a gradient
// matrix maps onto the shape.
const gradientSize = 16384

// drawGradient paints g through the coverage mask. Linear gradients run
// along the x axis of the gradient square, radial ones out from its
// center with the focal point moved along x.
func (r *Rasterizer) drawGradient(g swf.Gradient, radial bool, focal float64, m f64.Aff3, ct swf.ColorTransform) {
	grad := rasterx.Gradient{
		Matrix:   toMatrix2D(mul(m, toAff3(g.Matrix))),
		Units:    rasterx.UserSpaceOnUse,
		Spread:   spreadMethod(g.Spread),
		IsRadial: radial,
	}
	if radial {
		grad.Points = [5]float64{0, 0, focal * gradientSize, 0, gradientSize}
	} else {
		grad.Points = [5]float64{-gradientSize, 0, gradientSize, 0, 0}
	}
	for _, rec := range g.Records {
		grad.Stops = append(grad.Stops, rasterx.GradStop{
			StopColor: ct.Apply(rec.Color),
			Offset:    float64(rec.Ratio) / 255,
			Opacity:   1,
		})
	}

	b := r.dst.Bounds()
	var src image.Image
	switch paint := grad.GetColorFunction(1).(type) {
	case rasterx.ColorFunc:
		src = funcImage{fn: paint, bounds: b}
	case color.Color:
		src = image.NewUniform(paint)
	default:
		return
	}
	draw.DrawMask(r.dst, b, src, b.Min, r.cov, b.Min, draw.Over)
}

func spreadMethod(s swf.GradientSpread) rasterx.SpreadMethod {
	switch s {
	case swf.SpreadReflect:
		return rasterx.ReflectSpread
	case swf.SpreadRepeat:
		return rasterx.RepeatSpread
	default:
		return rasterx.PadSpread
	}
}

// funcImage adapts a per-pixel paint to image.Image.
type funcImage struct {
	fn     rasterx.ColorFunc
	bounds image.Rectangle
}

func (f funcImage) ColorModel() color.Model { return color.RGBAModel }
func (f funcImage) Bounds() image.Rectangle { return f.bounds }
func (f funcImage) At(x, y int) color.Color { return f.fn(x, y) }

// fillCoverage rasterizes a fill path into r.cov. The scanner only
// accumulates nonzero winding, so even-odd paths are filled one subpath
// at a time and combined with exclusive or.
func (r *Rasterizer) fillCoverage(p *shape.DrawPath, m f64.Aff3) {
	if p.Rule == shape.NonZero {
		r.clearCoverage()
		r.fillSubpaths(p.Commands, m)
		return
	}

	clear(r.acc.Pix)
	cmds := p.Commands
	for len(cmds) > 0 {
		n := 1
		for n < len(cmds) {
			if _, ok := cmds[n].(shape.MoveTo); ok {
				break
			}
			n++
		}
		r.clearCoverage()
		r.fillSubpaths(cmds[:n], m)
		for i, a := range r.cov.Pix {
			x := int(r.acc.Pix[i])
			y := int(a)
			r.acc.Pix[i] = uint8(x + y - 2*x*y/255)
		}
		cmds = cmds[n:]
	}
	copy(r.cov.Pix, r.acc.Pix)
}

func (r *Rasterizer) fillSubpaths(cmds []shape.Command, m f64.Aff3) {
	f := r.filler
	f.Clear()
	started := false
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case shape.MoveTo:
			if started {
				f.Stop(true)
			}
			f.Start(toFixed(m, c.Point))
			started = true
		case shape.LineTo:
			f.Line(toFixed(m, c.Point))
		case shape.QuadTo:
			f.QuadBezier(toFixed(m, c.Control), toFixed(m, c.Point))
		}
	}
	if started {
		f.Stop(true)
		f.Draw()
	}
}

// strokeCoverage rasterizes a stroke with its caps and joins into r.cov.
// Strokes are at least one pixel wide.
func (r *Rasterizer) strokeCoverage(p *shape.DrawPath, m f64.Aff3) {
	r.clearCoverage()
	ls := p.Line
	width := max(1, float64(ls.Width)*math.Sqrt(math.Abs(m[0]*m[4]-m[1]*m[3])))
	miter := ls.MiterLimit
	if miter <= 0 {
		miter = defaultMiterLimit
	}
	var gap rasterx.GapFunc = rasterx.FlatGap
	if ls.Join == swf.JoinRound {
		gap = rasterx.RoundGap
	}

	s := r.stroker
	s.Clear()
	s.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(miter*64),
		capFunc(ls.StartCap), capFunc(ls.EndCap), gap, joinMode(ls.Join))
	started := false
	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case shape.MoveTo:
			if started {
				s.Stop(false)
			}
			s.Start(toFixed(m, c.Point))
			started = true
		case shape.LineTo:
			s.Line(toFixed(m, c.Point))
		case shape.QuadTo:
			s.QuadBezier(toFixed(m, c.Control), toFixed(m, c.Point))
		}
	}
	if started {
		s.Stop(p.Closed)
		s.Draw()
	}
}

// defaultMiterLimit applies to miter joins that declare no limit.
const defaultMiterLimit = 3

func capFunc(c swf.LineCap) rasterx.CapFunc {
	switch c {
	case swf.CapNone:
		return rasterx.ButtCap
	case swf.CapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.RoundCap
	}
}

func joinMode(j swf.LineJoin) rasterx.JoinMode {
	switch j {
	case swf.JoinBevel:
		return rasterx.Bevel
	case swf.JoinMiter:
		return rasterx.Miter
	default:
		return rasterx.Round
	}
}

func (r *Rasterizer) clearCoverage() {
	clear(r.cov.Pix)
}

// intersect multiplies dst by mask.
func intersect(dst, mask *image.Alpha) {
	for i, a := range mask.Pix {
		dst.Pix[i] = uint8(uint16(dst.Pix[i]) * uint16(a) / 255)
	}
}

// transformColors returns a copy of img with ct applied to every pixel.
func transformColors(img image.Image, ct swf.ColorTransform) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.Set(x, y, ct.Apply(swf.Color{R: c.R, G: c.G, B: c.B, A: c.A}))
		}
	}
	return out
}

func toAff3(m swf.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.C, float64(m.Tx), m.B, m.D, float64(m.Ty)}
}

// mul returns the transform applying b first, then a.
func mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

func toFixed(m f64.Aff3, p swf.Point) fixed.Point26_6 {
	fx, fy := float64(p.X), float64(p.Y)
	x := m[0]*fx + m[1]*fy + m[2]
	y := m[3]*fx + m[4]*fy + m[5]
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

// toMatrix2D converts to the column order of rasterx, where x' = A*x +
// C*y + E.
func toMatrix2D(m f64.Aff3) rasterx.Matrix2D {
	return rasterx.Matrix2D{A: m[0], B: m[3], C: m[1], D: m[4], E: m[2], F: m[5]}
}
