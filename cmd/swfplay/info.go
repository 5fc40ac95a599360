package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/library"
)

// printInfo writes a summary of the movie: header fields, the animations
// of the root timeline and the number of characters of each kind.
func printInfo(w io.Writer, m *swf.Movie, lib *library.Library, root *library.Sprite) {
	h := m.Header()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "format\t%s version %d\n", h.Compression, h.Version)
	fmt.Fprintf(tw, "stage\t%gx%g px\n", h.StageSize.Width().Pixels(), h.StageSize.Height().Pixels())
	fmt.Fprintf(tw, "frame rate\t%g fps\n", h.FrameRate)
	fmt.Fprintf(tw, "frames\t%d\n", root.TotalFrames)
	script := "AS1/2"
	if m.IsAS3() {
		script = "AS3"
	}
	fmt.Fprintf(tw, "actionscript\t%s\n", script)
	if c, ok := m.BackgroundColor(); ok {
		fmt.Fprintf(tw, "background\t#%02x%02x%02x\n", c.R, c.G, c.B)
	}
	_ = tw.Flush()

	if anims := root.Animations(); len(anims) > 0 {
		fmt.Fprintln(w, "\nanimations:")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, a := range anims {
			fmt.Fprintf(tw, "  %s\tframes %d-%d\n", a.Name, a.Start, a.End())
		}
		_ = tw.Flush()
	}

	var sprites, graphics, morphs, bitmaps int
	for _, id := range lib.IDs() {
		c, _ := lib.Character(id)
		switch c.(type) {
		case *library.Sprite:
			sprites++
		case *library.Graphic:
			graphics++
		case *library.MorphShape:
			morphs++
		case *library.Bitmap:
			bitmaps++
		}
	}
	fmt.Fprintf(w, "\ncharacters: %d (%d sprites, %d shapes, %d morph shapes, %d bitmaps)\n",
		lib.Len(), sprites, graphics, morphs, bitmaps)
}
