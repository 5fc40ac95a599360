package display

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/internal/swftest"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	swf.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { swf.SetLogger(nil) })
	return &buf
}

func TestApplyPlaceObject_Fields(t *testing.T) {
	g := graphicAt(1)
	m := swf.Translate(5, 6)
	ct := swf.ColorTransform{RMult: 0.5, GMult: 1, BMult: 1, AMult: 1}
	ApplyPlaceObject(g, &swf.PlaceObject{
		Matrix:         &m,
		ColorTransform: &ct,
		BlendMode:      ptr(swf.BlendScreen),
		ClipDepth:      ptr(swf.Depth(4)),
	}, 10)

	b := g.Base()
	if b.Matrix() != m || b.ColorTransform() != ct {
		t.Errorf("transform = %+v", b.Transform())
	}
	if b.BlendMode() != swf.BlendScreen || b.ClipDepth() != 4 {
		t.Errorf("blend %v clip depth %d", b.BlendMode(), b.ClipDepth())
	}

	// Absent fields leave the object alone.
	ApplyPlaceObject(g, &swf.PlaceObject{}, 10)
	if b.Matrix() != m || b.BlendMode() != swf.BlendScreen {
		t.Error("an empty PlaceObject changed the object")
	}
}

func TestApplyPlaceObject_VersionGated(t *testing.T) {
	po := &swf.PlaceObject{
		Visible:         ptr(false),
		BackgroundColor: &swf.Color{R: 10, G: 20, B: 30, A: 40},
	}

	old := graphicAt(1)
	ApplyPlaceObject(old, po, 10)
	if !old.Base().Visible() {
		t.Error("SWF 10 honored the visible flag")
	}
	if _, ok := old.Base().OpaqueBackground(); ok {
		t.Error("SWF 10 honored the background color")
	}

	cur := graphicAt(1)
	ApplyPlaceObject(cur, po, 11)
	if cur.Base().Visible() {
		t.Error("SWF 11 ignored the visible flag")
	}
	bg, ok := cur.Base().OpaqueBackground()
	if !ok || bg != (swf.Color{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("OpaqueBackground() = %v, %v, want opaque (10,20,30)", bg, ok)
	}

	ApplyPlaceObject(cur, &swf.PlaceObject{BackgroundColor: &swf.Color{R: 1}}, 11)
	if _, ok := cur.Base().OpaqueBackground(); ok {
		t.Error("a transparent background color did not clear the background")
	}
}

func TestSetFilters_BitmapCache(t *testing.T) {
	b := graphicAt(1).Base()
	if b.BitmapCache() != nil {
		t.Fatal("new object has a bitmap cache")
	}

	blur := []swf.Filter{&swf.BlurFilter{BlurX: 4, BlurY: 4, Passes: 1}}
	if !b.SetFilters(blur) {
		t.Fatal("SetFilters() = false for a new list")
	}
	if b.BitmapCache() == nil || !b.BitmapCache().Dirty {
		t.Fatal("filters did not create a dirty bitmap cache")
	}
	b.BitmapCache().Dirty = false

	same := []swf.Filter{&swf.BlurFilter{BlurX: 4, BlurY: 4, Passes: 1}}
	if b.SetFilters(same) {
		t.Error("SetFilters() = true for an equal list")
	}
	if b.BitmapCache().Dirty {
		t.Error("an equal list dirtied the cache")
	}
	if !b.SetFilters([]swf.Filter{&swf.BlurFilter{BlurX: 8, BlurY: 4, Passes: 1}}) {
		t.Error("SetFilters() = false for a changed list")
	}
	if !b.BitmapCache().Dirty {
		t.Error("a changed list left the cache clean")
	}

	b.SetCacheAsBitmap(true)
	b.SetFilters(nil)
	if b.BitmapCache() == nil {
		t.Error("cache dropped while the preference is set")
	}
	b.SetCacheAsBitmap(false)
	if b.BitmapCache() != nil {
		t.Error("cache kept with no filters and no preference")
	}
}

func TestInstantiate(t *testing.T) {
	lib, _ := setup(t, 10, 1, [][]byte{
		swftest.DefineShape(1, box100, 0, 0, 0),
		swftest.DefineBitsLossless(2, 1, 1, 0, 0, 0),
		swftest.ShowFrame(),
	})

	obj := Instantiate(lib, 1, &swf.PlaceObject{Depth: 4, Name: []byte("box")}, 7, 10)
	if obj == nil {
		t.Fatal("Instantiate() = nil")
	}
	b := obj.Base()
	if b.Depth() != 4 || b.PlaceFrame() != 7 || b.Name() != "box" {
		t.Errorf("depth %d place frame %d name %q", b.Depth(), b.PlaceFrame(), b.Name())
	}

	unnamed := Instantiate(lib, 1, &swf.PlaceObject{Depth: 5}, 1, 10)
	if !strings.HasPrefix(unnamed.Base().Name(), "instance") {
		t.Errorf("Name() = %q, want a generated instance name", unnamed.Base().Name())
	}

	log := captureLog(t)
	if Instantiate(lib, 99, &swf.PlaceObject{Depth: 1}, 1, 10) != nil {
		t.Error("Instantiate() of a missing id returned an object")
	}
	if Instantiate(lib, 2, &swf.PlaceObject{Depth: 1}, 1, 10) != nil {
		t.Error("Instantiate() of a bitmap returned an object")
	}
	if !strings.Contains(log.String(), "level=ERROR") {
		t.Errorf("no error logged:\n%s", log)
	}
}

func TestReplaceWith_WrongKind(t *testing.T) {
	lib, _ := setup(t, 10, 1, [][]byte{
		swftest.DefineShape(1, box100, 0, 0, 0),
		swftest.DefineSprite(2, 1, swftest.ShowFrame()),
		swftest.ShowFrame(),
	})
	obj := Instantiate(lib, 1, &swf.PlaceObject{Depth: 1}, 1, 10)

	log := captureLog(t)
	ReplaceWith(obj, lib, 2)
	if obj.CharacterID() != 1 {
		t.Errorf("CharacterID() = %d after a bad replace, want 1", obj.CharacterID())
	}
	if !strings.Contains(log.String(), "expected a graphic") {
		t.Errorf("log = %q", log)
	}
}

func TestClone(t *testing.T) {
	lib, root := setup(t, 10, 3, threeFrames())
	root.EnterFrame(lib)
	root.EnterFrame(lib)

	cp := Clone(root).(*MovieClip)
	if children := snapshot(cp); len(children) != 2 {
		t.Fatalf("clone has %d children, want 2", len(children))
	}
	if cp.Container().ChildByDepth(1) == root.Container().ChildByDepth(1) {
		t.Fatal("clone shares children with the original")
	}

	cp.EnterFrame(lib)
	if cp.CurrentFrame() != 3 || root.CurrentFrame() != 2 {
		t.Errorf("frames %d and %d, want clone 3 and original 2", cp.CurrentFrame(), root.CurrentFrame())
	}
	if root.Container().Len() != 2 {
		t.Error("advancing the clone changed the original")
	}
}

func TestSelfBounds_MovieClipEmpty(t *testing.T) {
	_, root := setup(t, 10, 1, [][]byte{swftest.ShowFrame()})
	if SelfBounds(root).Valid() {
		t.Error("movie clip has self bounds")
	}
}
