package watermark

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var pink = color.NRGBA{0xe2, 0x97, 0x9c, 0xff}

func testFace(t *testing.T) font.Face {
	t.Helper()
	face, err := LoadFace(goregular.TTF, 25)
	if err != nil {
		t.Fatalf("load face: %v", err)
	}
	return face
}

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestRender_Deterministic(t *testing.T) {
	c := NewCompositor(testFace(t), pink)
	base := solid(300, 120, color.Black)
	a := c.Render(base, "Python", 10)
	b := c.Render(base, "Python", 10)
	if diff := cmp.Diff(a.Pix, b.Pix); diff != "" {
		t.Fatalf("same inputs rendered differently (-first +second):\n%s", diff)
	}
}

func TestRender_EmptyTextLeavesImageUnchanged(t *testing.T) {
	c := NewCompositor(testFace(t), pink)
	base := solid(64, 48, color.NRGBA{10, 200, 30, 0xff})
	got := Flatten(c.Render(base, "", 10))
	want := Flatten(base)
	if diff := cmp.Diff(want.Pix, got.Pix); diff != "" {
		t.Fatalf("empty watermark changed pixels (-want +got):\n%s", diff)
	}
}

func TestRender_DoesNotMutateBase(t *testing.T) {
	c := NewCompositor(testFace(t), pink)
	base := solid(200, 100, color.Black)
	before := append([]uint8(nil), base.Pix...)
	_ = c.Render(base, "Wm", 10)
	if diff := cmp.Diff(before, base.Pix); diff != "" {
		t.Fatalf("base image was modified")
	}
}

func TestRender_AnchorsBottomRight(t *testing.T) {
	const w, h, inset = 200, 100, 10
	c := NewCompositor(testFace(t), pink)
	out := c.Render(solid(w, h, color.Black), "Wm", inset)

	changed := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if r == 0 && g == 0 && b == 0 {
				continue
			}
			changed++
			if x > w-inset+1 || y > h-inset+1 {
				t.Fatalf("ink at (%d,%d) lies beyond the inset anchor", x, y)
			}
			if x < w/3 || y < h/3 {
				t.Fatalf("ink at (%d,%d) is far from the bottom-right corner", x, y)
			}
		}
	}
	if changed == 0 {
		t.Fatal("no watermark pixels were drawn")
	}
}

func TestRender_UsesColor(t *testing.T) {
	c := NewCompositor(testFace(t), pink)
	out := c.Render(solid(200, 100, color.Black), "Wm", 10)
	found := false
	for i := 0; i < len(out.Pix); i += 4 {
		r, g := out.Pix[i], out.Pix[i+1]
		if r >= 0xd8 && g >= 0x88 && g <= 0xa0 {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no fully covered pixel carries the watermark color")
	}
}

func TestRender_SemiTransparentColor(t *testing.T) {
	half := pink
	half.A = 0x80
	c := NewCompositor(testFace(t), half)
	out := c.Render(solid(200, 100, color.Black), "Wm", 10)
	var maxR uint8
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] > maxR {
			maxR = out.Pix[i]
		}
	}
	if maxR == 0 || maxR > 0x72 {
		t.Fatalf("expected half-strength red channel, got max %#x", maxR)
	}
}

func TestFlatten_ForcesOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 0})
	src.SetNRGBA(1, 0, color.NRGBA{40, 50, 60, 0x80})
	got := Flatten(src)
	want := []uint8{10, 20, 30, 0xff, 40, 50, 60, 0xff}
	if diff := cmp.Diff(want, got.Pix); diff != "" {
		t.Fatalf("flatten (-want +got):\n%s", diff)
	}
}

func TestLoadFace_RejectsGarbage(t *testing.T) {
	if _, err := LoadFace([]byte("not a font"), 25); err == nil {
		t.Fatal("expected parse error")
	}
}
