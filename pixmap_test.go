package warp

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(10, 5)
	if pm.Width() != 10 || pm.Height() != 5 {
		t.Errorf("dims = %dx%d, want 10x5", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 10*5*4 {
		t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), 10*5*4)
	}
	// New pixmaps start fully transparent.
	if _, _, _, a := pm.RGBA8At(3, 2); a != 0 {
		t.Errorf("fresh pixmap alpha = %d, want 0", a)
	}
}

func TestSetRGBA8(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetRGBA8(1, 2, 10, 20, 30, 40)
	r, g, b, a := pm.RGBA8At(1, 2)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("RGBA8At = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}

	// Out-of-bounds writes are silently ignored.
	pm.SetRGBA8(-1, 0, 255, 255, 255, 255)
	pm.SetRGBA8(4, 0, 255, 255, 255, 255)
	pm.SetRGBA8(0, 4, 255, 255, 255, 255)
	if _, _, _, a := pm.RGBA8At(0, 0); a != 0 {
		t.Error("out-of-bounds write corrupted the buffer")
	}
}

func TestSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(2, 1, RGBA{1, 0.5, 0.25, 1})
	got := pm.GetPixel(2, 1)
	if absDiff(got.R, 1) > 0.01 || absDiff(got.G, 0.5) > 0.01 || absDiff(got.B, 0.25) > 0.01 {
		t.Errorf("GetPixel = %v", got)
	}

	if got := pm.GetPixel(-1, -1); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %v, want Transparent", got)
	}
}

func TestClear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(White)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			r, g, b, a := pm.RGBA8At(x, y)
			if r != 255 || g != 255 || b != 255 || a != 255 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d) after Clear(White)", x, y, r, g, b, a)
			}
		}
	}
}

func TestToImageFromImageRoundTrip(t *testing.T) {
	pm := checkerboard(6, 4)
	back := FromImage(pm.ToImage())
	if back.Width() != 6 || back.Height() != 4 {
		t.Fatalf("dims = %dx%d", back.Width(), back.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			wr, wg, wb, wa := pm.RGBA8At(x, y)
			gr, gg, gb, ga := back.RGBA8At(x, y)
			if gr != wr || gg != wg || gb != wb || ga != wa {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					x, y, gr, gg, gb, ga, wr, wg, wb, wa)
			}
		}
	}
}

func TestFromImageSubRectangle(t *testing.T) {
	// NRGBA sources with a non-zero Min must be copied relative to their
	// own bounds.
	img := image.NewNRGBA(image.Rect(2, 3, 6, 7))
	img.SetNRGBA(2, 3, color.NRGBA{10, 20, 30, 255})
	img.SetNRGBA(5, 6, color.NRGBA{40, 50, 60, 255})

	pm := FromImage(img)
	if pm.Width() != 4 || pm.Height() != 4 {
		t.Fatalf("dims = %dx%d, want 4x4", pm.Width(), pm.Height())
	}
	if r, _, _, _ := pm.RGBA8At(0, 0); r != 10 {
		t.Errorf("pixel (0,0) r = %d, want 10", r)
	}
	if r, _, _, _ := pm.RGBA8At(3, 3); r != 40 {
		t.Errorf("pixel (3,3) r = %d, want 40", r)
	}
}

func TestFromImageGenericPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{100, 150, 200, 255})
	pm := FromImage(img)
	r, g, b, a := pm.RGBA8At(1, 1)
	if r != 100 || g != 150 || b != 200 || a != 255 {
		t.Errorf("pixel (1,1) = (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestPixmapImageInterfaces(t *testing.T) {
	var _ image.Image = (*Pixmap)(nil)

	pm := NewPixmap(5, 3)
	if got := pm.Bounds(); got != image.Rect(0, 0, 5, 3) {
		t.Errorf("Bounds() = %v", got)
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}

	pm.Set(1, 1, color.NRGBA{9, 8, 7, 255})
	r, g, b, a := pm.RGBA8At(1, 1)
	if r != 9 || g != 8 || b != 7 || a != 255 {
		t.Errorf("Set/RGBA8At = (%d,%d,%d,%d)", r, g, b, a)
	}

	c := pm.At(1, 1).(color.NRGBA)
	if c.R != 9 || c.A != 255 {
		t.Errorf("At(1,1) = %v", c)
	}
}

func TestSavePNG(t *testing.T) {
	pm := checkerboard(4, 4)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("SavePNG wrote an empty file")
	}
}
