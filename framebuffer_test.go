package minirender

import (
	"math"
	"testing"
)

func TestNewFramebufferValidation(t *testing.T) {
	if _, err := NewFramebuffer(0, 10); err != ErrInvalidDimensions {
		t.Errorf("zero width: err = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewFramebuffer(10, -1); err != ErrInvalidDimensions {
		t.Errorf("negative height: err = %v, want ErrInvalidDimensions", err)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb, err := NewFramebuffer(4, 3)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	fb.SetPixel(1, 1, RGBA{R: 1, A: 1})
	fb.depthTest(1, 1, 0.5)

	fb.Clear(RGBA{G: 1, A: 1})
	if got := fb.At(1, 1); got != (RGBA{G: 1, A: 1}) {
		t.Errorf("cleared pixel = %+v, want green", got)
	}
	if got := fb.DepthAt(1, 1); !math.IsInf(float64(got), 1) {
		t.Errorf("cleared depth = %v, want +Inf", got)
	}
}

func TestSetPixelClamps(t *testing.T) {
	fb, err := NewFramebuffer(2, 2)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	fb.SetPixel(0, 0, RGBA{R: 2.5, G: -1, B: 0.5, A: 1})
	got := fb.At(0, 0)
	if got.R != 1 || got.G != 0 {
		t.Errorf("clamped pixel = %+v, want R=1 G=0", got)
	}
	if !approxEq(got.B, 0.5, 0.01) {
		t.Errorf("B = %v, want ~0.5", got.B)
	}
}

func TestPixelBounds(t *testing.T) {
	fb, err := NewFramebuffer(2, 2)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	// Out-of-bounds writes are dropped, reads return sentinels.
	fb.SetPixel(-1, 0, White)
	fb.SetPixel(2, 0, White)
	if got := fb.At(-1, 0); got != Transparent {
		t.Errorf("At(-1,0) = %+v, want transparent", got)
	}
	if got := fb.DepthAt(0, 5); !math.IsInf(float64(got), 1) {
		t.Errorf("DepthAt out of bounds = %v, want +Inf", got)
	}
}

func TestDepthTest(t *testing.T) {
	fb, err := NewFramebuffer(2, 2)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	if !fb.depthTest(0, 0, 0.8) {
		t.Error("first depth write rejected")
	}
	if fb.depthTest(0, 0, 0.8) {
		t.Error("equal depth accepted; ties must keep the first write")
	}
	if fb.depthTest(0, 0, 0.9) {
		t.Error("farther depth accepted")
	}
	if !fb.depthTest(0, 0, 0.1) {
		t.Error("nearer depth rejected")
	}
	if got := fb.DepthAt(0, 0); got != 0.1 {
		t.Errorf("DepthAt = %v, want 0.1", got)
	}
}

func TestFramebufferImage(t *testing.T) {
	fb, err := NewFramebuffer(3, 2)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	fb.SetPixel(2, 1, RGBA{R: 1, A: 1})
	img := fb.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	r, _, _, a := img.At(2, 1).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("image pixel = (%d, %d), want opaque red", r, a)
	}
}
