package metaengine

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestCoverRect(t *testing.T) {
	tests := []struct {
		name string
		b    image.Rectangle
		want image.Rectangle
	}{
		{"wide source crops sides", image.Rect(0, 0, 2400, 630), image.Rect(600, 0, 1800, 630)},
		{"tall source crops top and bottom", image.Rect(0, 0, 1200, 1200), image.Rect(0, 285, 1200, 915)},
		{"exact ratio untouched", image.Rect(0, 0, 1200, 630), image.Rect(0, 0, 1200, 630)},
	}
	for _, tt := range tests {
		if got := coverRect(tt.b, shareImageWidth, shareImageHeight); got != tt.want {
			t.Errorf("%s: coverRect(%v) = %v, want %v", tt.name, tt.b, got, tt.want)
		}
	}
}

func TestProcessShareImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 512, 512))
	for x := 0; x < 512; x++ {
		for y := 0; y < 512; y++ {
			src.Set(x, y, color.RGBA{R: 200, G: 80, B: 20, A: 255})
		}
	}
	var in bytes.Buffer
	if err := png.Encode(&in, src); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	img, data, err := processShareImage(&in, "CBN Logo.png")
	if err != nil {
		t.Fatalf("processShareImage failed: %v", err)
	}
	if img.Width != shareImageWidth || img.Height != shareImageHeight {
		t.Errorf("size = %dx%d, want %dx%d", img.Width, img.Height, shareImageWidth, shareImageHeight)
	}
	if !bytes.HasPrefix([]byte(img.Filename), []byte("cbn-logo-")) {
		t.Errorf("Filename = %q, want cbn-logo- prefix", img.Filename)
	}
	out, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a jpeg: %v", err)
	}
	if b := out.Bounds(); b.Dx() != shareImageWidth || b.Dy() != shareImageHeight {
		t.Errorf("decoded size = %v, want %dx%d", b, shareImageWidth, shareImageHeight)
	}
}

func TestProcessShareImageRejectsGarbage(t *testing.T) {
	if _, _, err := processShareImage(bytes.NewReader([]byte("not an image")), "x.png"); err == nil {
		t.Fatal("expected error for invalid image data")
	}
}
