package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func checkerboard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{B: 255, A: 255})
			}
		}
	}
	return img
}

func TestDecodeFormats(t *testing.T) {
	src := checkerboard(4, 3)

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"png", pngBuf.Bytes()},
		{"bmp", bmpBuf.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
				t.Fatalf("size = %v, want 4x3", img.Bounds())
			}
			if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
				t.Errorf("pixel (0,0) = %v, want red", got)
			}
			if got := img.RGBAAt(1, 0); got != (color.RGBA{B: 255, A: 255}) {
				t.Errorf("pixel (1,0) = %v, want blue", got)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 12))
	src.SetRGBA(10, 10, color.RGBA{G: 200, A: 255})

	got := ToRGBA(src)
	if got.Bounds().Min != (image.Point{}) {
		t.Fatalf("origin = %v, want (0,0)", got.Bounds().Min)
	}
	if got.RGBAAt(0, 0) != (color.RGBA{G: 200, A: 255}) {
		t.Errorf("pixel moved: %v", got.RGBAAt(0, 0))
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 1, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 2, A: 255})

	got := FlipVertical(img)
	if got.RGBAAt(0, 0).R != 2 || got.RGBAAt(0, 1).R != 1 {
		t.Errorf("rows not swapped: %v %v", got.RGBAAt(0, 0), got.RGBAAt(0, 1))
	}
}

func TestSquareFaces(t *testing.T) {
	var faces [6]*image.RGBA
	for i := range faces {
		faces[i] = image.NewRGBA(image.Rect(0, 0, 8, 8))
	}
	faces[3] = image.NewRGBA(image.Rect(0, 0, 16, 4))

	out := SquareFaces(faces)
	for i, f := range out {
		if f.Bounds().Dx() != 16 || f.Bounds().Dy() != 16 {
			t.Errorf("face %d size = %v, want 16x16", i, f.Bounds())
		}
	}
}
