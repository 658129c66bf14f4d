// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
)

// Decode decodes PNG, JPEG or BMP data into an RGBA image.
func Decode(data []byte) (*image.RGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s image: empty bounds", format)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to *image.RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)
	return rgba
}

// Resize scales img to width x height with Catmull-Rom filtering.
// The image is returned unchanged when it already has that size.
func Resize(img *image.RGBA, width, height int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FlipVertical returns a copy of img with its rows reversed. OpenGL expects
// the first row of texture data to be the bottom of the image.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		dstRow := b.Dy() - 1 - y
		copy(out.Pix[dstRow*out.Stride:], src)
	}
	return out
}

// SquareFaces scales the six cube faces to a common square size, the size of
// the largest face edge, as cube map completeness requires.
func SquareFaces(faces [6]*image.RGBA) [6]*image.RGBA {
	size := 0
	for _, f := range faces {
		b := f.Bounds()
		size = max(size, b.Dx(), b.Dy())
	}
	var out [6]*image.RGBA
	for i, f := range faces {
		out[i] = Resize(f, size, size)
	}
	return out
}
