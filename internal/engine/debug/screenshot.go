// Package debug writes render targets to disk for inspection.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/midgard-water/internal/engine/texture"
)

// ScreenshotCapture writes GL pixel read-backs as PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture handler writing to outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// CaptureFromPixels writes tightly packed RGBA rows, bottom row first as
// OpenGL returns them, to "<prefix>_<name>_<timestamp>.png".
func (sc *ScreenshotCapture) CaptureFromPixels(name string, pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("capture %s: invalid size %dx%d", name, width, height)
	}
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("capture %s: pixel data size mismatch: expected %d, got %d", name, width*height*4, len(pixels))
	}

	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return sc.CaptureFromImage(name, texture.FlipVertical(img))
}

// CaptureFromImage writes img as a PNG.
func (sc *ScreenshotCapture) CaptureFromImage(name string, img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename(name)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// GenerateFilename returns the path a capture called name would be written to.
func (sc *ScreenshotCapture) GenerateFilename(name string) string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s_%s.png", sc.prefix, name, timestamp)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}
