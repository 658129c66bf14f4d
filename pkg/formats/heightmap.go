// Package formats reads and writes the RAW height map files the terrain is
// built from.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// Height map format errors.
var (
	ErrTruncatedHeightData = errors.New("truncated height map data")
	ErrInvalidHeightField  = errors.New("invalid height field")
)

// DefaultMaxElevation is the world-space height a sample byte of 255 maps to.
const DefaultMaxElevation float32 = 50

// heightHeaderSize is two little-endian uint16 dimensions.
const heightHeaderSize = 4

// HeightField is a row-major grid of elevations in world units.
// Sample (x, y) is stored at Samples[y*Width+x].
type HeightField struct {
	Width        int
	Height       int
	Samples      []float32
	MaxElevation float32
}

// At returns the elevation at (x, y). Coordinates must be in range.
func (h *HeightField) At(x, y int) float32 {
	return h.Samples[y*h.Width+x]
}

// Validate checks that the field can be meshed: at least 2x2 samples and a
// sample slice matching the dimensions.
func (h *HeightField) Validate() error {
	if h.Width < 2 || h.Height < 2 {
		return fmt.Errorf("%w: %dx%d, need at least 2x2", ErrInvalidHeightField, h.Width, h.Height)
	}
	if len(h.Samples) != h.Width*h.Height {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrInvalidHeightField, len(h.Samples), h.Width, h.Height)
	}
	return nil
}

// MinMax returns the lowest and highest sample.
func (h *HeightField) MinMax() (lo, hi float32) {
	if len(h.Samples) == 0 {
		return 0, 0
	}
	lo, hi = h.Samples[0], h.Samples[0]
	for _, s := range h.Samples[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return lo, hi
}

// ParseHeightField parses a RAW height map: uint16 width, uint16 height
// (little-endian), then width*height bytes with y as the outer loop.
// A byte b becomes maxElevation*b/255.
func ParseHeightField(data []byte, maxElevation float32) (*HeightField, error) {
	if len(data) < heightHeaderSize {
		return nil, fmt.Errorf("%w: header", ErrTruncatedHeightData)
	}

	r := bytes.NewReader(data)

	var width, height uint16
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("%w: reading width", ErrTruncatedHeightData)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("%w: reading height", ErrTruncatedHeightData)
	}

	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: %dx%d, need at least 2x2", ErrInvalidHeightField, width, height)
	}
	if maxElevation <= 0 {
		return nil, fmt.Errorf("%w: max elevation %v", ErrInvalidHeightField, maxElevation)
	}

	count := int(width) * int(height)
	body := data[heightHeaderSize:]
	if len(body) < count {
		return nil, fmt.Errorf("%w: have %d samples, need %d", ErrTruncatedHeightData, len(body), count)
	}

	hf := &HeightField{
		Width:        int(width),
		Height:       int(height),
		Samples:      make([]float32, count),
		MaxElevation: maxElevation,
	}
	for i, b := range body[:count] {
		hf.Samples[i] = maxElevation * float32(b) / 255
	}

	return hf, nil
}

// ParseHeightFieldFile parses a RAW height map from disk.
func ParseHeightFieldFile(path string, maxElevation float32) (*HeightField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading height map: %w", err)
	}
	return ParseHeightField(data, maxElevation)
}

// EncodeHeightField writes samples in the RAW layout read by ParseHeightField.
func EncodeHeightField(width, height int, samples []byte) ([]byte, error) {
	if width < 2 || height < 2 || width > 0xFFFF || height > 0xFFFF {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidHeightField, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrInvalidHeightField, len(samples), width, height)
	}

	buf := new(bytes.Buffer)
	buf.Grow(heightHeaderSize + len(samples))
	_ = binary.Write(buf, binary.LittleEndian, uint16(width))
	_ = binary.Write(buf, binary.LittleEndian, uint16(height))
	buf.Write(samples)
	return buf.Bytes(), nil
}
