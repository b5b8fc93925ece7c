package intersect

import (
	"bytes"
	"fmt"
)

// IntersectBytes intersects raw image byte slices without touching the
// filesystem. Each input is decoded, the intersection is computed, and the
// result is returned as PNG bytes along with its kept-pixel statistics.
func IntersectBytes(inputs [][]byte, opts Options) ([]byte, Stat, error) {
	if len(inputs) < 2 {
		return nil, Stat{}, fmt.Errorf("%w (got %d)", ErrTooFewImages, len(inputs))
	}

	images := make([]*Raster, len(inputs))
	for i, data := range inputs {
		if len(data) == 0 {
			return nil, Stat{}, fmt.Errorf("input %d: empty image data", i)
		}
		img, _, err := Decode(bytes.NewReader(data))
		if err != nil {
			return nil, Stat{}, fmt.Errorf("input %d: %w", i, err)
		}
		images[i] = img
	}

	result, err := IntersectMany(images, opts)
	if err != nil {
		return nil, Stat{}, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, result, "png"); err != nil {
		return nil, Stat{}, err
	}
	return buf.Bytes(), Stats(result), nil
}
