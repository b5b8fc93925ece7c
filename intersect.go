package intersect

import "fmt"

// DefaultTolerance is the default maximum Euclidean RGB distance for two
// colours to count as matching. The maximum possible distance is
// sqrt(3*255^2), roughly 441. A tolerance of 10 is invisible to the eye and
// absorbs compression and rendering artefacts; 0 demands exact equality.
const DefaultTolerance = 10

// FillPolicy selects the pixel substituted for non-matching and uncovered
// output positions.
type FillPolicy int

const (
	// FillTransparent writes fully transparent pixels (the default).
	FillTransparent FillPolicy = iota
	// FillWhite writes opaque white pixels.
	FillWhite
)

func (f FillPolicy) pixel() Pixel {
	if f == FillWhite {
		return White
	}
	return Transparent
}

// Options controls a single intersection call.
type Options struct {
	// Tolerance is the maximum Euclidean RGB distance (alpha excluded)
	// for two pixels to be considered matching. Must be non-negative.
	Tolerance int

	// Fill selects the value written to non-matching positions.
	Fill FillPolicy

	// StrictSize rejects inputs of differing dimensions with
	// ErrSizeMismatch instead of intersecting on the union canvas.
	StrictSize bool
}

// DefaultOptions returns transparent fill with the default tolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// rgbDistanceSq is the squared Euclidean distance between the RGB
// components of two pixels. Alpha is excluded; squared distances avoid the
// square root when comparing against a squared threshold.
func rgbDistanceSq(a, b Pixel) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// placeOnCanvas copies img onto a transparent canvas of the given size,
// anchored at the top-left corner. Canvas positions outside img's native
// bounds keep alpha 0, which is how "no coverage" is represented. If img
// already has the canvas size it is returned as is.
func placeOnCanvas(img *Raster, width, height int) *Raster {
	if img.width == width && img.height == height {
		return img
	}
	canvas := NewRaster(width, height)
	for y := 0; y < img.height; y++ {
		copy(canvas.pix[y*width:y*width+img.width], img.pix[y*img.width:(y+1)*img.width])
	}
	return canvas
}

// IntersectMany performs a pixel-wise logical AND over two or more flags.
//
// All inputs are aligned at the top-left corner on a canvas sized to the
// union of their dimensions; positions a flag does not reach never match. A
// position matches when every flag's pixel is within opts.Tolerance of the
// first flag's pixel, in which case the first flag's colour is kept.
// Everything else becomes the fill value. The inputs are never modified.
//
// Note the match rule compares each flag against the first, not all pairs:
// with three or more flags the result depends on which flag comes first
// whenever the inputs straddle the tolerance.
func IntersectMany(images []*Raster, opts Options) (*Raster, error) {
	if len(images) < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewImages, len(images))
	}
	if opts.Tolerance < 0 {
		return nil, fmt.Errorf("negative tolerance %d", opts.Tolerance)
	}

	width, height := images[0].width, images[0].height
	for _, img := range images[1:] {
		if opts.StrictSize && (img.width != width || img.height != height) {
			return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
				ErrSizeMismatch, images[0].width, images[0].height, img.width, img.height)
		}
		if img.width > width {
			width = img.width
		}
		if img.height > height {
			height = img.height
		}
	}

	canvases := make([]*Raster, len(images))
	for i, img := range images {
		canvases[i] = placeOnCanvas(img, width, height)
	}

	fill := opts.Fill.pixel()
	thresholdSq := opts.Tolerance * opts.Tolerance

	result := NewRaster(width, height)
	first := canvases[0]
pixels:
	for i, ref := range first.pix {
		if ref.A == 0 {
			result.pix[i] = fill
			continue
		}
		for _, canvas := range canvases[1:] {
			p := canvas.pix[i]
			if p.A == 0 || rgbDistanceSq(ref, p) > thresholdSq {
				result.pix[i] = fill
				continue pixels
			}
		}
		result.pix[i] = ref
	}
	return result, nil
}

// Intersect is the two-flag convenience form of IntersectMany.
func Intersect(a, b *Raster, opts Options) (*Raster, error) {
	return IntersectMany([]*Raster{a, b}, opts)
}
