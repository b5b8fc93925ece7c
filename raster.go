package intersect

import (
	"image"
	"image/draw"
)

// Pixel is one RGBA sample with 8-bit channels. Within this package an
// alpha of zero marks a position with no source coverage rather than a
// usable colour value.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent and White are the two fill values substituted for
// non-matching or uncovered positions.
var (
	Transparent = Pixel{0, 0, 0, 0}
	White       = Pixel{255, 255, 255, 255}
)

// Raster is a width x height grid of Pixels with the origin at the top
// left. The backing buffer is flat and row-major; callers address pixels by
// coordinate only. A Raster is not modified by any function in this package
// once returned.
type Raster struct {
	width  int
	height int
	pix    []Pixel
}

// NewRaster returns a fully transparent raster of the given size.
func NewRaster(width, height int) *Raster {
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Width reports the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height reports the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// At returns the pixel at (x, y). Coordinates outside the raster yield the
// zero Pixel, i.e. "no coverage".
func (r *Raster) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return Pixel{}
	}
	return r.pix[y*r.width+x]
}

func (r *Raster) set(x, y int, p Pixel) {
	r.pix[y*r.width+x] = p
}

// FromImage converts any image.Image into a Raster, normalising to
// non-premultiplied 8-bit RGBA.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(bounds)
	draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)

	out := NewRaster(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			off := nrgba.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			out.pix[y*out.width+x] = Pixel{
				R: nrgba.Pix[off],
				G: nrgba.Pix[off+1],
				B: nrgba.Pix[off+2],
				A: nrgba.Pix[off+3],
			}
		}
	}
	return out
}

// ToImage copies the raster into a fresh *image.NRGBA for encoding.
func (r *Raster) ToImage() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for i, p := range r.pix {
		off := i * 4
		out.Pix[off] = p.R
		out.Pix[off+1] = p.G
		out.Pix[off+2] = p.B
		out.Pix[off+3] = p.A
	}
	return out
}
