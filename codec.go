package intersect

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Register decoders for the formats flags commonly come in,
	// including WebP via x/image/webp (decode only).
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode reads an image from the reader and converts it to a Raster,
// returning the detected format string ("png", "jpeg", "bmp", etc.).
func Decode(r io.Reader) (*Raster, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return FromImage(img), format, nil
}

// Load reads a flag image from disk at its native resolution. The path is
// validated before decoding: a missing path yields ErrNotFound and a
// directory or other non-regular file yields ErrNotAFile.
func Load(path string) (*Raster, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// FlattenWhite composites the raster's transparent regions onto opaque
// white, returning a fresh image. The raster itself is left untouched;
// alpha-less encoders need this step before dropping the channel.
func FlattenWhite(r *Raster) *image.NRGBA {
	bounds := image.Rect(0, 0, r.Width(), r.Height())
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, bounds, r.ToImage(), image.Point{}, draw.Over)
	return out
}

// FormatForPath derives the encoding format from a file extension,
// defaulting to "png" when the extension is missing or unknown.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	default:
		return "png"
	}
}

// Save encodes the raster to path in the given format ("png", "jpeg",
// "gif", "bmp" or "tiff"), creating parent directories as needed. BMP and
// JPEG cannot carry alpha, so transparent regions are flattened onto white
// first; the other formats keep the alpha channel.
func Save(r *Raster, path, format string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, r, format); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Encode writes the raster to the writer in the given format.
func Encode(w io.Writer, r *Raster, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, r.ToImage())
	case "gif":
		return gif.Encode(w, r.ToImage(), nil)
	case "tiff", "tif":
		return tiff.Encode(w, r.ToImage(), nil)
	case "jpeg", "jpg":
		return jpeg.Encode(w, FlattenWhite(r), nil)
	case "bmp":
		return bmp.Encode(w, FlattenWhite(r))
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
