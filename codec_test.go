package intersect

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPNGSaveLoadRoundTrip(t *testing.T) {
	pixels := []Pixel{red, blue, trans, white, red, blue, trans, white}
	r := makeRaster(t, 4, 2, pixels)

	path := filepath.Join(t.TempDir(), "result.png")
	if err := Save(r, path, "png"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(pixels, reloaded.pix); diff != "" {
		t.Errorf("PNG round trip (-want +got):\n%s", diff)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	r := makeRaster(t, 1, 1, []Pixel{red})
	path := filepath.Join(t.TempDir(), "nested", "deeper", "result.png")
	if err := Save(r, path, "png"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load after nested save: %v", err)
	}
}

// BMP carries no alpha, so transparent regions must come back as opaque
// white while opaque colours survive exactly.
func TestBMPFlattensTransparencyOntoWhite(t *testing.T) {
	r := makeRaster(t, 2, 1, []Pixel{red, trans})

	path := filepath.Join(t.TempDir(), "result.bmp")
	if err := Save(r, path, "bmp"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := reloaded.At(0, 0); got != red {
		t.Errorf("opaque pixel: got %v, want %v", got, red)
	}
	if got := reloaded.At(1, 0); got != white {
		t.Errorf("transparent pixel: got %v, want opaque white", got)
	}
}

func TestFlattenWhiteLeavesRasterUntouched(t *testing.T) {
	pixels := []Pixel{red, trans}
	r := makeRaster(t, 2, 1, pixels)

	flat := FlattenWhite(r)
	if diff := cmp.Diff(pixels, r.pix); diff != "" {
		t.Fatalf("FlattenWhite modified its input (-want +got):\n%s", diff)
	}
	if got := flat.NRGBAAt(1, 0); got.R != 255 || got.G != 255 || got.B != 255 || got.A != 255 {
		t.Errorf("flattened transparent pixel = %v, want opaque white", got)
	}
}

func TestFormatForPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"out.png", "png"},
		{"out.PNG", "png"},
		{"out.jpg", "jpeg"},
		{"out.jpeg", "jpeg"},
		{"out.gif", "gif"},
		{"out.bmp", "bmp"},
		{"out.tif", "tiff"},
		{"out.tiff", "tiff"},
		{"out", "png"},
		{"out.webp", "png"},
	}
	for _, tc := range cases {
		if got := FormatForPath(tc.path); got != tc.want {
			t.Errorf("FormatForPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotAFile) {
		t.Fatalf("got %v, want ErrNotAFile", err)
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	r := makeRaster(t, 1, 1, []Pixel{red})
	err := Save(r, filepath.Join(t.TempDir(), "out.webp"), "webp")
	if err == nil {
		t.Fatal("expected an error for webp output")
	}
}
