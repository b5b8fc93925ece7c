package intersect

import "testing"

func TestStatsCountsKeptPixels(t *testing.T) {
	r := makeRaster(t, 4, 2, []Pixel{
		red, trans, blue, trans,
		trans, white, trans, {1, 2, 3, 1},
	})

	got := Stats(r)
	if got.Total != 8 {
		t.Errorf("Total = %d, want 8", got.Total)
	}
	if got.Kept != 4 {
		t.Errorf("Kept = %d, want 4", got.Kept)
	}
	if got.Pct != 50 {
		t.Errorf("Pct = %v, want 50", got.Pct)
	}
}

func TestStatsEmptyRaster(t *testing.T) {
	got := Stats(NewRaster(0, 0))
	if got.Total != 0 || got.Kept != 0 || got.Pct != 0 {
		t.Errorf("empty raster stats = %+v, want zeros", got)
	}
}
