package intersect

// Stat summarises how much of an intersection result was kept.
type Stat struct {
	Total int     // total output pixels
	Kept  int     // pixels with alpha > 0
	Pct   float64 // Kept as a percentage of Total
}

// Stats counts the kept (alpha > 0) pixels of a result raster. With a white
// fill every pixel is opaque, so the count is only meaningful for
// transparent-fill results.
func Stats(r *Raster) Stat {
	s := Stat{Total: len(r.pix)}
	for _, p := range r.pix {
		if p.A > 0 {
			s.Kept++
		}
	}
	if s.Total > 0 {
		s.Pct = 100 * float64(s.Kept) / float64(s.Total)
	}
	return s
}
