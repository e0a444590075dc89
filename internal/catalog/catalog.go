// Package catalog turns raw music-catalog rows into the immutable working set
// of Tracks that every aggregation starts from.
package catalog

// Catalog holds the working set produced by a single load. It is built once
// and never modified.
type Catalog struct {
	tracks      []Track
	diagnostics Diagnostics
}

// New normalizes rows and applies the release-year filter exactly once.
func New(rows []RawRow) *Catalog {
	tracks, diag := NormalizeWithDiagnostics(rows)
	kept, dropped := WorkingSet(tracks)
	diag.OutOfRange = dropped
	return &Catalog{tracks: kept, diagnostics: diag}
}

// Open loads the CSV at path and builds a Catalog from it. Any returned error
// is a *LoadError.
func Open(path string) (*Catalog, error) {
	rows, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(rows), nil
}

// Tracks returns a copy of the working set.
func (c *Catalog) Tracks() []Track {
	return append([]Track(nil), c.tracks...)
}

// Len returns the size of the working set.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Diagnostics returns the fallback counts recorded while building c.
func (c *Catalog) Diagnostics() Diagnostics {
	return c.diagnostics
}
