package catalog

// Diagnostics counts the silent fallbacks taken while normalizing. It is a
// side channel only; nothing in the pipeline reacts to it.
type Diagnostics struct {
	Rows             int
	DefaultedFields  map[string]int
	UnparseableDates int
	UnknownGenres    int
	OutOfRange       int
}

func newDiagnostics() Diagnostics {
	return Diagnostics{DefaultedFields: make(map[string]int)}
}

// number parses a numeric column, defaulting to 0 and counting the fallback.
func (d *Diagnostics) number(row RawRow, col string) float64 {
	v, ok := parseNumber(row.Get(col))
	if !ok {
		if d.DefaultedFields == nil {
			d.DefaultedFields = make(map[string]int)
		}
		d.DefaultedFields[col]++
	}
	return v
}

// Defaulted returns the total number of numeric fields that fell back to 0.
func (d Diagnostics) Defaulted() int {
	total := 0
	for _, n := range d.DefaultedFields {
		total += n
	}
	return total
}
