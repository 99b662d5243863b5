package heatmodel

import "sort"

// DegreeDayTable maps outdoor temperature bins to days per year at or below
// that bin. Values may be given either as a per-bin daily frequency histogram
// or as an already cumulative count; a non-decreasing value sequence is taken
// to be cumulative. Tables are reference data, loaded once and never mutated.
type DegreeDayTable struct {
	Name string
	// Bins in ascending order, °C.
	Bins []float64
	// Days per year for each bin, same length as Bins.
	Days []float64
}

// Cumulative returns days/year at-or-below each bin, running-summing a
// frequency histogram when needed.
func (t DegreeDayTable) Cumulative() []float64 {
	if sort.Float64sAreSorted(t.Days) {
		// already cumulative
		out := make([]float64, len(t.Days))
		copy(out, t.Days)
		return out
	}

	out := make([]float64, len(t.Days))
	sum := 0.0
	for i, d := range t.Days {
		sum += d
		out[i] = sum
	}
	return out
}

// Frequencies returns days/year falling exactly in each bin.
func (t DegreeDayTable) Frequencies() []float64 {
	if !sort.Float64sAreSorted(t.Days) {
		out := make([]float64, len(t.Days))
		copy(out, t.Days)
		return out
	}

	out := make([]float64, len(t.Days))
	prev := 0.0
	for i, d := range t.Days {
		out[i] = d - prev
		prev = d
	}
	return out
}

// DaysPerYearBelowOrAt estimates how many days per year the outdoor
// temperature is at or below the query temperature, interpolating linearly
// between the two bracketing bins. Queries outside the table clamp to the
// boundary values rather than fail.
func DaysPerYearBelowOrAt(table DegreeDayTable, temperature float64) float64 {
	if len(table.Bins) == 0 {
		return 0
	}

	cum := table.Cumulative()
	if temperature < table.Bins[0] {
		return 0
	}
	last := len(table.Bins) - 1
	if temperature >= table.Bins[last] {
		return cum[last]
	}

	// first bin strictly above the query
	hi := sort.SearchFloat64s(table.Bins, temperature)
	if table.Bins[hi] == temperature {
		return cum[hi]
	}
	lo := hi - 1

	fraction := (temperature - table.Bins[lo]) / (table.Bins[hi] - table.Bins[lo])
	return cum[lo] + fraction*(cum[hi]-cum[lo])
}
