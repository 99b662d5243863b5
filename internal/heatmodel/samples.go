package heatmodel

import (
	"sort"
	"time"
)

// Field names a single measured quantity on a calendar day. Raw fields come
// straight from the acquisition layer; the Normalizer rewrites them into the
// canonical ones before a series is built.
type Field string

const (
	FieldOutdoorTemperature Field = "OutdoorTemperature"
	FieldIndoorTemperature  Field = "IndoorTemperature"
	FieldElectricityEnergy  Field = "ElectricityEnergy"

	// Raw heating fields, one of the three depending on the meter setup.
	FieldHeatingEnergy     Field = "HeatingEnergy"
	FieldHeatingCounterMax Field = "HeatingCounterMax"
	FieldHeatingCounterMin Field = "HeatingCounterMin"
	FieldGasVolume         Field = "GasVolume"
)

// PartialObservation is one value for one field on one day, as produced by a
// sample source. Multiple observations may share a date.
type PartialObservation struct {
	Date  time.Time
	Field Field
	Value float64
}

// DailySample is the merge of all observations sharing a date.
type DailySample struct {
	Date   time.Time
	Fields map[Field]float64
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the range, boundaries included.
func (r DateRange) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(Day(r.Start)) && !d.After(Day(r.End))
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AlignedSeries holds one entry per day of the analysis window, all slices the
// same length with index i referring to the same day.
type AlignedSeries struct {
	Dates             []time.Time
	OutdoorTemp       []float64
	IndoorTemp        []float64
	HeatingPower      []float64
	ElectricityEnergy []float64
}

func (s AlignedSeries) Len() int {
	return len(s.Dates)
}

// Aggregate merges observations into one DailySample per distinct date,
// discarding anything outside the window. Merging is keyed by date and field,
// so the result does not depend on the order observations arrive in; when the
// same field occurs twice on a date the last value wins.
func Aggregate(obs []PartialObservation, window DateRange) []DailySample {
	merged := make(map[time.Time]map[Field]float64)
	for _, o := range obs {
		d := Day(o.Date)
		if !window.Contains(d) {
			continue
		}
		fields, ok := merged[d]
		if !ok {
			fields = make(map[Field]float64)
			merged[d] = fields
		}
		fields[o.Field] = o.Value
	}

	samples := make([]DailySample, 0, len(merged))
	for d, fields := range merged {
		samples = append(samples, DailySample{Date: d, Fields: fields})
	}
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Date.Before(samples[j].Date)
	})

	return samples
}

// lastKnown is the carry-forward accumulator for the alignment scan.
type lastKnown struct {
	outdoorTemp       float64
	indoorTemp        float64
	heatingPower      float64
	electricityEnergy float64
}

// Align walks samples in chronological order and produces the parallel series
// the fitter consumes. Days missing a field repeat the most recently seen
// value for it; fields never seen stay at zero. Heating energy per day is
// turned into average power over the hours reserved for heating. The
// carry-forward policy keeps sensor gaps from breaking the regression, at the
// cost of biasing towards stale data after an outage.
func Align(samples []DailySample, hoursForHeatingADay float64) AlignedSeries {
	series := AlignedSeries{
		Dates:             make([]time.Time, 0, len(samples)),
		OutdoorTemp:       make([]float64, 0, len(samples)),
		IndoorTemp:        make([]float64, 0, len(samples)),
		HeatingPower:      make([]float64, 0, len(samples)),
		ElectricityEnergy: make([]float64, 0, len(samples)),
	}

	var last lastKnown
	for _, sample := range samples {
		if v, ok := sample.Fields[FieldOutdoorTemperature]; ok {
			last.outdoorTemp = v
		}
		if v, ok := sample.Fields[FieldIndoorTemperature]; ok {
			last.indoorTemp = v
		}
		if v, ok := sample.Fields[FieldHeatingEnergy]; ok {
			last.heatingPower = v / hoursForHeatingADay
		}
		if v, ok := sample.Fields[FieldElectricityEnergy]; ok {
			last.electricityEnergy = v
		}

		series.Dates = append(series.Dates, sample.Date)
		series.OutdoorTemp = append(series.OutdoorTemp, last.outdoorTemp)
		series.IndoorTemp = append(series.IndoorTemp, last.indoorTemp)
		series.HeatingPower = append(series.HeatingPower, last.heatingPower)
		series.ElectricityEnergy = append(series.ElectricityEnergy, last.electricityEnergy)
	}

	return series
}
