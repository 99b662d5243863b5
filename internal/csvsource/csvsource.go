// Package csvsource reads daily samples from a flat csv file instead of a
// sensor backend. Files are headerless with columns: outdoor temperature,
// heating energy (gas m³ when gas mode is on), and optionally indoor
// temperature and electricity use. Rows get consecutive synthetic dates so
// the regular aggregation path applies; the file carries no real ones.
package csvsource

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/PCKoper/heatcurve/internal/heatmodel"
)

type Source struct {
	path      string
	startDate time.Time
	useGas    bool
	rows      []*row
}

type row struct {
	OutdoorTemperature string `csv:"outdoor_temperature"`
	HeatingEnergy      string `csv:"heating_energy"`
	IndoorTemperature  string `csv:"indoor_temperature"`
	ElectricityEnergy  string `csv:"electricity_energy"`
}

type Option func(s *Source)

// WithStartDate assigns the date of the first row; following rows are
// consecutive days.
func WithStartDate(d time.Time) Option {
	return func(s *Source) {
		s.startDate = d
	}
}

// WithGasEnergy marks the energy column as gas volume in m³.
func WithGasEnergy() Option {
	return func(s *Source) {
		s.useGas = true
	}
}

func New(path string, opts ...Option) (*Source, error) {
	s := &Source{
		path:      path,
		startDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(s)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sample file: %w", err)
	}
	defer f.Close()

	err = gocsv.UnmarshalWithoutHeaders(f, &s.rows)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return s, nil
}

// Window is the synthetic date range covering every row of the file.
func (s *Source) Window() heatmodel.DateRange {
	end := s.startDate
	if len(s.rows) > 0 {
		end = s.startDate.AddDate(0, 0, len(s.rows)-1)
	}
	return heatmodel.DateRange{Start: s.startDate, End: end}
}

// Samples turns the file rows into observations. Empty cells simply produce
// no observation for that field, the garbage-in-garbage-out principle applies
// to anything else.
func (s *Source) Samples() ([]heatmodel.PartialObservation, error) {
	energyField := heatmodel.FieldHeatingEnergy
	if s.useGas {
		energyField = heatmodel.FieldGasVolume
	}

	var obs []heatmodel.PartialObservation
	for i, r := range s.rows {
		date := s.startDate.AddDate(0, 0, i)

		for _, cell := range []struct {
			raw   string
			field heatmodel.Field
		}{
			{r.OutdoorTemperature, heatmodel.FieldOutdoorTemperature},
			{r.HeatingEnergy, energyField},
			{r.IndoorTemperature, heatmodel.FieldIndoorTemperature},
			{r.ElectricityEnergy, heatmodel.FieldElectricityEnergy},
		} {
			v, ok, err := parseCell(cell.raw)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %w", s.path, i+1, err)
			}
			if !ok {
				continue
			}
			obs = append(obs, heatmodel.PartialObservation{Date: date, Field: cell.field, Value: v})
		}
	}

	return obs, nil
}

func parseCell(raw string) (float64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
