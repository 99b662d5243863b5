package analyzer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PCKoper/heatcurve/internal/heatmodel"
)

type staticSource struct {
	obs []heatmodel.PartialObservation
	err error
}

func (s *staticSource) Samples() ([]heatmodel.PartialObservation, error) {
	return s.obs, s.err
}

func day(d int) time.Time {
	return time.Date(2019, 11, d, 0, 0, 0, 0, time.UTC)
}

// four days on an exact line: power 3,2,1,0 kW at -5,0,5,10 C with 22 heating
// hours a day
func linearObservations() []heatmodel.PartialObservation {
	temps := []float64{-5, 0, 5, 10}
	energies := []float64{66, 44, 22, 0}

	var obs []heatmodel.PartialObservation
	for i := range temps {
		obs = append(obs,
			heatmodel.PartialObservation{Date: day(i + 1), Field: heatmodel.FieldOutdoorTemperature, Value: temps[i]},
			heatmodel.PartialObservation{Date: day(i + 1), Field: heatmodel.FieldHeatingEnergy, Value: energies[i]},
			heatmodel.PartialObservation{Date: day(i + 1), Field: heatmodel.FieldIndoorTemperature, Value: 20},
			heatmodel.PartialObservation{Date: day(i + 1), Field: heatmodel.FieldElectricityEnergy, Value: 10},
		)
	}
	return obs
}

func testConfig() *heatmodel.Config {
	cfg := heatmodel.DefaultConfig()
	cfg.Window = heatmodel.DateRange{Start: day(1), End: day(30)}
	cfg.ElectricityCalibrationFactor = 1.0
	cfg.OccupantHeatKwhPerDay = 1.0
	return &cfg
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Run("end to end on an exact line", func(t *testing.T) {
		a := New(&staticSource{obs: linearObservations()}, WithConfig(testConfig()))

		analysis, err := a.Analyze()
		require.NoError(t, err)

		assert.InDelta(t, -0.2, analysis.Fit.Gain, 1e-9)
		assert.InDelta(t, 2.0, analysis.Fit.Offset, 1e-9)
		assert.Equal(t, 1.0, analysis.Fit.Correlation)
		assert.InDelta(t, 10.0, analysis.HeatingLimit, 1e-6)

		// configured temperature of interest -7 is below the 10 C limit
		assert.Equal(t, -7.0, analysis.TemperatureOfInterest)
		assert.InDelta(t, 3.4, analysis.PowerAtTemperatureOfInterest, 1e-9)
	})

	t.Run("temperature of interest clamps to the balance point", func(t *testing.T) {
		cfg := testConfig()
		cfg.OutsideTemperatureOfInterest = 15.0

		a := New(&staticSource{obs: linearObservations()}, WithConfig(cfg))

		analysis, err := a.Analyze()
		require.NoError(t, err)

		assert.InDelta(t, 10.0, analysis.TemperatureOfInterest, 1e-6)
		// capacity margin at the balance point is all there is
		assert.InDelta(t, 0.0, analysis.PowerAtTemperatureOfInterest, 1e-6)
	})

	t.Run("gain decomposition uses series averages", func(t *testing.T) {
		a := New(&staticSource{obs: linearObservations()}, WithConfig(testConfig()))

		analysis, err := a.Analyze()
		require.NoError(t, err)

		require.NotNil(t, analysis.Gains)
		assert.InDelta(t, 20.0, analysis.Gains.AverageIndoorTemp, 1e-9)
		// -0.2*20 + 2.0
		assert.InDelta(t, -2.0, analysis.Gains.PowerAtIndoorTemp, 1e-9)
		// -(10/22) - 1/22
		assert.InDelta(t, -0.5, analysis.Gains.InternalPower, 1e-9)
		assert.InDelta(t, -1.5, analysis.Gains.ExternalPower, 1e-9)
	})

	t.Run("gains disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.EstimateGains = false

		a := New(&staticSource{obs: linearObservations()}, WithConfig(cfg))

		analysis, err := a.Analyze()
		require.NoError(t, err)
		assert.Nil(t, analysis.Gains)
	})

	t.Run("source errors propagate", func(t *testing.T) {
		a := New(&staticSource{err: errors.New("backend down")}, WithConfig(testConfig()))

		_, err := a.Analyze()
		assert.ErrorContains(t, err, "backend down")
	})

	t.Run("too little data", func(t *testing.T) {
		obs := []heatmodel.PartialObservation{
			{Date: day(1), Field: heatmodel.FieldOutdoorTemperature, Value: 5},
			{Date: day(1), Field: heatmodel.FieldHeatingEnergy, Value: 44},
		}

		a := New(&staticSource{obs: obs}, WithConfig(testConfig()))

		_, err := a.Analyze()
		assert.ErrorIs(t, err, heatmodel.ErrInsufficientData)
	})

	t.Run("integrity errors from the normalizer propagate", func(t *testing.T) {
		obs := []heatmodel.PartialObservation{
			{Date: day(1), Field: heatmodel.FieldOutdoorTemperature, Value: 5},
			{Date: day(1), Field: heatmodel.FieldHeatingCounterMax, Value: 1},
			{Date: day(1), Field: heatmodel.FieldHeatingCounterMin, Value: 100},
		}

		a := New(&staticSource{obs: obs}, WithConfig(testConfig()))

		_, err := a.Analyze()
		assert.ErrorIs(t, err, heatmodel.ErrDataIntegrity)
	})
}

func TestAnalysis_Report(t *testing.T) {
	a := New(&staticSource{obs: linearObservations()}, WithConfig(testConfig()))

	analysis, err := a.Analyze()
	require.NoError(t, err)

	report := analysis.Report()
	assert.Contains(t, report, "Power = -0.20000 * temperature + 2.000 (r=1)")
	assert.Contains(t, report, "Heating required until Toutdoor: 10.00 C")
	assert.Contains(t, report, "internal heat from electricity and people = 0.500 kW")
}
