package analyzer

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/PCKoper/heatcurve/internal/heatmodel"
)

// SampleSource produces the raw per-day observations the analysis runs on.
// Implementations own retrieval, retries and malformed-payload filtering; the
// analyzer only sees resolved in-memory records.
type SampleSource interface {
	Samples() ([]heatmodel.PartialObservation, error)
}

type Option func(a *Analyzer)

func WithConfig(c *heatmodel.Config) Option {
	return func(a *Analyzer) {
		a.config = c
	}
}

// Analyzer runs the heating curve pipeline against a sample source. The
// config is replaced wholesale, never mutated in place, so a running analysis
// always sees one consistent value.
type Analyzer struct {
	source SampleSource
	config *heatmodel.Config
	m      sync.RWMutex
}

func New(source SampleSource, opts ...Option) *Analyzer {
	cfg := heatmodel.DefaultConfig()
	// analyse the last year by default
	end := heatmodel.Day(time.Now())
	cfg.Window = heatmodel.DateRange{Start: end.AddDate(-1, 0, 0), End: end}

	a := &Analyzer{
		source: source,
		config: &cfg,
	}

	hours := os.Getenv("HEATCURVE_HOURS_FOR_HEATING")
	if hours != "" {
		h, err := strconv.ParseFloat(hours, 64)
		if err != nil {
			println(fmt.Errorf("err parsing HEATCURVE_HOURS_FOR_HEATING: %w", err).Error())
		} else {
			a.config.HoursForHeatingADay = h
		}
	}

	toi := os.Getenv("HEATCURVE_TEMPERATURE_OF_INTEREST")
	if toi != "" {
		v, err := strconv.ParseFloat(toi, 64)
		if err != nil {
			println(fmt.Errorf("err parsing HEATCURVE_TEMPERATURE_OF_INTEREST: %w", err).Error())
		} else {
			a.config.OutsideTemperatureOfInterest = v
		}
	}

	cost := os.Getenv("HEATCURVE_COST_PER_KWH")
	if cost != "" {
		v, err := strconv.ParseFloat(cost, 64)
		if err != nil {
			println(fmt.Errorf("err parsing HEATCURVE_COST_PER_KWH: %w", err).Error())
		} else {
			a.config.CostPerKwh = v
		}
	}

	calib := os.Getenv("HEATCURVE_ELECTRICITY_CALIBRATION")
	if calib != "" {
		v, err := strconv.ParseFloat(calib, 64)
		if err != nil {
			println(fmt.Errorf("err parsing HEATCURVE_ELECTRICITY_CALIBRATION: %w", err).Error())
		} else {
			a.config.ElectricityCalibrationFactor = v
		}
	}

	if os.Getenv("HEATCURVE_USE_GAS") == "true" {
		a.config.UseGasForHeating = true
	}

	if era := os.Getenv("HEATCURVE_DISTRIBUTION_ERA"); era != "" {
		a.config.DistributionEra = era
	}

	if ws := os.Getenv("HEATCURVE_WINDOW_START"); ws != "" {
		d, err := time.Parse("2006-01-02", ws)
		if err != nil {
			println(fmt.Errorf("err parsing HEATCURVE_WINDOW_START: %w", err).Error())
		} else {
			a.config.Window.Start = d
		}
	}

	if we := os.Getenv("HEATCURVE_WINDOW_END"); we != "" {
		d, err := time.Parse("2006-01-02", we)
		if err != nil {
			println(fmt.Errorf("err parsing HEATCURVE_WINDOW_END: %w", err).Error())
		} else {
			a.config.Window.End = d
		}
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *Analyzer) GetConfig() *heatmodel.Config {
	a.m.RLock()
	defer a.m.RUnlock()

	return a.config
}

func (a *Analyzer) SetConfig(c heatmodel.Config) {
	a.m.Lock()
	defer a.m.Unlock()

	a.config = &c
}

// Analysis is the result of one full pipeline run. Everything is derived
// fresh from the source data; nothing is cached between runs.
type Analysis struct {
	Window                       heatmodel.DateRange             `json:"window"`
	DistributionEra              string                          `json:"distribution_era"`
	Fit                          heatmodel.FitResult             `json:"fit"`
	HeatingLimit                 float64                         `json:"heating_limit"`
	TemperatureOfInterest        float64                         `json:"temperature_of_interest"`
	PowerAtTemperatureOfInterest float64                         `json:"power_at_temperature_of_interest"`
	AnnualEnergyKwh              float64                         `json:"annual_energy_kwh"`
	Alternative                  heatmodel.AlternativeProjection `json:"alternative"`
	Gains                        *heatmodel.GainBreakdown        `json:"gains,omitempty"`
	Series                       heatmodel.AlignedSeries         `json:"series"`
}

// Analyze aggregates, normalizes and aligns the source samples, fits the
// heat loss line and projects annual and supplemental heating energy.
func (a *Analyzer) Analyze() (*Analysis, error) {
	cfg := *a.GetConfig()

	obs, err := a.source.Samples()
	if err != nil {
		return nil, fmt.Errorf("fetching samples: %w", err)
	}

	samples := heatmodel.Aggregate(obs, cfg.Window)
	normalizer := heatmodel.NewNormalizer(cfg)
	samples, err = normalizer.NormalizeSamples(samples)
	if err != nil {
		return nil, err
	}
	series := heatmodel.Align(samples, cfg.HoursForHeatingADay)

	fit, err := heatmodel.FitLinear(series.OutdoorTemp, series.HeatingPower)
	if err != nil {
		return nil, err
	}

	limit, err := fit.BalancePoint()
	if err != nil {
		return nil, err
	}

	// above the balance point there is nothing to heat, clamp down so the
	// capacity margin never goes negative
	toi := cfg.OutsideTemperatureOfInterest
	if limit < toi {
		toi, err = stats.Round(limit, 2)
		if err != nil {
			return nil, err
		}
	}

	table := heatmodel.TableForEra(cfg.DistributionEra)
	alternative := heatmodel.ProjectAlternative(fit, table, toi, cfg.HoursForHeatingADay, cfg.CostPerKwh)
	annual := heatmodel.ProjectAnnualEnergy(fit, table, limit, cfg.HoursForHeatingADay)

	analysis := &Analysis{
		Window:                       cfg.Window,
		DistributionEra:              table.Name,
		Fit:                          fit,
		HeatingLimit:                 limit,
		TemperatureOfInterest:        toi,
		PowerAtTemperatureOfInterest: fit.PowerAt(toi),
		AnnualEnergyKwh:              annual,
		Alternative:                  alternative,
		Series:                       series,
	}

	if cfg.EstimateGains && series.Len() > 0 {
		avgIndoor, err := stats.Mean(series.IndoorTemp)
		if err != nil {
			return nil, err
		}
		avgElectricity, err := stats.Mean(series.ElectricityEnergy)
		if err != nil {
			return nil, err
		}

		gains := heatmodel.DecomposeGains(fit, avgIndoor, avgElectricity, cfg.OccupantHeatKwhPerDay, cfg.HoursForHeatingADay)
		analysis.Gains = &gains
	}

	return analysis, nil
}

// Report renders the analysis as the plain text summary printed by the CLI.
func (a *Analysis) Report() string {
	s := fmt.Sprintf("Analysed: %s - %s (%d days)\n",
		a.Window.Start.Format("Monday January 02 2006"),
		a.Window.End.Format("Monday January 02 2006"),
		a.Series.Len())
	s += fmt.Sprintf("Fitting function: Power = %.5f * temperature + %.3f (r=%v)\n", a.Fit.Gain, a.Fit.Offset, a.Fit.Correlation)
	s += fmt.Sprintf("Heating required until Toutdoor: %.2f C\n", a.HeatingLimit)
	s += fmt.Sprintf("Heating power required @ %.1f C: %.2f kW\n", a.TemperatureOfInterest, a.PowerAtTemperatureOfInterest)
	s += fmt.Sprintf("%.1f days/year alternative power required below %.1f C of %.2f kW for a total of %.2f kWh (%.2f Euro)\n",
		a.Alternative.DaysPerYear, a.TemperatureOfInterest, a.Alternative.PowerKw, a.Alternative.EnergyKwh, a.Alternative.Cost)
	s += fmt.Sprintf("Estimated year total energy required for heating = %.1f MWh\n", a.AnnualEnergyKwh/1000.0)

	if a.Gains != nil {
		s += fmt.Sprintf("Estimated average additional heating power = %.3f kW, of which:\n", math.Abs(a.Gains.PowerAtIndoorTemp))
		s += fmt.Sprintf("  internal heat from electricity and people = %.3f kW\n", math.Abs(a.Gains.InternalPower))
		s += fmt.Sprintf("  external heat from sun = %.3f kW\n", math.Abs(a.Gains.ExternalPower))
	}

	return s
}
