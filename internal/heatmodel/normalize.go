package heatmodel

import "fmt"

// Normalizer converts raw meter fields into comparable thermal energy. It is
// stateless; all calibration comes from the Config it was built with.
type Normalizer struct {
	cfg Config
}

func NewNormalizer(cfg Config) Normalizer {
	return Normalizer{cfg: cfg}
}

// HeatingEnergyFromCounter returns the day's heating energy from a
// monotonically increasing counter. A negative difference means the counter
// reset or was read out of order and is surfaced rather than clamped.
func (n Normalizer) HeatingEnergyFromCounter(vmax, vmin float64) (float64, error) {
	delta := vmax - vmin
	if delta < 0 {
		return 0, fmt.Errorf("counter max %.3f below min %.3f: %w", vmax, vmin, ErrDataIntegrity)
	}
	return delta, nil
}

// HeatingEnergyFromGas converts a day's gas volume to kWh, after subtracting
// the hot water and cooking allowance.
func (n Normalizer) HeatingEnergyFromGas(volumeM3 float64) float64 {
	return (volumeM3 - n.cfg.GasForWaterAndCookingM3) * n.cfg.EnergyPerCubicMeterGas
}

// CalibrateElectricity scales a reading towards the billing meter. Full
// precision is kept here; rounding is a presentation concern.
func (n Normalizer) CalibrateElectricity(kwh float64) float64 {
	return kwh * n.cfg.ElectricityCalibrationFactor
}

// PowerFromDailyEnergy turns a daily energy into the average power over the
// hours reserved for heating.
func (n Normalizer) PowerFromDailyEnergy(kwh float64) float64 {
	return kwh / n.cfg.HoursForHeatingADay
}

// NormalizeSamples rewrites the raw heating and electricity fields of each
// sample into the canonical ones, leaving samples that already carry canonical
// fields untouched. Input samples are not modified.
func (n Normalizer) NormalizeSamples(samples []DailySample) ([]DailySample, error) {
	out := make([]DailySample, 0, len(samples))
	for _, sample := range samples {
		fields := make(map[Field]float64, len(sample.Fields))
		for k, v := range sample.Fields {
			fields[k] = v
		}

		if n.cfg.UseGasForHeating {
			if v, ok := fields[FieldGasVolume]; ok {
				fields[FieldHeatingEnergy] = n.HeatingEnergyFromGas(v)
			}
		} else {
			vmax, okMax := fields[FieldHeatingCounterMax]
			vmin, okMin := fields[FieldHeatingCounterMin]
			if okMax && okMin {
				energy, err := n.HeatingEnergyFromCounter(vmax, vmin)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", sample.Date.Format("2006-01-02"), err)
				}
				fields[FieldHeatingEnergy] = energy
			}
		}
		delete(fields, FieldGasVolume)
		delete(fields, FieldHeatingCounterMax)
		delete(fields, FieldHeatingCounterMin)

		if v, ok := fields[FieldElectricityEnergy]; ok {
			fields[FieldElectricityEnergy] = n.CalibrateElectricity(v)
		}

		out = append(out, DailySample{Date: sample.Date, Fields: fields})
	}

	return out, nil
}
