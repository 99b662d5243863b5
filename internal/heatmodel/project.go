package heatmodel

const (
	// PeakReferenceTemperature is where supplemental heating demand is
	// assumed to peak when sizing the capacity margin.
	PeakReferenceTemperature = -15.0
	// AverageDemandFactor approximates the average demand across a day
	// relative to the peak value. A deliberate simplification carried over
	// from the sizing heuristic, kept as a named policy so it can be
	// revisited.
	AverageDemandFactor = 0.5
)

// ProjectAnnualEnergy estimates the yearly heating energy in kWh by summing,
// for every temperature bin below the balance point, the fitted power at that
// bin times the days per year the bin occurs times the heating hours per day.
func ProjectAnnualEnergy(fit FitResult, table DegreeDayTable, balancePoint, hoursPerDay float64) float64 {
	freq := table.Frequencies()
	total := 0.0
	for i, bin := range table.Bins {
		if bin >= balancePoint {
			break
		}
		total += fit.PowerAt(bin) * freq[i] * hoursPerDay
	}
	return total
}

// AlternativeProjection sizes the supplemental heating needed below the
// temperature of interest when the primary heater can still deliver its output
// at that temperature but demand keeps growing down to the peak reference.
type AlternativeProjection struct {
	DaysPerYear float64 `json:"days_per_year"`
	PowerKw     float64 `json:"power_kw"`
	EnergyKwh   float64 `json:"energy_kwh"`
	Cost        float64 `json:"cost"`
}

// ProjectAlternative estimates days per year, extra capacity, energy and cost
// of supplemental heating below the temperature of interest.
func ProjectAlternative(fit FitResult, table DegreeDayTable, temperatureOfInterest, hoursPerDay, costPerKwh float64) AlternativeProjection {
	days := DaysPerYearBelowOrAt(table, temperatureOfInterest)
	power := fit.PowerAt(PeakReferenceTemperature) - fit.PowerAt(temperatureOfInterest)
	energy := power * days * hoursPerDay * AverageDemandFactor

	return AlternativeProjection{
		DaysPerYear: days,
		PowerKw:     power,
		EnergyKwh:   energy,
		Cost:        energy * costPerKwh,
	}
}
