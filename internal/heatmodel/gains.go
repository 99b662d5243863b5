package heatmodel

// GainBreakdown splits the power the fit predicts at the average indoor
// temperature into internal (electricity plus occupants) and external (solar
// and other ambient) contributions. Heat sources carry a negative sign since
// they reduce the net heating demand. This is a heuristic attribution, not a
// rigorous energy balance: whatever the internal sources do not explain at
// steady indoor temperature is credited to external gain.
type GainBreakdown struct {
	AverageIndoorTemp float64 `json:"average_indoor_temp"`
	PowerAtIndoorTemp float64 `json:"power_at_indoor_temp"`
	InternalPower     float64 `json:"internal_power"`
	ExternalPower     float64 `json:"external_power"`
}

// DecomposeGains evaluates the fit at the average observed indoor temperature
// and attributes the result to internal and external heat sources.
// avgElectricityKwh and occupantHeatKwh are daily energies, converted to power
// over the hours reserved for heating.
func DecomposeGains(fit FitResult, avgIndoorTemp, avgElectricityKwh, occupantHeatKwh, hoursPerDay float64) GainBreakdown {
	powerAtIndoor := fit.PowerAt(avgIndoorTemp)
	internal := -(avgElectricityKwh / hoursPerDay) - occupantHeatKwh/hoursPerDay

	return GainBreakdown{
		AverageIndoorTemp: avgIndoorTemp,
		PowerAtIndoorTemp: powerAtIndoor,
		InternalPower:     internal,
		ExternalPower:     powerAtIndoor - internal,
	}
}
