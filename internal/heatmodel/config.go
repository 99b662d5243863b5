package heatmodel

// Config collects every tunable of the model. A value is built once per run
// and handed to the components that need it; nothing reads it through package
// state.
type Config struct {
	// UseGasForHeating selects gas-volume conversion instead of the heat
	// meter counter.
	UseGasForHeating bool
	// EnergyPerCubicMeterGas is the energy density of the gas in kWh/m³.
	// The default matches Dutch natural gas without condensation recovery.
	EnergyPerCubicMeterGas float64
	// GasForWaterAndCookingM3 is the daily gas allowance for hot water and
	// cooking, subtracted before conversion so only space heating remains.
	GasForWaterAndCookingM3 float64
	// ElectricityCalibrationFactor reconciles the pulse meter against the
	// billing meter.
	ElectricityCalibrationFactor float64
	// OccupantHeatKwhPerDay is the average heat given off by the people in
	// the house per day.
	OccupantHeatKwhPerDay float64
	// HoursForHeatingADay caps the heating runtime per day, reserving the
	// rest for hot water or night setback. Daily energies divided by this
	// give the average power that is fitted against temperature.
	HoursForHeatingADay float64
	// OutsideTemperatureOfInterest is where the required heating capacity
	// is evaluated.
	OutsideTemperatureOfInterest float64
	CostPerKwh                   float64
	// EstimateGains enables the internal/external gain decomposition, which
	// needs indoor temperature and electricity data.
	EstimateGains bool
	// DistributionEra names the degree-day reference table to project with.
	DistributionEra string
	Window          DateRange
}

// DefaultConfig returns the calibration the model was originally tuned with.
func DefaultConfig() Config {
	return Config{
		UseGasForHeating:             false,
		EnergyPerCubicMeterGas:       31.65 / 3.6,
		GasForWaterAndCookingM3:      8.0 / 30.0,
		ElectricityCalibrationFactor: 0.987755312791,
		OccupantHeatKwhPerDay:        14.0 * 2.0 * 0.12,
		HoursForHeatingADay:          22.0,
		OutsideTemperatureOfInterest: -7.0,
		CostPerKwh:                   0.227,
		EstimateGains:                true,
		DistributionEra:              EraAllYearsScaledToLast5,
	}
}
