package heatmodel

// Historical daily average temperature distributions, averaged over all KNMI
// weather stations in the Netherlands since 1951 and binned per 0.5°C. Each
// value is the average number of days per year the daily mean fell in that
// bin. The more recent eras give lower heating estimates, the average outdoor
// temperatures are indeed increasing.

const (
	EraAllYearsScaledToLast5 = "all-scaled-to-last-5"
	EraAllYears              = "all-years"
	EraLast10Years           = "last-10-years"
	EraLast5Years            = "last-5-years"
)

// knmiBins covers -30°C to 30°C in 0.5°C steps.
var knmiBins = func() []float64 {
	bins := make([]float64, 0, 121)
	for t := -30.0; t <= 30.0; t += 0.5 {
		bins = append(bins, t)
	}
	return bins
}()

// All-years distribution scaled to the temperature-days integral of the last
// five years. This is the default projection table.
var daysAllYearsScaledToLast5 = []float64{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0177,
	0.0, 0.05311, 0.05311, 0.05311, 0.0177, 0.0177, 0.07082, 0.10624, 0.05311, 0.12394,
	0.14165, 0.03541, 0.38953, 0.23018, 0.40724, 0.37183, 0.37183, 0.51347, 0.54888,
	0.79677, 0.97382, 1.29252, 1.31023, 1.36335, 2.08929, 2.05387, 2.46111, 2.7444,
	3.50575, 3.98381, 4.28481, 4.62122, 5.02845, 5.66587, 6.26786, 6.33868, 6.46262,
	7.27709, 8.10927, 8.19779, 8.78208, 9.01226, 8.87062, 8.33944, 8.30403, 8.09156,
	7.64891, 8.42797, 7.13545, 7.68433, 7.40104, 7.9145, 7.56039, 8.37485, 8.26862,
	8.58732, 8.88832, 8.39256, 9.49032, 8.41027, 8.48109, 8.09156, 6.74592, 6.58657,
	5.93145, 4.83369, 4.49727, 4.2494, 3.3464, 2.97458, 2.69129, 1.75287, 1.55811,
	1.62893, 1.31023, 1.13317, 0.70823, 0.79677, 0.47805, 0.53118, 0.24788, 0.301,
	0.15935, 0.08853, 0.05311, 0.0177, 0.0177, 0.0177, 0.0,
}

var daysAllYears = []float64{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.01553,
	0.01553, 0.0, 0.06214, 0.0466, 0.06214, 0.03107, 0.01553, 0.12427, 0.15534,
	0.15534, 0.15534, 0.21747, 0.07767, 0.41942, 0.38835, 0.52815, 0.48155, 0.54369,
	0.62136, 0.68349, 0.99417, 1.18058, 1.50679, 1.59999, 1.833, 2.56309, 2.60969,
	2.99804, 3.43299, 4.20969, 4.64464, 5.21939, 5.32813, 5.82521, 6.38443, 7.05239,
	7.54947, 7.17666, 8.18636, 8.91646, 9.24267, 9.46014, 9.89509, 9.59995, 9.28927,
	9.08733, 9.00966, 8.59025, 9.24267, 7.82908, 8.52811, 8.48151, 9.36694, 8.93199,
	9.46014, 9.52228, 9.52228, 10.40771, 10.0815, 10.87373, 10.0349, 9.49121, 8.59025,
	7.54947, 7.39414, 6.30676, 5.31259, 5.06405, 4.36503, 3.6194, 3.21552, 2.68736,
	1.7864, 1.63106, 1.63106, 1.27378, 1.22718, 0.73009, 0.77669, 0.54369, 0.46602,
	0.21747, 0.27961, 0.15534, 0.07767, 0.0466, 0.01553, 0.01553, 0.01553, 0.0,
}

var daysLast10Years = []float64{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.10005, 0.0, 0.0, 0.0, 0.0, 0.10005, 0.0, 0.0, 0.0, 0.0, 0.10005,
	0.40022, 0.40022, 0.30016, 0.0, 0.30016, 0.40022, 1.30071, 1.1006, 1.60088,
	1.40077, 1.60088, 2.10115, 2.40132, 2.80154, 3.00164, 3.00164, 3.80208, 5.00274,
	5.20285, 3.90214, 5.70313, 6.70367, 5.00274, 7.40406, 7.20395, 9.00493, 9.3051,
	9.70532, 9.90543, 10.60581, 9.10499, 11.00603, 9.80537, 8.10444, 9.90543, 8.80482,
	6.80373, 8.2045, 8.80482, 7.304, 9.00493, 8.90488, 9.3051, 8.40461, 9.3051,
	9.40515, 9.60526, 10.10554, 10.10554, 9.10499, 8.10444, 7.70422, 7.50411, 6.2034,
	5.50302, 4.60252, 3.70203, 4.50247, 3.20175, 1.90104, 2.30126, 1.70093, 0.80044,
	0.70038, 1.00055, 0.70038, 0.80044, 0.20011, 0.60033, 0.30016, 0.30016, 0.20011,
	0.0, 0.10005, 0.10005, 0.0,
}

var daysLast5Years = []float64{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.20033,
	0.0, 0.0, 0.0, 0.20033, 0.20033, 0.40066, 1.80296, 0.80132, 0.60099, 1.80296,
	2.00329, 2.00329, 2.40395, 2.20362, 4.40724, 5.00823, 6.61087, 4.40724, 5.00823,
	6.61087, 6.00988, 7.81284, 8.2135, 8.61416, 10.81778, 11.21844, 9.81614, 9.61581,
	7.41218, 12.01976, 9.41548, 8.41383, 9.61581, 9.01482, 6.8112, 9.41548, 9.81614,
	7.21186, 7.81284, 8.2135, 9.21515, 6.8112, 7.81284, 7.61251, 9.21515, 9.41548,
	8.81449, 10.41712, 8.2135, 7.81284, 9.61581, 6.41054, 6.41054, 4.40724, 4.8079,
	6.00988, 4.00659, 2.00329, 1.80296, 2.20362, 1.00165, 1.00165, 1.40231, 0.80132,
	1.20198, 0.40066, 0.60099, 0.40066, 0.0, 0.20033, 0.0, 0.20033, 0.20033, 0.0,
}

var tablesByEra = map[string]DegreeDayTable{
	EraAllYearsScaledToLast5: {Name: EraAllYearsScaledToLast5, Bins: knmiBins, Days: daysAllYearsScaledToLast5},
	EraAllYears:              {Name: EraAllYears, Bins: knmiBins, Days: daysAllYears},
	EraLast10Years:           {Name: EraLast10Years, Bins: knmiBins, Days: daysLast10Years},
	EraLast5Years:            {Name: EraLast5Years, Bins: knmiBins, Days: daysLast5Years},
}

// TableForEra returns the distribution table for the named era, falling back
// to the default when the name is unknown.
func TableForEra(name string) DegreeDayTable {
	if t, ok := tablesByEra[name]; ok {
		return t
	}
	return tablesByEra[EraAllYearsScaledToLast5]
}

// Eras lists the available table names.
func Eras() []string {
	return []string{EraAllYearsScaledToLast5, EraAllYears, EraLast10Years, EraLast5Years}
}
