package api

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/PCKoper/heatcurve/internal/analyzer"
	"github.com/PCKoper/heatcurve/internal/heatmodel"
)

func AnalysisToCharts(a *analyzer.Analysis, table heatmodel.DegreeDayTable, hoursForHeatingADay float64) ([]byte, error) {
	type point struct {
		temp  float64
		power float64
	}
	points := make([]point, 0, a.Series.Len())
	for i := range a.Series.Dates {
		points = append(points, point{temp: a.Series.OutdoorTemp[i], power: a.Series.HeatingPower[i]})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].temp < points[j].temp
	})

	fitChart := charts.NewScatter()
	fitChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Heating Power vs Outdoor Temperature (r=%v)", a.Fit.Correlation),
		}))
	var xAxis []string
	var measured []opts.ScatterData
	var fitted []opts.LineData
	for _, p := range points {
		xAxis = append(xAxis, fmt.Sprintf("%.1f", p.temp))
		measured = append(measured, opts.ScatterData{
			Value:      p.power,
			SymbolSize: 6,
		})
		fitted = append(fitted, opts.LineData{
			Value: a.Fit.PowerAt(p.temp),
		})
	}
	fitChart.SetXAxis(xAxis).
		AddSeries("Measured kW", measured)

	fitLine := charts.NewLine()
	fitLine.SetXAxis(xAxis).
		AddSeries("Fitted kW", fitted)
	if a.Gains != nil {
		var internal []opts.LineData
		var external []opts.LineData
		for range points {
			internal = append(internal, opts.LineData{
				Value: math.Abs(a.Gains.InternalPower),
			})
			external = append(external, opts.LineData{
				Value: math.Abs(a.Gains.ExternalPower),
			})
		}
		fitLine.AddSeries("Internal gain kW", internal).
			AddSeries("External gain kW", external)
	}
	fitChart.Overlap(fitLine)

	dailyChart := charts.NewLine()
	dailyChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Daily Samples",
		}))
	xAxis = []string{}
	var yTemp []opts.LineData
	var yPower []opts.LineData
	for i, d := range a.Series.Dates {
		xAxis = append(xAxis, d.Format(dateFormat))
		yTemp = append(yTemp, opts.LineData{
			Value: a.Series.OutdoorTemp[i],
		})
		yPower = append(yPower, opts.LineData{
			Value: a.Series.HeatingPower[i],
		})
	}
	dailyChart.SetXAxis(xAxis).
		AddSeries("Outdoor C", yTemp).
		AddSeries("Heating kW", yPower)

	distributionChart := charts.NewLine()
	distributionChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Annual Distribution %s (%.1f MWh)", table.Name, a.AnnualEnergyKwh/1000.0),
		}))
	frequencies := table.Frequencies()
	xAxis = []string{}
	var yDays []opts.LineData
	var yEnergy []opts.LineData
	for i, bin := range table.Bins {
		xAxis = append(xAxis, fmt.Sprintf("%.1f", bin))
		yDays = append(yDays, opts.LineData{
			Value: frequencies[i],
		})

		var energy float64
		if bin < a.HeatingLimit {
			energy = a.Fit.PowerAt(bin) * frequencies[i] * hoursForHeatingADay
		}
		yEnergy = append(yEnergy, opts.LineData{
			Value: energy,
		})
	}
	distributionChart.SetXAxis(xAxis).
		AddSeries("Days/year", yDays).
		AddSeries("kWh", yEnergy)

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	page.AddCharts(fitChart)
	page.AddCharts(dailyChart)
	page.AddCharts(distributionChart)

	bodyBuf := bytes.NewBuffer([]byte{})

	err := page.Render(bodyBuf)
	if err != nil {
		return nil, err
	}

	return bodyBuf.Bytes(), nil
}
