package heatmodel

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// FitResult is the least-squares line power = Gain*temperature + Offset.
// Correlation is the Pearson coefficient between the fitted predictions and
// the observed powers, rounded to 3 decimals as a fit quality diagnostic.
type FitResult struct {
	Gain        float64 `json:"gain"`
	Offset      float64 `json:"offset"`
	Correlation float64 `json:"correlation"`
}

// PowerAt evaluates the fitted line at the given outdoor temperature.
func (f FitResult) PowerAt(temperature float64) float64 {
	return f.Gain*temperature + f.Offset
}

// BalancePoint is the outdoor temperature above which no heating is needed,
// -Offset/Gain. A flat fit has no balance point.
func (f FitResult) BalancePoint() (float64, error) {
	if f.Gain == 0 {
		return 0, ErrUndefinedBalancePoint
	}
	return -f.Offset / f.Gain, nil
}

// FitLinear fits power = gain*temperature + offset by ordinary least squares.
// The relationship is physically near-linear over the relevant range, the
// envelope losing heat proportionally to the temperature differential. At
// least two samples with some spread in temperature are required.
func FitLinear(temperatures, powers []float64) (FitResult, error) {
	if len(temperatures) != len(powers) {
		return FitResult{}, fmt.Errorf("series lengths differ: %d vs %d", len(temperatures), len(powers))
	}
	if len(temperatures) < 2 {
		return FitResult{}, ErrInsufficientData
	}

	varT, err := stats.SampleVariance(temperatures)
	if err != nil {
		return FitResult{}, err
	}
	if varT == 0 {
		// all temperatures identical, the line is vertical
		return FitResult{}, ErrInsufficientData
	}

	cov, err := stats.Covariance(temperatures, powers)
	if err != nil {
		return FitResult{}, err
	}
	meanT, err := stats.Mean(temperatures)
	if err != nil {
		return FitResult{}, err
	}
	meanP, err := stats.Mean(powers)
	if err != nil {
		return FitResult{}, err
	}

	gain := cov / varT
	offset := meanP - gain*meanT

	correlation := 0.0
	if gain != 0 {
		fitted := make([]float64, len(temperatures))
		for i, t := range temperatures {
			fitted[i] = gain*t + offset
		}
		correlation, err = stats.Pearson(fitted, powers)
		if err != nil {
			return FitResult{}, err
		}
		if math.IsNaN(correlation) {
			correlation = 0
		}
		correlation, err = stats.Round(correlation, 3)
		if err != nil {
			return FitResult{}, err
		}
	}

	return FitResult{Gain: gain, Offset: offset, Correlation: correlation}, nil
}
