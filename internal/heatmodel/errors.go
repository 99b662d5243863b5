package heatmodel

import "errors"

var (
	ErrInsufficientData      = errors.New("need at least two aligned samples to fit")
	ErrDataIntegrity         = errors.New("energy counter decreased within a day")
	ErrUndefinedBalancePoint = errors.New("fitted gain is zero, balance point undefined")
)
