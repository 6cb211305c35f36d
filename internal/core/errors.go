package core

import "errors"

var (
	ErrUnknownAlgorithm     = errors.New("unknown scheduling algorithm")
	ErrInvalidProcess       = errors.New("invalid process")
	ErrSimulationDivergence = errors.New("simulation exceeded its time bound")
)
