package core

import "errors"

var (
	// ErrDuplicateID is returned when a process id is already registered.
	ErrDuplicateID = errors.New("duplicate process id")

	// ErrInvalidQuantum is returned by round robin for a quantum <= 0.
	ErrInvalidQuantum = errors.New("invalid time quantum")

	// ErrEmptyQueue is returned when a scheduler is given no processes.
	ErrEmptyQueue = errors.New("no processes to schedule")

	// ErrClockOverflow is returned when the summed bursts do not fit the clock.
	ErrClockOverflow = errors.New("total burst exceeds the simulation clock")

	ErrInvalidProcess   = errors.New("invalid process")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)
