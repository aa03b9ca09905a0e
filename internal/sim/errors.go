package sim

import "errors"

var (
	// ErrAlreadyRunning is returned by Start while a run is active.
	ErrAlreadyRunning = errors.New("sim: simulation already running")

	// ErrNotRunning is returned by Stop when nothing is running.
	ErrNotRunning = errors.New("sim: simulation not running")
)
