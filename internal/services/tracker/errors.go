package tracker

import "errors"

// Define errors
var (
	ErrQueueFull         = errors.New("presence event queue is full")
	ErrNotAccepting      = errors.New("tracker is not accepting events")
	ErrAlreadyReconciled = errors.New("reconciliation has already run")
	ErrAlreadyStarted    = errors.New("tracker has already started")
)
