package server

import "errors"

// ErrServerAlreadyRunning is returned by Start when the server was already
// started and has not been stopped.
var ErrServerAlreadyRunning = errors.New("server is already running")
