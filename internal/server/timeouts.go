package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Analysis calls can hold the connection for the full upstream timeout.
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
