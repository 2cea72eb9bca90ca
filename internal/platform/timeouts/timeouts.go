// Package timeouts defines shared timeout constants used across the service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// AuthRequest caps a single call from the web layer into the auth backend.
const AuthRequest = 3 * time.Second

// SessionJanitorInterval is the default cadence for purging expired sessions.
const SessionJanitorInterval = 10 * time.Minute
