package constants

// Context keys
const (
	ContextKeyRequestID = "request_id"
)

// Headers
const (
	HeaderRequestID = "X-Request-ID"
)

// Status values reported by the status endpoints
const (
	StatusUp      = "UP"
	StatusDown    = "DOWN"
	StatusRunning = "running"
	PingMessage   = "pong"
)

// ComponentDB is the liveness component name for the database
const ComponentDB = "db"
