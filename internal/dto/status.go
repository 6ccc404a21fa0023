package dto

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// PingResponse is the body of GET /api/ping
type PingResponse struct {
	Message string `json:"message"`
}

// RootResponse is the body of GET /
type RootResponse struct {
	Service   string   `json:"service"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

// ComponentStatus reports one dependency inside a LivenessResponse
type ComponentStatus struct {
	Status string `json:"status"`
}

// LivenessResponse is the body of GET /actuator/health
type LivenessResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
}
