package model

// MessageResponse is the standard body for informational and error
// responses. The key is always "message".
type MessageResponse struct {
	Message string `json:"message"`
}

// ServiceStatus reports the state of one backing service
type ServiceStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
}
