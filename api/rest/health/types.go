package health

// Response represents the health check response
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

// RootResponse is returned by the service root
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
