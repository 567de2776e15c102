package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SubmissionResponse is returned by the form routes once dispatch finished.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status string `json:"status"`
}
