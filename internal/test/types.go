package test

// ClassifyRequest represents a classification request
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse represents a classification response
type ClassifyResponse struct {
	Success    bool    `json:"success"`
	Text       string  `json:"text"`
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Route      string  `json:"route,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
