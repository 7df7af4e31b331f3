package http

// SendEmailRequest is the body of POST /api/send-email.
// It uses `json` tags for unmarshalling and `binding` for validation with Gin.
type SendEmailRequest struct {
	Contact string `json:"contact" binding:"required"`
}

// MessageResponse is the body of a successful response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse defines a standard structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TestResponse is the body of GET /api/test. Env reports presence only, never values.
type TestResponse struct {
	Message   string          `json:"message"`
	Timestamp string          `json:"timestamp"`
	Env       map[string]bool `json:"env"`
}
