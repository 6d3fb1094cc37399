package dto

// ErrorResponse is the body of every non-2xx response.
// Details is only set for validation failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
