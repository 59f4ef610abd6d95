package types

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a successful write.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse reports liveness and readiness.
type StatusResponse struct {
	Status string `json:"status"`
}
