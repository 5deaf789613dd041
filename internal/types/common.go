package types

import (
	"time"
)

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageResponse confirms a mutation that returns no record (hard deletes).
type MessageResponse struct {
	Message string `json:"message"`
}
