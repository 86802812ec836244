package model

import "github.com/google/uuid"

// Scope carries per-request identity through the pipeline.
type Scope struct {
	RunID string
}

// NewScope creates a Scope with a fresh run ID.
func NewScope() Scope {
	return Scope{RunID: uuid.NewString()}
}
