package model

import "time"

// RunStatus is the lifecycle state of a screening run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is a persisted screening run.
type Run struct {
	ID        string    `json:"id"`
	Property  string    `json:"property"`
	PDFDir    string    `json:"pdf_dir"`
	Status    RunStatus `json:"status"`
	Result    Record    `json:"result,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
