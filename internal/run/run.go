// Package run tracks the lifecycle of one generation invocation.
package run

import (
	"time"

	"github.com/google/uuid"
)

// Status labels one stage of the generation pipeline.
type Status string

const (
	StatusPending        Status = "pending"
	StatusBuildingPrompt Status = "building_prompt"
	StatusCallingModel   Status = "calling_model"
	StatusParsing        Status = "parsing"
	StatusWritingFiles   Status = "writing_files"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
)

// Run records one trip through the pipeline, from prompt to files on
// disk. The zero value is not usable; construct with New.
type Run struct {
	ID          string    `json:"run_id"`
	ProjectType string    `json:"project_type"`
	Difficulty  string    `json:"difficulty"`
	Status      Status    `json:"status"`
	Message     string    `json:"message"`
	ProjectName string    `json:"project_name,omitempty"`
	ProjectDir  string    `json:"project_dir,omitempty"`
	Files       []string  `json:"files,omitempty"`
	Error       string    `json:"error,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New creates a pending run with a fresh id.
func New(projectType, difficulty string) *Run {
	now := time.Now()
	return &Run{
		ID:          uuid.New().String(),
		ProjectType: projectType,
		Difficulty:  difficulty,
		Status:      StatusPending,
		Message:     "run created",
		StartedAt:   now,
		UpdatedAt:   now,
	}
}

// Update moves the run to the given stage.
func (r *Run) Update(status Status, message string) {
	r.Status = status
	r.Message = message
	r.UpdatedAt = time.Now()
}

// Fail marks the run failed and records the causing error.
func (r *Run) Fail(err error) {
	r.Status = StatusFailed
	r.Message = "run failed"
	r.Error = err.Error()
	r.UpdatedAt = time.Now()
}

// Complete marks the run finished and records what was written.
func (r *Run) Complete(name, dir string, files []string) {
	r.Status = StatusCompleted
	r.Message = "project generated"
	r.ProjectName = name
	r.ProjectDir = dir
	r.Files = files
	r.UpdatedAt = time.Now()
}

// IsTerminal reports whether the run reached a final state.
func (r *Run) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed
}
