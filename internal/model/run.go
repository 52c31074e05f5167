package model

import "time"

// RunKind distinguishes how a batch was produced.
type RunKind string

const (
	RunKindGenerate RunKind = "generate"
	RunKindScrape   RunKind = "scrape"
	RunKindLLM      RunKind = "llm"
)

// RunStatus represents the current state of a dataset run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run records one dataset production run for the history store.
type Run struct {
	ID         string      `json:"id"`
	Kind       RunKind     `json:"kind"`
	Status     RunStatus   `json:"status"`
	Seed       uint64      `json:"seed,omitempty"`
	Stats      *BatchStats `json:"stats,omitempty"`
	OutputCSV  string      `json:"output_csv,omitempty"`
	OutputJSON string      `json:"output_json,omitempty"`
	Error      string      `json:"error,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
