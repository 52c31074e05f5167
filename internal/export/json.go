package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/bizgen/internal/model"
)

// Metadata describes one exported dataset.
type Metadata struct {
	GeneratedAt    time.Time      `json:"generated_at"`
	TotalCount     int            `json:"total_count"`
	CategoryCounts map[string]int `json:"category_counts"`
	DataSource     string         `json:"data_source"`
	Location       string         `json:"location"`
}

// Document is the top-level JSON export shape.
type Document struct {
	Metadata   Metadata         `json:"metadata"`
	Businesses []model.Business `json:"businesses"`
}

// WriteJSON writes the batch with a metadata block to path.
func WriteJSON(businesses []model.Business, stats model.BatchStats, source, path string) error {
	doc := Document{
		Metadata: Metadata{
			GeneratedAt:    time.Now().UTC(),
			TotalCount:     stats.Total,
			CategoryCounts: stats.ByCategory,
			DataSource:     source,
			Location:       "Seattle, WA",
		},
		Businesses: businesses,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal json")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}

// ReadJSON parses a file previously written by WriteJSON.
func ReadJSON(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "export: read %s", path)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "export: unmarshal json")
	}
	return &doc, nil
}
