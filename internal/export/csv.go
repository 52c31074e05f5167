// Package export serializes batches to CSV and JSON. Files are written in one
// shot at the end of a run so an interrupted process never leaves a partial
// export behind.
package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/bizgen/internal/model"
)

// Columns is the fixed CSV column order.
var Columns = []string{"name", "category", "subcategory", "email", "phone", "address", "rating", "website"}

// WriteCSV writes the batch to path with a header row. The rating is
// formatted with one decimal digit.
func WriteCSV(businesses []model.Business, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, b := range businesses {
		row := []string{
			b.Name,
			b.Category,
			b.Subcategory,
			b.Email,
			b.Phone,
			b.Address,
			strconv.FormatFloat(b.Rating, 'f', 1, 64),
			b.Website,
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "export: flush csv")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}

// ReadCSV parses a file previously written by WriteCSV back into records.
func ReadCSV(r io.Reader) ([]model.Business, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "export: read csv header")
	}
	if len(header) != len(Columns) {
		return nil, eris.Errorf("export: expected %d columns, got %d", len(Columns), len(header))
	}

	var businesses []model.Business
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "export: read csv row")
		}

		rating, err := strconv.ParseFloat(row[6], 64)
		if err != nil {
			return nil, eris.Wrapf(err, "export: parse rating %q", row[6])
		}

		businesses = append(businesses, model.Business{
			Name:        row[0],
			Category:    row[1],
			Subcategory: row[2],
			Email:       row[3],
			Phone:       row[4],
			Address:     row[5],
			Rating:      rating,
			Website:     row[7],
		})
	}
	return businesses, nil
}
