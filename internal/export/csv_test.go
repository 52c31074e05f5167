package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/bizgen/internal/model"
)

func sampleBatch() []model.Business {
	return []model.Business{
		{
			Name:        "Pike Place Chowder",
			Category:    "Food",
			Subcategory: "restaurant",
			Email:       "info@pikeplacechowder.com",
			Phone:       "(206) 267-2537",
			Address:     "1530 Post Alley, Seattle WA 98101",
			Rating:      4.8,
			Website:     "https://www.pikeplacechowder.com",
		},
		{
			Name:        "Cut & Color, Ltd",
			Category:    "Salon",
			Subcategory: "hair_care",
			Email:       "info@cutandcolorltd.com",
			Phone:       "(425) 555-0199",
			Address:     "700 Broadway Suite 12, Seattle WA 98122",
			Rating:      4.0,
			Website:     "https://www.cutandcolorltd.com",
		},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	batch := sampleBatch()

	require.NoError(t, WriteCSV(batch, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := ReadCSV(f)
	require.NoError(t, err)
	assert.Equal(t, batch, got)
}

func TestCSVHeaderAndQuoting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(sampleBatch(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "name,category,subcategory,email,phone,address,rating,website", lines[0])
	// The embedded comma forces quoting.
	assert.Contains(t, lines[2], `"Cut & Color, Ltd"`)
	// Rating keeps one decimal digit even when it is whole-valued.
	assert.Contains(t, lines[2], ",4.0,")
}

func TestReadCSVRejectsWrongColumnCount(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("name,category\nPike,Food\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestReadCSVRejectsBadRating(t *testing.T) {
	in := "name,category,subcategory,email,phone,address,rating,website\n" +
		"A,Food,cafe,a@a.com,(206) 555-0100,1 Pine St,not-a-number,https://www.a.com\n"
	_, err := ReadCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating")
}

func TestWriteCSVEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSV(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,category,subcategory,email,phone,address,rating,website\n", string(data))
}
