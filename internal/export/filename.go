package export

import (
	"fmt"
	"path/filepath"
	"time"
)

// Filename builds the default timestamped output path for a run, e.g.
// "seattle_businesses_offline_20260829_153000.csv".
func Filename(dir, kind, ext string, now time.Time) string {
	name := fmt.Sprintf("seattle_businesses_%s_%s.%s", kind, now.Format("20060102_150405"), ext)
	return filepath.Join(dir, name)
}
