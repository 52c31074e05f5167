package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/bizgen/internal/export"
	"github.com/sells-group/bizgen/internal/model"
	"github.com/sells-group/bizgen/internal/store"
)

// writeExports writes the batch in each configured format and returns the
// paths written. An export failure is fatal: the run aborts with a non-zero
// exit rather than leaving a half-written dataset.
func writeExports(businesses []model.Business, stats model.BatchStats, kind, source string) (csvPath, jsonPath string, err error) {
	now := time.Now()
	for _, format := range cfg.Export.Formats {
		switch format {
		case "csv":
			csvPath = export.Filename(cfg.Export.Dir, kind, "csv", now)
			if err := export.WriteCSV(businesses, csvPath); err != nil {
				return "", "", err
			}
			zap.L().Info("csv written", zap.String("path", csvPath))
		case "json":
			jsonPath = export.Filename(cfg.Export.Dir, kind, "json", now)
			if err := export.WriteJSON(businesses, stats, source, jsonPath); err != nil {
				return "", "", err
			}
			zap.L().Info("json written", zap.String("path", jsonPath))
		default:
			return "", "", eris.Errorf("unknown export format %q", format)
		}
	}
	return csvPath, jsonPath, nil
}

// initStore opens the run-history store, or returns nil when disabled.
func initStore(ctx context.Context) (store.Store, error) {
	if cfg.Store.Path == "" {
		return nil, nil
	}
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// logStats emits the run summary.
func logStats(stats model.BatchStats) {
	fields := []zap.Field{
		zap.Int("total", stats.Total),
		zap.Int("with_email", stats.WithEmail),
		zap.Int("with_phone", stats.WithPhone),
		zap.Int("with_website", stats.WithWebsite),
		zap.Float64("average_rating", stats.AverageRating),
	}
	for category, count := range stats.ByCategory {
		fields = append(fields, zap.Int("category_"+category, count))
	}
	zap.L().Info("batch statistics", fields...)
}
