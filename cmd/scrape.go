package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/bizgen/internal/model"
	"github.com/sells-group/bizgen/internal/scrape"
	"github.com/sells-group/bizgen/internal/taxonomy"
	"github.com/sells-group/bizgen/pkg/places"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape businesses from the Google Places API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.Google.Key == "" {
			return eris.New("google places API key is required (BIZGEN_GOOGLE_KEY)")
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		if st != nil {
			defer st.Close()
		}

		var opts []places.Option
		if cfg.Google.BaseURL != "" {
			opts = append(opts, places.WithBaseURL(cfg.Google.BaseURL))
		}
		client := places.NewClient(cfg.Google.Key, opts...)

		scraper := scrape.New(client, scrape.Config{
			Taxonomy:        taxonomy.Default(0),
			Location:        cfg.Search.Location,
			Radius:          cfg.Search.Radius,
			RequestDelay:    secsToDuration(cfg.Search.RequestDelaySecs),
			PaginationDelay: secsToDuration(cfg.Search.PaginationDelaySecs),
			MaxPages:        cfg.Search.MaxPages,
			Retries:         cfg.Search.Retries,
			FetchDetails:    cfg.Search.FetchDetails,
		})

		var run *model.Run
		if st != nil {
			run, err = st.CreateRun(ctx, model.RunKindScrape, 0)
			if err != nil {
				return eris.Wrap(err, "record run")
			}
		}

		businesses, err := scraper.Run(ctx)
		if err != nil {
			if st != nil {
				if ferr := st.FailRun(ctx, run.ID, err); ferr != nil {
					zap.L().Warn("failed to record run failure", zap.Error(ferr))
				}
			}
			return eris.Wrap(err, "scrape")
		}

		stats := model.Summarize(businesses)
		logStats(stats)

		csvPath, jsonPath, err := writeExports(businesses, stats, "scraped", "Google Places API")
		if err != nil {
			if st != nil {
				if ferr := st.FailRun(ctx, run.ID, err); ferr != nil {
					zap.L().Warn("failed to record run failure", zap.Error(ferr))
				}
			}
			return eris.Wrap(err, "export")
		}

		if st != nil {
			if err := st.CompleteRun(ctx, run.ID, stats, csvPath, jsonPath); err != nil {
				return eris.Wrap(err, "record run")
			}
		}

		return nil
	},
}

func secsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
