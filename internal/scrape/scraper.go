// Package scrape implements the API-backed dataset path: a sequential walk of
// the taxonomy issuing one Nearby Search per subcategory against the Places
// API, paced by a rate limiter, with pagination and place-ID deduplication.
package scrape

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/bizgen/internal/model"
	"github.com/sells-group/bizgen/internal/resilience"
	"github.com/sells-group/bizgen/internal/synth"
	"github.com/sells-group/bizgen/internal/taxonomy"
	"github.com/sells-group/bizgen/pkg/places"
)

// Config specifies one scrape run.
type Config struct {
	Taxonomy taxonomy.Taxonomy

	// Location is the search center as "lat,lng".
	Location string
	// Radius is the search radius in meters.
	Radius int

	// RequestDelay paces consecutive API calls. Default: 1s.
	RequestDelay time.Duration
	// PaginationDelay is the wait before a next_page_token becomes valid.
	// Default: 2s.
	PaginationDelay time.Duration
	// MaxPages bounds pagination per subcategory. Default: 3 (the API's own
	// page cap for Nearby Search).
	MaxPages int
	// Retries is the number of attempts per API call. Default: 3.
	Retries int

	// FetchDetails controls whether a Place Details call fills phone,
	// address, and website for each result.
	FetchDetails bool
}

func (cfg Config) withDefaults() Config {
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = time.Second
	}
	if cfg.PaginationDelay <= 0 {
		cfg.PaginationDelay = 2 * time.Second
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 3
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	return cfg
}

// Scraper collects business records from the Places API.
type Scraper struct {
	client  places.Client
	cfg     Config
	limiter *rate.Limiter
}

// New creates a scraper. The limiter enforces the configured inter-request
// delay across searches, pagination, and detail lookups alike.
func New(client places.Client, cfg Config) *Scraper {
	cfg = cfg.withDefaults()
	return &Scraper{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cfg.RequestDelay), 1),
	}
}

// Run walks the taxonomy sequentially and returns the collected batch. A
// subcategory whose fetch fails after retries is skipped and logged; the run
// continues. Only context cancellation aborts the whole run.
func (s *Scraper) Run(ctx context.Context) ([]model.Business, error) {
	if err := s.cfg.Taxonomy.Validate(); err != nil {
		return nil, eris.Wrap(err, "scrape: invalid config")
	}

	var businesses []model.Business
	for _, entry := range s.cfg.Taxonomy {
		// Dedup by place ID within a category: subcategory searches overlap.
		seen := make(map[string]bool)

		for _, sub := range entry.Subcategories {
			results, err := s.fetchSubcategory(ctx, sub)
			if err != nil {
				if ctx.Err() != nil {
					return nil, eris.Wrap(err, "scrape: run cancelled")
				}
				zap.L().Warn("skipping subcategory after failed fetch",
					zap.String("category", string(entry.Category)),
					zap.String("subcategory", sub),
					zap.Error(err),
				)
				continue
			}

			for _, place := range results {
				if place.PlaceID == "" || seen[place.PlaceID] {
					continue
				}
				seen[place.PlaceID] = true

				b, err := s.convert(ctx, place, entry.Category, sub)
				if err != nil {
					zap.L().Warn("skipping place after failed detail lookup",
						zap.String("place_id", place.PlaceID),
						zap.Error(err),
					)
					continue
				}
				businesses = append(businesses, b)
			}

			zap.L().Info("subcategory scraped",
				zap.String("category", string(entry.Category)),
				zap.String("subcategory", sub),
				zap.Int("total", len(businesses)),
			)
		}
	}

	return businesses, nil
}

// fetchSubcategory issues the Nearby Search for one subcategory and follows
// pagination up to the configured page cap.
func (s *Scraper) fetchSubcategory(ctx context.Context, sub string) ([]places.Place, error) {
	retryCfg := resilience.RetryConfig{
		MaxAttempts: s.cfg.Retries,
		Delay:       s.cfg.RequestDelay,
		OnRetry:     resilience.RetryLogger("nearby search"),
	}

	var all []places.Place
	pageToken := ""
	for page := 0; page < s.cfg.MaxPages; page++ {
		if pageToken != "" {
			// The API rejects a next_page_token used too soon.
			timer := time.NewTimer(s.cfg.PaginationDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req := places.NearbySearchRequest{
			Location:  s.cfg.Location,
			Radius:    s.cfg.Radius,
			PlaceType: sub,
			PageToken: pageToken,
		}
		resp, err := resilience.DoVal(ctx, retryCfg, func(ctx context.Context) (*places.NearbySearchResponse, error) {
			return s.client.NearbySearch(ctx, req)
		})
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Results...)
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return all, nil
}

// convert maps a raw place to a Business. When details are enabled, a Place
// Details call fills phone, address, and website; email and website fall back
// to name-derived values so the record keeps full field coverage.
func (s *Scraper) convert(ctx context.Context, place places.Place, category taxonomy.Category, sub string) (model.Business, error) {
	b := model.Business{
		Name:        place.Name,
		Category:    string(category),
		Subcategory: sub,
		Address:     place.Vicinity,
		Rating:      place.Rating,
	}

	if s.cfg.FetchDetails {
		if err := s.limiter.Wait(ctx); err != nil {
			return model.Business{}, err
		}
		details, err := resilience.DoVal(ctx, resilience.RetryConfig{
			MaxAttempts: s.cfg.Retries,
			Delay:       s.cfg.RequestDelay,
			OnRetry:     resilience.RetryLogger("place details"),
		}, func(ctx context.Context) (*places.PlaceDetails, error) {
			return s.client.Details(ctx, place.PlaceID)
		})
		if err != nil {
			return model.Business{}, err
		}

		b.Phone = details.FormattedPhoneNumber
		b.Website = details.Website
		if details.FormattedAddress != "" {
			b.Address = details.FormattedAddress
		}
		if details.Rating > 0 {
			b.Rating = details.Rating
		}
	}

	if b.Website == "" {
		b.Website = synth.Website(b.Name)
	}
	b.Email = synth.Email(b.Name)

	return b, nil
}
