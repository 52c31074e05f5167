// Package llmgen implements the model-backed dataset path: one prompt per
// taxonomy category asking for a JSON array of business records, paced by a
// rate limiter, with per-category skip-and-log on API or parse failure.
package llmgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/bizgen/internal/model"
	"github.com/sells-group/bizgen/internal/resilience"
	"github.com/sells-group/bizgen/internal/synth"
	"github.com/sells-group/bizgen/internal/taxonomy"
	"github.com/sells-group/bizgen/pkg/anthropic"
)

// DefaultModel is the model used when the config names none.
const DefaultModel = "claude-sonnet-4-5-20250929"

// Config specifies one model-backed generation run.
type Config struct {
	Taxonomy taxonomy.Taxonomy

	// Count is the number of businesses requested per category. Default: 15.
	Count int
	// Model is the Anthropic model ID. Default: DefaultModel.
	Model string
	// MaxTokens bounds the response size per category. Default: 2000.
	MaxTokens int64
	// Temperature controls sampling variety. Default: 0.8.
	Temperature float64
	// RequestDelay paces consecutive API calls. Default: 2s.
	RequestDelay time.Duration
	// Retries is the number of attempts per API call. Default: 3.
	Retries int
}

func (cfg Config) withDefaults() Config {
	if cfg.Count <= 0 {
		cfg.Count = 15
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.8
	}
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = 2 * time.Second
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	return cfg
}

// Generator collects business records by prompting an Anthropic model.
type Generator struct {
	client  anthropic.Client
	cfg     Config
	limiter *rate.Limiter
}

// New creates a generator. The limiter enforces the configured inter-request
// delay between category prompts.
func New(client anthropic.Client, cfg Config) *Generator {
	cfg = cfg.withDefaults()
	return &Generator{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cfg.RequestDelay), 1),
	}
}

// systemPrompt frames every category request.
const systemPrompt = "You are a data assistant that produces realistic business directory records as JSON. Respond with a JSON array only, no prose."

// Run prompts the model once per taxonomy category and returns the collected
// batch. A category whose request fails after retries, or whose response does
// not parse, is skipped and logged; the run continues. Only context
// cancellation aborts the whole run.
func (g *Generator) Run(ctx context.Context) ([]model.Business, error) {
	if err := g.cfg.Taxonomy.Validate(); err != nil {
		return nil, eris.Wrap(err, "llmgen: invalid config")
	}

	var businesses []model.Business
	seen := make(map[string]bool)
	for _, entry := range g.cfg.Taxonomy {
		records, err := g.fetchCategory(ctx, entry)
		if err != nil {
			if ctx.Err() != nil {
				return nil, eris.Wrap(err, "llmgen: run cancelled")
			}
			zap.L().Warn("skipping category after failed generation",
				zap.String("category", string(entry.Category)),
				zap.Error(err),
			)
			continue
		}

		kept := 0
		for _, rec := range records {
			b, ok := normalize(rec, entry, seen)
			if !ok {
				continue
			}
			businesses = append(businesses, b)
			kept++
		}

		zap.L().Info("category generated",
			zap.String("category", string(entry.Category)),
			zap.Int("returned", len(records)),
			zap.Int("kept", kept),
			zap.Int("total", len(businesses)),
		)
	}

	return businesses, nil
}

// record is the shape each array element of a model response is expected to
// take. Unknown fields are ignored; missing ones are normalized afterwards.
type record struct {
	Name        string  `json:"name"`
	Subcategory string  `json:"subcategory"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	Website     string  `json:"website"`
}

// fetchCategory sends the prompt for one category and parses the response
// into raw records.
func (g *Generator) fetchCategory(ctx context.Context, entry taxonomy.Entry) ([]record, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req := anthropic.MessageRequest{
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		System:      systemPrompt,
		Temperature: &g.cfg.Temperature,
		Messages: []anthropic.Message{
			{Role: "user", Content: buildPrompt(entry, g.cfg.Count)},
		},
	}

	resp, err := resilience.DoVal(ctx, resilience.RetryConfig{
		MaxAttempts: g.cfg.Retries,
		Delay:       g.cfg.RequestDelay,
		OnRetry:     resilience.RetryLogger("create message"),
	}, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return g.client.CreateMessage(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	return parseRecords(resp.Text())
}

// buildPrompt renders the per-category request: the field list, the expected
// JSON shape, and the subcategories the model must choose from.
func buildPrompt(entry taxonomy.Entry, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d realistic businesses in Seattle for the category %q.\n\n", count, string(entry.Category))
	b.WriteString("For each business, provide:\n")
	fmt.Fprintf(&b, "- name: creative, realistic business name\n")
	fmt.Fprintf(&b, "- subcategory: one of [%s]\n", strings.Join(entry.Subcategories, ", "))
	b.WriteString("- email: realistic email address\n")
	b.WriteString("- phone: Seattle area phone number (206 area code)\n")
	b.WriteString("- address: real Seattle street address ending in \", Seattle WA <zip>\"\n")
	b.WriteString("- rating: rating between 3.5 and 5.0\n")
	b.WriteString("- website: realistic website URL\n\n")
	b.WriteString("Format as a JSON array with this structure:\n")
	b.WriteString(`[
  {
    "name": "Business Name",
    "subcategory": "subcategory",
    "email": "email@business.com",
    "phone": "(206) 555-0123",
    "address": "123 Main St, Seattle WA 98101",
    "rating": 4.2,
    "website": "https://www.business.com"
  }
]
`)
	b.WriteString("\nMake the businesses diverse and realistic for the Seattle area.")
	return b.String()
}

// parseRecords extracts the JSON array from a response. Models sometimes wrap
// the array in a code fence or a sentence of prose, so parsing slices from the
// first '[' to the last ']'.
func parseRecords(text string) ([]record, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, eris.New("llmgen: response contains no JSON array")
	}

	var records []record
	if err := json.Unmarshal([]byte(text[start:end+1]), &records); err != nil {
		return nil, eris.Wrap(err, "llmgen: parse response")
	}
	return records, nil
}

// normalize maps a raw record to a Business, repairing what the model got
// wrong: an out-of-taxonomy subcategory falls back to the category's first
// one, missing email and website derive from the name, and the rating is
// clamped into the dataset's band. Records with no name, or a name already
// used in this run, are dropped.
func normalize(rec record, entry taxonomy.Entry, seen map[string]bool) (model.Business, bool) {
	name := strings.TrimSpace(rec.Name)
	if name == "" || seen[name] {
		return model.Business{}, false
	}
	seen[name] = true

	sub := strings.TrimSpace(rec.Subcategory)
	valid := false
	for _, s := range entry.Subcategories {
		if s == sub {
			valid = true
			break
		}
	}
	if !valid {
		sub = entry.Subcategories[0]
	}

	b := model.Business{
		Name:        name,
		Category:    string(entry.Category),
		Subcategory: sub,
		Email:       strings.TrimSpace(rec.Email),
		Phone:       strings.TrimSpace(rec.Phone),
		Address:     strings.TrimSpace(rec.Address),
		Rating:      synth.ClampRating(rec.Rating),
		Website:     strings.TrimSpace(rec.Website),
	}
	if b.Email == "" {
		b.Email = synth.Email(name)
	}
	if b.Website == "" {
		b.Website = synth.Website(name)
	}

	return b, true
}
