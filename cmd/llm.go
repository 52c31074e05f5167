package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/bizgen/internal/llmgen"
	"github.com/sells-group/bizgen/internal/model"
	"github.com/sells-group/bizgen/internal/taxonomy"
	"github.com/sells-group/bizgen/pkg/anthropic"
)

var (
	llmCount    int
	llmCheckKey bool
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Generate businesses with an Anthropic model",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.Anthropic.Key == "" {
			return eris.New("anthropic API key is required (BIZGEN_ANTHROPIC_KEY)")
		}

		client := anthropic.NewClient(cfg.Anthropic.Key)

		if llmCheckKey {
			return checkKey(ctx, client)
		}

		count := llmCount
		if count == 0 {
			count = cfg.LLM.Count
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		if st != nil {
			defer st.Close()
		}

		gen := llmgen.New(client, llmgen.Config{
			Taxonomy:     taxonomy.Default(0),
			Count:        count,
			Model:        cfg.LLM.Model,
			MaxTokens:    cfg.LLM.MaxTokens,
			Temperature:  cfg.LLM.Temperature,
			RequestDelay: secsToDuration(cfg.LLM.RequestDelaySecs),
			Retries:      cfg.LLM.Retries,
		})

		var run *model.Run
		if st != nil {
			run, err = st.CreateRun(ctx, model.RunKindLLM, 0)
			if err != nil {
				return eris.Wrap(err, "record run")
			}
		}

		businesses, err := gen.Run(ctx)
		if err != nil {
			if st != nil {
				if ferr := st.FailRun(ctx, run.ID, err); ferr != nil {
					zap.L().Warn("failed to record run failure", zap.Error(ferr))
				}
			}
			return eris.Wrap(err, "llm generate")
		}

		stats := model.Summarize(businesses)
		logStats(stats)

		csvPath, jsonPath, err := writeExports(businesses, stats, "llm", "LLM Generated")
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

// checkKey sends one minimal message to verify the configured key is accepted
// before a full run spends real tokens on it.
func checkKey(ctx context.Context, client anthropic.Client) error {
	resp, err := client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     cfg.LLM.Model,
		MaxTokens: 16,
		Messages: []anthropic.Message{
			{Role: "user", Content: "Reply with the single word OK."},
		},
	})
	if err != nil {
		return eris.Wrap(err, "api key check failed")
	}

	zap.L().Info("api key is valid",
		zap.String("model", resp.Model),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
	)
	return nil
}

func init() {
	llmCmd.Flags().IntVar(&llmCount, "count", 0, "businesses per category (default from config)")
	llmCmd.Flags().BoolVar(&llmCheckKey, "check-key", false, "verify the API key with one minimal request and exit")
	rootCmd.AddCommand(llmCmd)
}
