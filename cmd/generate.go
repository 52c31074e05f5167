package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/bizgen/internal/generate"
	"github.com/sells-group/bizgen/internal/model"
	"github.com/sells-group/bizgen/internal/taxonomy"
)

var (
	generateSeed  uint64
	generateQuota int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the offline synthetic dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		seed := generateSeed
		if seed == 0 {
			seed = cfg.Generate.Seed
		}
		seed = generate.ResolveSeed(seed)
		quota := generateQuota
		if quota == 0 {
			quota = cfg.Generate.Quota
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		if st != nil {
			defer st.Close()
		}

		var run *model.Run
		if st != nil {
			run, err = st.CreateRun(ctx, model.RunKindGenerate, seed)
			if err != nil {
				return eris.Wrap(err, "record run")
			}
		}

		result, err := generate.Run(generate.Config{
			Taxonomy: taxonomy.Default(quota),
			Seed:     seed,
		})
		if err != nil {
			if st != nil {
				if ferr := st.FailRun(ctx, run.ID, err); ferr != nil {
					zap.L().Warn("failed to record run failure", zap.Error(ferr))
				}
			}
			return eris.Wrap(err, "generate")
		}
		logStats(result.Stats)

		csvPath, jsonPath, err := writeExports(result.Businesses, result.Stats, "offline", "Offline Generated")
		if err != nil {
			if st != nil {
				if ferr := st.FailRun(ctx, run.ID, err); ferr != nil {
					zap.L().Warn("failed to record run failure", zap.Error(ferr))
				}
			}
			return eris.Wrap(err, "export")
		}

		if st != nil {
			if err := st.CompleteRun(ctx, run.ID, result.Stats, csvPath, jsonPath); err != nil {
				return eris.Wrap(err, "record run")
			}
		}

		return nil
	},
}

func init() {
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "RNG seed (0 = time-seeded, non-reproducible)")
	generateCmd.Flags().IntVar(&generateQuota, "quota", 0, "records per subcategory (default from config)")
	rootCmd.AddCommand(generateCmd)
}
