package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/bizgen/internal/model"
	"github.com/sells-group/bizgen/internal/store"
)

var (
	runsKind   string
	runsStatus string
	runsLimit  int
)

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "List recorded dataset runs, or show one by ID",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		if st == nil {
			return eris.New("run history is disabled (BIZGEN_STORE_PATH is empty)")
		}
		defer st.Close()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if len(args) == 1 {
			run, err := st.GetRun(ctx, args[0])
			if err != nil {
				return eris.Wrap(err, "get run")
			}
			return enc.Encode(run)
		}

		runs, err := st.ListRuns(ctx, store.RunFilter{
			Kind:   model.RunKind(runsKind),
			Status: model.RunStatus(runsStatus),
			Limit:  runsLimit,
		})
		if err != nil {
			return eris.Wrap(err, "list runs")
		}
		return enc.Encode(runs)
	},
}

func init() {
	runsCmd.Flags().StringVar(&runsKind, "kind", "", "filter by kind (generate, scrape, llm)")
	runsCmd.Flags().StringVar(&runsStatus, "status", "", "filter by status (running, complete, failed)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to list")
	rootCmd.AddCommand(runsCmd)
}
