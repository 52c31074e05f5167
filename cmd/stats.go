package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/bizgen/internal/export"
	"github.com/sells-group/bizgen/internal/model"
)

var statsCSVPath string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Recompute statistics for an exported CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := os.Open(statsCSVPath)
		if err != nil {
			return eris.Wrapf(err, "open %s", statsCSVPath)
		}
		defer f.Close()

		businesses, err := export.ReadCSV(f)
		if err != nil {
			return eris.Wrap(err, "read csv")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(model.Summarize(businesses))
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsCSVPath, "csv", "", "path to exported CSV (required)")
	_ = statsCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(statsCmd)
}
