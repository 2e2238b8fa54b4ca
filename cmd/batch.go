package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sahyadri-labs/fra-atlas/internal/engine"
)

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze up to 10 locations from a JSON file",
	Long:  `Reads a JSON array of {"latitude", "longitude", "radius_km"} objects and analyzes each location. Individual failures are reported per location without aborting the batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		points, err := readBatchPoints(batchFile)
		if err != nil {
			return err
		}

		env, err := initEngine(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		result, err := env.Engine.AnalyzeBatch(ctx, points, cfg.Batch.MaxConcurrent)
		if err != nil {
			return err
		}

		zap.L().Info("batch complete",
			zap.Int("total", result.Total),
			zap.Int("successful", result.Successful),
			zap.Int("failed", result.Failed),
		)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "path to JSON file of locations (required)")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}

func readBatchPoints(path string) ([]engine.BatchPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read batch file %s", path)
	}
	var points []engine.BatchPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, eris.Wrapf(err, "parse batch file %s", path)
	}
	return points, nil
}
