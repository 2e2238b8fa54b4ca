package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

var (
	analyzeLat    float64
	analyzeLon    float64
	analyzeRadius float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a suitability analysis for a single location",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEngine(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		radius := analyzeRadius
		if radius == 0 {
			radius = cfg.Engine.DefaultRadiusKM
		}

		result, err := env.Engine.Analyze(ctx, analyzeLat, analyzeLon, radius)
		if err != nil {
			return err
		}

		if result.Status == model.StatusSuccess {
			zap.L().Info("analysis complete",
				zap.String("region", result.Assessment.Region.Name),
				zap.Float64("total_score", result.Assessment.TotalScore),
				zap.String("tier", string(result.Assessment.Tier)),
			)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	analyzeCmd.Flags().Float64Var(&analyzeLat, "lat", 0, "latitude in decimal degrees (required)")
	analyzeCmd.Flags().Float64Var(&analyzeLon, "lon", 0, "longitude in decimal degrees (required)")
	analyzeCmd.Flags().Float64Var(&analyzeRadius, "radius", 0, "analysis radius in km (default from config)")
	_ = analyzeCmd.MarkFlagRequired("lat")
	_ = analyzeCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(analyzeCmd)
}
