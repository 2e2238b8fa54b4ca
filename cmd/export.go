package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
	"github.com/sahyadri-labs/fra-atlas/internal/render"
)

var (
	exportLat    float64
	exportLon    float64
	exportRadius float64
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Analyze a location and export GeoJSON, HTML, and shapefile artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEngine(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		radius := exportRadius
		if radius == 0 {
			radius = cfg.Engine.DefaultRadiusKM
		}

		result, err := env.Engine.Analyze(ctx, exportLat, exportLon, radius)
		if err != nil {
			return err
		}
		if result.Status != model.StatusSuccess {
			return fmt.Errorf("analysis failed: %s", result.Message)
		}

		// Export always writes the full artifact set, regardless of the
		// maps config used by the engine's own renderer.
		renderer, err := render.New(exportDir, true)
		if err != nil {
			return err
		}
		artifacts := renderer.Render(result)

		for name, path := range artifacts {
			zap.L().Info("artifact written", zap.String("artifact", name), zap.String("path", path))
			fmt.Printf("%s\t%s\n", name, path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().Float64Var(&exportLat, "lat", 0, "latitude in decimal degrees (required)")
	exportCmd.Flags().Float64Var(&exportLon, "lon", 0, "longitude in decimal degrees (required)")
	exportCmd.Flags().Float64Var(&exportRadius, "radius", 0, "analysis radius in km (default from config)")
	exportCmd.Flags().StringVar(&exportDir, "out", "maps", "output directory for artifacts")
	_ = exportCmd.MarkFlagRequired("lat")
	_ = exportCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(exportCmd)
}
