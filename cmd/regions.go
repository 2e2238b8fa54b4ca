package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the configured region table",
	RunE: func(cmd *cobra.Command, args []string) error {
		regions, err := initRegions()
		if err != nil {
			return err
		}

		for _, b := range regions.Boxes() {
			fmt.Printf("%-16s lat %.1f..%.1f  lon %.1f..%.1f", b.Key, b.MinLat, b.MaxLat, b.MinLon, b.MaxLon)
			var traits []string
			if b.Profile.ForestHigh {
				traits = append(traits, "forest_high")
			}
			if b.Profile.ForestMedium {
				traits = append(traits, "forest_medium")
			}
			if b.Profile.Tribal {
				traits = append(traits, "tribal")
			}
			if b.Profile.Coastal {
				traits = append(traits, "coastal")
			}
			if b.Profile.Agriculture {
				traits = append(traits, "agriculture")
			}
			if b.Profile.Mining {
				traits = append(traits, "mining")
			}
			if b.Profile.MineralRich {
				traits = append(traits, "mineral_rich")
			}
			if len(traits) > 0 {
				fmt.Printf("  [%s]", strings.Join(traits, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
