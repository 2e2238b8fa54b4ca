package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
	"github.com/sahyadri-labs/fra-atlas/internal/store"
)

var (
	analysesRegion string
	analysesTier   string
	analysesLimit  int
	analysesJSON   bool
)

var analysesCmd = &cobra.Command{
	Use:   "analyses [id]",
	Short: "List stored analyses, or show one by ID",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		if st == nil {
			return eris.New("persistence disabled (store.driver=none)")
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		if len(args) == 1 {
			rec, err := st.GetAnalysis(ctx, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		}

		records, err := st.ListAnalyses(ctx, store.AnalysisFilter{
			Region: analysesRegion,
			Tier:   model.Tier(analysesTier),
			Limit:  analysesLimit,
		})
		if err != nil {
			return err
		}

		if analysesJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		for _, r := range records {
			fmt.Printf("%s  %9.4f,%9.4f  r=%.1fkm  %-16s %6.1f  %-10s %s\n",
				r.ID, r.Latitude, r.Longitude, r.RadiusKM, r.Region, r.TotalScore, r.Tier,
				r.CreatedAt.Format("2006-01-02 15:04"))
		}
		if len(records) == 0 {
			fmt.Println("no analyses stored")
		}
		return nil
	},
}

func init() {
	analysesCmd.Flags().StringVar(&analysesRegion, "region", "", "filter by region name")
	analysesCmd.Flags().StringVar(&analysesTier, "tier", "", "filter by suitability tier")
	analysesCmd.Flags().IntVar(&analysesLimit, "limit", 50, "max rows to list")
	analysesCmd.Flags().BoolVar(&analysesJSON, "json", false, "output JSON instead of a table")
	rootCmd.AddCommand(analysesCmd)
}
