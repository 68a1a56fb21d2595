package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dalemusser/balesite/internal/app/system/estimate"
	"github.com/dalemusser/balesite/internal/domain/models"
)

func newEstimateCmd(a *app) *cobra.Command {
	var (
		state    string
		disposal int
	)
	cmd := &cobra.Command{
		Use:   "estimate <bucket>",
		Short: "Estimate monthly revenue for a volume bucket, e.g. 10-25",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := models.ParseVolumeBucket(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "quote estimate:   %s per month\n", estimate.Revenue(bucket))

			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			var sp *models.StatePricing
			if state != "" {
				p, ok := cat.PricingByAbbreviation(strings.ToUpper(state))
				if !ok {
					return fmt.Errorf("no published pricing for %q", state)
				}
				sp = &p
			}
			c := estimate.Calculate(bucket, sp, cat.NationalAverage().PriceRange, disposal)
			where := "national average"
			if c.State != "" {
				where = c.State
			}
			fmt.Fprintf(out, "calculator (%s, $%d-$%d/ton):\n", where, c.Rate.Min, c.Rate.Max)
			fmt.Fprintf(out, "  revenue:          %s\n", c.Revenue)
			fmt.Fprintf(out, "  disposal savings: %s\n", estimate.Currency(c.DisposalSavings))
			fmt.Fprintf(out, "  total benefit:    %s\n", c.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "postal code of a state with published pricing, e.g. CA")
	cmd.Flags().IntVar(&disposal, "disposal", 0, "current monthly disposal cost in dollars")
	return cmd
}
