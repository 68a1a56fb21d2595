package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate catalog invariants (the same check the server runs at startup)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			if err := cat.Check(); err != nil {
				a.log.Error("catalog check failed", zap.Error(err))
				return err
			}
			c := cat.Counts()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d states, %d cities, %d priced states\n", c.States, c.Cities, c.Pricing)
			return nil
		},
	}
}
