package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dalemusser/balesite/internal/app/system/seo"
)

func newPathsCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List every routable page path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch kind {
			case "", seo.KindStatic, seo.KindState, seo.KindCity:
			default:
				return fmt.Errorf("unknown kind %q (want static, state or city)", kind)
			}
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range seo.Paths(cat.ServiceAreas()) {
				if kind != "" && e.Kind != kind {
					continue
				}
				fmt.Fprintf(out, "%-7s %s\n", e.Kind, e.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only list static, state or city pages")
	return cmd
}
