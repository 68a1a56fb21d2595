package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dalemusser/balesite/internal/app/system/resolver"
	"github.com/dalemusser/balesite/internal/app/system/seo"
	"github.com/dalemusser/balesite/internal/app/system/slug"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <path>",
		Short:   "Show what a URL path renders",
		Example: "  balectl resolve /california/los-angeles",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog()
			if err != nil {
				return err
			}
			return resolvePath(cmd.OutOrStdout(), resolver.New(cat), args[0])
		},
	}
}

func resolvePath(w io.Writer, res *resolver.Resolver, path string) error {
	clean := "/" + strings.Trim(path, "/")
	for _, p := range seo.StaticPages {
		if p.Path == clean {
			fmt.Fprintf(w, "static  %s  %s\n", clean, seo.Title(p.Subject))
			return nil
		}
	}

	segs := strings.Split(strings.Trim(path, "/"), "/")
	var err error
	switch len(segs) {
	case 1:
		var st resolver.StateRecord
		if st, err = res.ResolveState(slug.Make(segs[0])); err == nil {
			fmt.Fprintf(w, "state   /%s  %s\n", st.Slug, st.Name())
			printState(w, st)
			return nil
		}
	case 2:
		var c resolver.CityRecord
		if c, err = res.ResolveCity(slug.Make(segs[0]), slug.Make(segs[1])); err == nil {
			fmt.Fprintf(w, "city    /%s/%s  %s, %s\n", c.State.Slug, c.Slug, c.City, c.State.Name())
			printState(w, c.State)
			return nil
		}
	default:
		err = resolver.ErrNotFound
	}
	if errors.Is(err, resolver.ErrNotFound) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return err
}

func printState(w io.Writer, st resolver.StateRecord) {
	if st.Pricing != nil {
		fmt.Fprintf(w, "  pricing:    $%d-$%d/ton\n", st.Pricing.PriceRange.Min, st.Pricing.PriceRange.Max)
	} else {
		fmt.Fprintln(w, "  pricing:    none published")
	}
	fmt.Fprintf(w, "  compliance: %d requirement(s)\n", len(st.Compliance))
}
