// Command balectl inspects the site's reference catalog offline: the pages
// it produces, how a path resolves, revenue estimates, and the invariant
// check run at server startup.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
)

// app carries what every subcommand needs. Commands read the catalog
// through openCatalog, which calls load, so tests can inject a fixture.
type app struct {
	catalogPath string
	verbose     bool
	log         *zap.Logger
	load        func(path string) (*catalog.Catalog, error)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(path)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "balectl",
		Short:         "Inspect the bale recycling site catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			cfg.OutputPaths = []string{"stderr"}
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog YAML file (default: the embedded catalog)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newPathsCmd(a),
		newResolveCmd(a),
		newEstimateCmd(a),
		newCheckCmd(a),
	)
	return root
}

func (a *app) openCatalog() (*catalog.Catalog, error) {
	cat, err := a.load(a.catalogPath)
	if err != nil {
		return nil, err
	}
	a.log.Debug("catalog loaded", zap.String("path", a.catalogPath), zap.Any("counts", cat.Counts()))
	return cat, nil
}

func main() {
	root := newRootCmd(&app{load: loadCatalog})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
