// Package cli implements amplyctl, which runs the intake validators outside
// the HTTP service.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"amply/internal/intake/engine"
	"amply/internal/intake/validation"
	"amply/internal/platform/config"
)

// NewRootCmd builds the amplyctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "amplyctl",
		Short:         "Validate entity intake records from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("reference", "", "YAML reference data file (countries, risk_levels, allowed_domains, min_year)")
	root.PersistentFlags().Int("min-year", 0, "Override the earliest accepted year of birth")

	root.AddCommand(NewValidateCmd())
	root.AddCommand(NewCheckURLCmd())
	return root
}

// loadEngine builds the validation engine from the persistent flags.
func loadEngine(cmd *cobra.Command) (*engine.Engine, error) {
	ref := config.DefaultReference()
	if path, _ := cmd.Flags().GetString("reference"); path != "" {
		loaded, err := config.LoadReference(path)
		if err != nil {
			return nil, err
		}
		ref = loaded
	}
	if minYear, _ := cmd.Flags().GetInt("min-year"); minYear > 0 {
		ref.MinYear = minYear
	}
	return engine.New(validation.New(ref.Rules())), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
