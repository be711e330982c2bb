// Package cli implements hotelctl, the offline companion of the API.
package cli

import (
	"github.com/sjperalta/hotel-analytics-api/pkg/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the hotelctl command tree
func NewRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Hotel performance analytics from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.SetupWriter(cmd.ErrOrStderr(), "development", logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(NewReportCmd())
	root.AddCommand(NewTokenCmd())
	return root
}
