// Command glossary serves, renders, imports and publishes an HTML glossary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Every call returns fresh commands and
// flags, so nothing carries over between executions.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glossary",
		Short: "Render a glossary of terms as a single HTML page",
		Long: `glossary keeps terms, definitions and see-also references in a database
and renders them as one HTML page grouped by first letter.

Configuration is read from glossary.yaml (or --config) and GLOSSARY_*
environment variables.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default: ./glossary.yaml if present)")

	rootCmd.AddCommand(
		newServeCmd(),
		newRenderCmd(),
		newImportCmd(),
		newPublishCmd(),
		newMigrateCmd(),
	)
	return rootCmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
