package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/glossary/pkg/job"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Apply the glossary schema migrations. On postgres the job queue tables
are migrated as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// Opening the store applies the schema migrations.
			d, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer d.close()

			if pg, err := d.postgres(); err == nil {
				if err := job.Migrate(ctx, pg.Pool(), d.log); err != nil {
					return err
				}
			}

			n, err := d.store.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied, %d terms stored\n", n)
			return nil
		},
	}
}
