package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/glossary/internal/importer"
	"github.com/dmitrymomot/glossary/internal/tasks"
	"github.com/dmitrymomot/glossary/pkg/job"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import definitions from an XML or YAML file",
		Long: `Import definitions from an XML (.xml) or YAML (.yaml, .yml) file.

The whole file is validated before anything is written, and all definitions
are stored in one transaction: either every definition is imported or none.
With --replace the stored terms are deleted in the same transaction.

With --async the import is queued for a running "glossary serve" with jobs
enabled; the file path must then be readable by the server.

Rendered pages are cached. A direct import clears the cache it is configured
with, but the default "memory" cache lives inside each process, so a running
"glossary serve" keeps its cached page until cache.ttl expires. Set
cache.driver to "redis" for the server and the CLI to share one cache, or
queue the import with --async.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	cmd.Flags().Bool("async", false, "queue the import as a background job (postgres only)")
	cmd.Flags().Bool("replace", false, "delete all stored terms before importing")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	async, err := cmd.Flags().GetBool("async")
	if err != nil {
		return err
	}
	replace, err := cmd.Flags().GetBool("replace")
	if err != nil {
		return err
	}

	d, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	if async {
		pg, err := d.postgres()
		if err != nil {
			return err
		}
		enq, err := job.NewEnqueuer(pg.Pool(), job.WithEnqueuerLogger(d.log))
		if err != nil {
			return err
		}
		// Repeated submissions of one file within a minute collapse into one job.
		err = enq.Enqueue(ctx, tasks.ImportTaskName,
			tasks.ImportPayload{Path: path, Replace: replace},
			job.UniqueKey(path),
			job.UniqueFor(time.Minute),
		)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "queued import of %s\n", path)
		return nil
	}

	res, err := d.importer().Import(ctx, path, importer.Replace(replace))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, w := range res.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	fmt.Fprintf(out, "imported %d definitions\n", res.Imported)
	return nil
}
