package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the standalone glossary page to stdout or a file",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) (err error) {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	d, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	pub, err := d.publisher()
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if output != "" && output != "-" {
		f, cerr := os.Create(output)
		if cerr != nil {
			return cerr
		}
		defer func() { err = errors.Join(err, f.Close()) }()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := pub.Render(cmd.Context(), w); err != nil {
		return err
	}
	return w.Flush()
}
