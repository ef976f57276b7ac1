package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render the standalone page and upload it to object storage",
		Long: `Render the standalone page and upload it to the configured bucket under
storage.key. With --remove the published page is deleted instead.`,
		Args: cobra.NoArgs,
		RunE: runPublish,
	}
	cmd.Flags().Bool("remove", false, "delete the published page from storage")
	return cmd
}

func runPublish(cmd *cobra.Command, _ []string) error {
	remove, err := cmd.Flags().GetBool("remove")
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

	if remove {
		if err := pub.Unpublish(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "published page removed")
		return nil
	}

	res, err := pub.Publish(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "published %s (%d bytes)\n", res.URL, res.Size)
	return nil
}
