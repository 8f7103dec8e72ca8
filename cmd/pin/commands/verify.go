package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the lockfile against the manifest without fetching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Verify(cmd.Context(), "."); err != nil {
				return err
			}
			cmd.Println("lockfile is up to date")
			return nil
		},
	}
}
