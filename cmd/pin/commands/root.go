// Package commands implements the CLI commands for the pin dependency tool.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/pin/internal/app"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for pin.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pin",
		Short:         "A dependency resolver and lockfile engine for C/C++ projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Entering the directory up front makes every relative path
		// (manifest, lockfile, static registry) resolve against it.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := cmd.Flags().GetString("dir")
			if err != nil || dir == "" || dir == "." {
				return nil
			}
			if err := os.Chdir(dir); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to change directory"), "dir", dir)
			}
			return nil
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Run as if started in this directory")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
