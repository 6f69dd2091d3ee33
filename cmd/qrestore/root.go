package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by all subcommands.
type rootOptions struct {
	Verbose bool
}

// newRootCommand builds the qrestore command tree.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "qrestore",
		Short: "Low-rank quaternion completion for damaged color images",
		Long: `qrestore models a color image as a low-rank quaternion matrix and
fills in missing pixels by regularized alternating least squares on the
image's complex embedding.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelInfo
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"enable informational logging (solver progress)")

	cmd.AddCommand(newRestoreCommand(opts))

	return cmd
}
