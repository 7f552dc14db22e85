package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/beconv"
	zaplog "github.com/unkn0wn-root/beconv/log/zap"
)

type cli struct {
	verbose bool
	log     beconv.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree
// so tests can run commands with their own flags and output.
func NewRootCmd() *cobra.Command {
	c := &cli{log: beconv.NopLogger{}}
	root := &cobra.Command{
		Use:   "beconv",
		Short: "Fixed-width big-endian value codec",
		Long: `beconv converts scalar values to and from their fixed-width
big-endian encoding.

Kinds: bool, byte, int16, int32, int64, float32, float64, decimal, string.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !c.verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			c.log = zaplog.ZapLogger{L: l}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log each conversion to stderr")

	root.AddCommand(c.encodeCmd(), c.decodeCmd(), c.widthCmd())
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
