package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/beconv"
)

func (c *cli) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <kind> <value>",
		Short: "Encode a value and print it as hex",
		Long: `Encode a value and print its encoding as lowercase hex.

Negative numbers go after "--" so they are not read as flags.

Example:
  beconv encode int32 -- -1     # ffffffff
  beconv encode decimal 123.45  # 000000023039`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := beconv.ParseKind(args[0])
			if err != nil {
				return err
			}
			v, err := beconv.ParseValue(k, args[1])
			if err != nil {
				return fmt.Errorf("parse %s value %q: %w", k, args[1], err)
			}
			b := v.Encode()
			c.log.Debug("encoded", beconv.Fields{"kind": k.String(), "value": v.String(), "bytes": len(b)})
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			return nil
		},
	}
}
