package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/beconv"
)

func (c *cli) decodeCmd() *cobra.Command {
	var offset, length int
	cmd := &cobra.Command{
		Use:   "decode <kind> <hex>",
		Short: "Decode a hex buffer",
		Long: `Decode a value of the given kind from a hex buffer.

By default the region starts at offset 0 and spans the kind's width (or the
rest of the buffer for decimal and string).

Example:
  beconv decode int16 0100              # 256
  beconv decode int32 00ffffffff --offset 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := beconv.ParseKind(args[0])
			if err != nil {
				return err
			}
			b, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}
			n := length
			if n < 0 {
				if w, ok := beconv.WidthOf(k); ok {
					n = w
				} else {
					n = len(b) - offset
				}
			}
			v, err := beconv.DecodeValue(k, b, offset, n)
			if err != nil {
				c.log.Warn("decode failed", beconv.Fields{"kind": k.String(), "offset": offset, "length": n, "err": err})
				return err
			}
			c.log.Debug("decoded", beconv.Fields{"kind": k.String(), "offset": offset, "length": n})
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Start of the region")
	cmd.Flags().IntVar(&length, "length", -1, "Region length (default: the kind's width)")
	return cmd
}
