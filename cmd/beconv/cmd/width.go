package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/beconv"
)

func (c *cli) widthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width <kind>",
		Short: "Print the encoded width of a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := beconv.ParseKind(args[0])
			if err != nil {
				return err
			}
			if w, ok := beconv.WidthOf(k); ok {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "variable")
			}
			return nil
		},
	}
}
