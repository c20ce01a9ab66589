package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kolkov/fpat"
)

func newReplaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace PATTERN TEMPLATE [FILE]",
		Short: "Replace every match with an expanded template ($1, ${name}, $$)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.compile(args[0])
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args, 2)
			if err != nil {
				return err
			}

			res := p.ReplaceTemplate(input, args[1])
			a.logger.Debug("replace", zap.Stringer("outcome", res.Outcome))
			switch res.Outcome {
			case fpat.Fault:
				return res.Err
			case fpat.Replaced:
				fmt.Fprint(cmd.OutOrStdout(), res.Text)
			default:
				fmt.Fprint(cmd.OutOrStdout(), input)
			}
			return nil
		},
	}
}
