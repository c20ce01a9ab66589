package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN [FILE]",
		Short: "List the matches and groups of a pattern",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.compile(args[0])
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			r, err := p.Match(input)
			if err != nil {
				return err
			}
			if r == nil {
				return errNoMatch
			}

			out := cmd.OutOrStdout()
			for _, m := range r.Matches() {
				fmt.Fprintf(out, "%d [%d,%d) %s\n", m.Ordinal, m.Index, m.End(), matchStyle.Sprintf("%q", m.Text))
				for _, g := range m.Groups[1:] {
					label := fmt.Sprint(g.Ordinal)
					if name := r.Name(g.Ordinal); name != "" {
						label = name
					}
					if !g.Success {
						fmt.Fprintf(out, "  %s -\n", groupStyle.Sprint(label))
						continue
					}
					fmt.Fprintf(out, "  %s [%d,%d) %q\n", groupStyle.Sprint(label), g.Index, g.End(), g.Text)
				}
			}
			return nil
		},
	}
}
