package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/fpat"
)

func newGrepCmd(a *app) *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:   "grep PATTERN [FILE]",
		Short: "Print the lines containing a match",
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

			out := cmd.OutOrStdout()
			src := fpat.NewSourceLines(input)
			n := 0
			for {
				line, ok, err := src.GoTo(p)
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				n++
				if count {
					continue
				}
				if len(args) > 1 {
					fmt.Fprint(out, fileStyle.Sprint(args[1]), ":")
				}
				r, err := p.Match(line)
				if err != nil {
					return err
				}
				if r == nil {
					fmt.Fprintln(out, line)
					continue
				}
				fmt.Fprintln(out, highlight(r))
			}
			if count {
				fmt.Fprintln(out, n)
			}
			if n == 0 {
				return errNoMatch
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&count, "count", "c", false, "Print only the number of matching lines")
	return cmd
}
