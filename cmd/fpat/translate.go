package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kolkov/fpat/internal/compiler"
)

func newTranslateCmd(a *app) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "translate PATTERN",
		Short: "Print the standard syntax of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.compile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Text())
			if !explain || !p.IsShorthand() {
				return nil
			}

			src := strings.TrimSpace(p.Source())
			frags, err := compiler.Explain(src)
			if err != nil {
				return err
			}
			for _, f := range frags {
				fmt.Fprintf(out, "%-8s %-14s %-16q %s\n",
					f.Span, kindStyle.Sprint(f.Kind), src[f.Span.Start:f.Span.End], f.Text)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "List the translated constructs")
	return cmd
}
