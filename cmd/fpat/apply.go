package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kolkov/fpat/internal/rules"
)

func newApplyCmd(a *app) *cobra.Command {
	var rulesFile string
	cmd := &cobra.Command{
		Use:   "apply --rules FILE [INPUT]",
		Short: "Apply the rewrite rules of a YAML file in order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := rules.Load(rulesFile)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}
			set, err := rules.Compile(a.env, rs, a.logger)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args, 0)
			if err != nil {
				return err
			}

			out, applied, err := set.Apply(input)
			if err != nil {
				return err
			}
			a.logger.Info("rules applied",
				zap.String("file", rulesFile),
				zap.Int("rules", set.Len()),
				zap.Strings("changed", applied))
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rules file")
	_ = cmd.MarkFlagRequired("rules")
	return cmd
}
