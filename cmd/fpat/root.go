package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kolkov/fpat"
	"github.com/kolkov/fpat/internal/config"
)

// errNoMatch makes the process exit with status 1 without a message.
var errNoMatch = errors.New("no match")

var (
	matchStyle = color.New(color.FgRed, color.Bold)
	groupStyle = color.New(color.FgCyan)
	kindStyle  = color.New(color.FgYellow)
	fileStyle  = color.New(color.FgMagenta)
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	cfgFile    string
	engineName string
	native     bool
	logLevel   string
	noColor    bool

	logger *zap.Logger
	env    *fpat.Env
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "fpat",
		Short:         "fpat - friendly patterns for matching and rewriting text",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Path to a YAML config file")
	pf.StringVar(&a.engineName, "engine", "", "Regex engine: backtrack or linear")
	pf.BoolVar(&a.native, "native", false, "Treat patterns as standard syntax")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newTranslateCmd(a),
		newMatchCmd(a),
		newReplaceCmd(a),
		newApplyCmd(a),
		newGrepCmd(a),
	)
	return root
}

// setup merges the config file, environment and flags, then builds the
// logger and the Env.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if f := cmd.Flag("engine"); f != nil && f.Changed {
		s.Engine = a.engineName
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		s.LogLevel = a.logLevel
	}
	if a.native {
		s.Shorthand = false
	}
	if a.noColor || !s.Color {
		color.NoColor = true
	}

	a.logger, err = s.Logger()
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	c, err := s.Config(a.logger)
	if err != nil {
		return err
	}
	a.env = fpat.NewEnv(c)
	a.logger.Debug("settings loaded",
		zap.String("engine", s.Engine),
		zap.Bool("shorthand", s.Shorthand),
		zap.String("config", a.cfgFile))
	return nil
}

// compile compiles a pattern argument. Under --native the Env defaults to
// standard syntax, so only an explicit "; f" suffix translates.
func (a *app) compile(raw string) (*fpat.Pattern, error) {
	return a.env.Compile(raw)
}

// readInput reads the file named by args[i], or standard input when the
// argument is absent or "-".
func readInput(cmd *cobra.Command, args []string, i int) (string, error) {
	if i < len(args) && args[i] != "-" {
		data, err := os.ReadFile(args[i])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// highlight renders the input of r with every match colored.
func highlight(r *fpat.MatchResult) string {
	r.EditMatches(func(m *fpat.Match, text string) (string, bool) {
		return matchStyle.Sprint(text), true
	})
	out, err := r.Render()
	if err != nil {
		return r.Input()
	}
	return out
}
