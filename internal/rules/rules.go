// Package rules loads rewrite rules from YAML and applies them in order.
// Each rule pairs a pattern with a replacement template; see
// fpat.Pattern.ReplaceTemplate for the template syntax.
package rules

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kolkov/fpat"
)

// Rule is one rewrite rule.
type Rule struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// File is the layout of a rules file.
type File struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads the rules of a YAML file.
func Load(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes rules from YAML.
func Parse(data []byte) ([]Rule, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	for i, r := range f.Rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule %d (%s): empty pattern", i, r.Name)
		}
	}
	return f.Rules, nil
}

type compiled struct {
	Rule
	pattern *fpat.Pattern
}

// Set is a compiled, ordered list of rules.
type Set struct {
	rules []compiled
	log   *zap.Logger
}

// Compile compiles every rule pattern with env and validates it against
// the engine. A nil logger discards output.
func Compile(env *fpat.Env, rules []Rule, log *zap.Logger) (*Set, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Set{log: log}
	for _, r := range rules {
		p, err := env.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		s.rules = append(s.rules, compiled{Rule: r, pattern: p})
	}
	return s, nil
}

// Len returns the number of rules.
func (s *Set) Len() int {
	return len(s.rules)
}

// Apply runs every rule over subject in order, each on the output of the
// previous one. It returns the final text and the names of the rules that
// changed it.
func (s *Set) Apply(subject string) (string, []string, error) {
	var applied []string
	result := subject
	for _, r := range s.rules {
		res := r.pattern.ReplaceTemplate(result, r.Replacement)
		switch res.Outcome {
		case fpat.Replaced:
			if res.Text != result {
				s.log.Info("applied rule",
					zap.String("rule", r.Name),
					zap.String("before", result),
					zap.String("after", res.Text))
				applied = append(applied, r.Name)
			}
			result = res.Text
		case fpat.Fault:
			return "", applied, fmt.Errorf("rule %q: %w", r.Name, res.Err)
		}
	}
	return result, applied, nil
}
