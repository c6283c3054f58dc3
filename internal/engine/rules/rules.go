// Package rules holds the heuristic tables the classification engine scans:
// the label→L1 association list and the curated L2 phrase list. Both are
// ordered data, not control flow, so taxonomies can be swapped without
// touching the scoring algorithm.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LabelRule associates a label substring with an L1 code. The matcher scans
// rules in declaration order and the first hit wins, so order is significant.
type LabelRule struct {
	Label string `yaml:"label"`
	L1    string `yaml:"l1"`
}

// PhraseRule lists hand-picked high-signal phrases for one L2 code. A phrase
// found in the first 200 characters of the issue text scores +3, elsewhere +1.
type PhraseRule struct {
	L2      string   `yaml:"l2"`
	Phrases []string `yaml:"phrases"`
}

// Set is a full heuristic rule set.
type Set struct {
	Labels  []LabelRule  `yaml:"labels"`
	Phrases []PhraseRule `yaml:"phrases"`
}

// Default returns the built-in rule set. area:core precedes area:mcp, so an
// issue carrying both labels resolves to L1.1.
func Default() Set {
	return Set{
		Labels: []LabelRule{
			{Label: "area:core", L1: "L1.1"},
			{Label: "area:api", L1: "L1.2"},
			{Label: "area:tui", L1: "L1.3"},
			{Label: "area:tools", L1: "L1.4"},
			{Label: "area:mcp", L1: "L1.5"},
			{Label: "area:ide", L1: "L1.6"},
			{Label: "area:model", L1: "L1.7"},
			{Label: "platform:macos", L1: "L1.8"},
			{Label: "platform:windows", L1: "L1.8"},
			{Label: "platform:linux", L1: "L1.8"},
			{Label: "perf:memory", L1: "L1.9"},
			{Label: "memory", L1: "L1.9"},
			{Label: "area:security", L1: "L1.10"},
		},
		Phrases: []PhraseRule{
			{L2: "L2.1.1", Phrases: []string{"context", "compact", "token", "window"}},
			{L2: "L2.1.2", Phrases: []string{"session", "conversation", "history", "resume"}},
			{L2: "L2.1.3", Phrases: []string{"agent", "loop", "agentic", "autonomous"}},
			{L2: "L2.1.4", Phrases: []string{"crash", "exit", "hang", "freeze", "terminated"}},
			{L2: "L2.1.5", Phrases: []string{"hook", "sessionstart", "precompact", "userpromptsubmit", "trigger", "lifecycle"}},
			{L2: "L2.5.1", Phrases: []string{"plugin", "install", "update", "marketplace"}},
			{L2: "L2.5.2", Phrases: []string{"mcp server", "oauth", "connection", "discovery"}},
			{L2: "L2.5.3", Phrases: []string{"mcp tool", "tool call", "tool result"}},
		},
	}
}

// LoadFile reads a rule set from a YAML file. A section that is absent
// falls back to the corresponding default table, so a file may override
// just one of the two. An explicitly empty section (`labels: []`) stays
// empty, disabling that table.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("rules: read %s: %w", path, err)
	}
	var doc struct {
		Labels  *[]LabelRule  `yaml:"labels"`
		Phrases *[]PhraseRule `yaml:"phrases"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Set{}, fmt.Errorf("rules: parse %s: %w", path, err)
	}
	s := Default()
	if doc.Labels != nil {
		s.Labels = *doc.Labels
	}
	if doc.Phrases != nil {
		s.Phrases = *doc.Phrases
	}
	return s, nil
}
