package tokenizer

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	reflect "github.com/goccy/go-reflect"
	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Corpus is a YAML file of string literals and the token streams they
// must produce.
type Corpus struct {
	Name  string       `mapstructure:"name"`
	Cases []CorpusCase `mapstructure:"cases"`
}

type CorpusCase struct {
	Name         string  `mapstructure:"name"`
	Source       string  `mapstructure:"source"`
	Tokens       []Token `mapstructure:"tokens"`
	Unterminated bool    `mapstructure:"unterminated"`
}

type CorpusFailure struct {
	Corpus string
	Case   string
	Reason string
}

func (f CorpusFailure) String() string {
	return fmt.Sprintf("%s/%s: %s", f.Corpus, f.Case, f.Reason)
}

func LoadCorpus(path string) (*Corpus, error) {
	yamlBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%q): %w", path, err)
	}

	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("yaml.YAMLToJSON: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(jsonBytes, &raw); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	var corpus Corpus
	if err := mapstructure.Decode(raw, &corpus); err != nil {
		return nil, fmt.Errorf("mapstructure.Decode: %w", err)
	}
	if corpus.Name == "" {
		corpus.Name = path
	}
	return &corpus, nil
}

// Run tokenizes every case and returns one failure per mismatching case.
func (c *Corpus) Run() []CorpusFailure {
	var failures []CorpusFailure
	for _, tc := range c.Cases {
		got, err := TokenizeLiteral(tc.Source)
		if err != nil {
			failures = append(failures, CorpusFailure{Corpus: c.Name, Case: tc.Name, Reason: err.Error()})
			continue
		}
		if got.Unterminated != tc.Unterminated {
			failures = append(failures, CorpusFailure{
				Corpus: c.Name,
				Case:   tc.Name,
				Reason: fmt.Sprintf("unterminated: got %v, want %v", got.Unterminated, tc.Unterminated),
			})
			continue
		}
		if !reflect.DeepEqual(got.Tokens, tc.Tokens) {
			gotKinds := lo.Map(got.Tokens, func(t Token, _ int) string { return t.Kind })
			wantKinds := lo.Map(tc.Tokens, func(t Token, _ int) string { return t.Kind })
			failures = append(failures, CorpusFailure{
				Corpus: c.Name,
				Case:   tc.Name,
				Reason: fmt.Sprintf("token stream mismatch: got %v, want %v", gotKinds, wantKinds),
			})
		}
	}
	return failures
}
