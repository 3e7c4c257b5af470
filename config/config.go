package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// FileName is the optional config file looked up next to the program.
const FileName = "pairup.hcl"

const (
	DefaultInput            = "numbers.txt"
	DefaultTotalDiffOutput  = "totalDiff.txt"
	DefaultSimilarityOutput = "similarityScore.txt"
	DefaultSeparator        = "   "
)

// Config holds the paths and parse settings for one run.
// Paths are absolute once returned from Default or Load.
type Config struct {
	Input            string
	TotalDiffOutput  string
	SimilarityOutput string

	// Separator splits a line into its two fields. Empty means any run of
	// whitespace.
	Separator string

	// KeepZero treats 0 as a real value instead of a missing one.
	KeepZero bool
}

func Default(dir string) *Config {
	return &Config{
		Input:            filepath.Join(dir, DefaultInput),
		TotalDiffOutput:  filepath.Join(dir, DefaultTotalDiffOutput),
		SimilarityOutput: filepath.Join(dir, DefaultSimilarityOutput),
		Separator:        DefaultSeparator,
	}
}

// Load reads FileName from dir on top of the defaults. A missing file is not
// an error.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	filename := filepath.Join(dir, FileName)
	if _, err := os.Stat(filename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot stat config file %s: %w", filename, err)
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("ParseHCLFile diags: %v", diags.Error())
	}
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("file body not a *hclsyntax.Body")
	}

	if len(body.Blocks) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedBlock, body.Blocks[0].Type)
	}

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("attribute %s: %v", name, diags.Error())
		}
		if err := cfg.set(dir, name, val); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) set(dir, name string, val cty.Value) error {
	switch name {
	case "input":
		s, err := stringValue(name, val)
		if err != nil {
			return err
		}
		c.Input = resolve(dir, s)
	case "total_diff_output":
		s, err := stringValue(name, val)
		if err != nil {
			return err
		}
		c.TotalDiffOutput = resolve(dir, s)
	case "similarity_output":
		s, err := stringValue(name, val)
		if err != nil {
			return err
		}
		c.SimilarityOutput = resolve(dir, s)
	case "separator":
		s, err := stringValue(name, val)
		if err != nil {
			return err
		}
		c.Separator = s
	case "keep_zero":
		if val.IsNull() || val.Type() != cty.Bool {
			return fmt.Errorf("%w: %s must be a bool", ErrAttributeType, name)
		}
		c.KeepZero = val.True()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}
	return nil
}

func stringValue(name string, val cty.Value) (string, error) {
	if val.IsNull() || val.Type() != cty.String {
		return "", fmt.Errorf("%w: %s must be a string", ErrAttributeType, name)
	}
	return val.AsString(), nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
