package check

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/argmatch/pattern"
)

// DefaultConfigPath is the configuration file looked up by the CLI.
const DefaultConfigPath = ".argmatch.yaml"

// Config is the content of a case file.
type Config struct {
	Name       string            `yaml:"name"`
	Signatures map[string]string `yaml:"signatures,omitempty"`
	Cases      []Case            `yaml:"cases,omitempty"`
}

// Case is one argument list to match, with the expected outcome.
type Case struct {
	Name      string `yaml:"name"`
	Pattern   string `yaml:"pattern,omitempty"`
	Signature string `yaml:"signature,omitempty"`
	Args      []any  `yaml:"args"`
	Expect    Expect `yaml:"expect,omitempty"`
}

// Expect describes a successful match (Types, Names) or a failure (Error).
type Expect struct {
	// Error is a failure kind: type, syntax, range or unmatched.
	Error string `yaml:"error,omitempty"`
	// Types maps result keys (positions or names) to type tags.
	Types map[string]string `yaml:"types,omitempty"`
	// Names maps result keys to the bound slot name.
	Names map[string]string `yaml:"names,omitempty"`
}

// LoadConfig reads and validates a case file.
func LoadConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate checks that every case names exactly one pattern source and
// that expected error kinds are known. Signature names are resolved later,
// once signatures from the main configuration have been merged in.
func (c Config) Validate() error {
	for i, cs := range c.Cases {
		if (cs.Pattern == "") == (cs.Signature == "") {
			return fmt.Errorf("case %d (%s): exactly one of pattern and signature must be set", i, cs.Name)
		}
		if cs.Expect.Error != "" {
			if _, err := pattern.ParseKind(cs.Expect.Error); err != nil {
				return fmt.Errorf("case %d (%s): %w", i, cs.Name, err)
			}
		}
	}
	return nil
}

// PatternFor returns the pattern text a case is matched against.
func (c Config) PatternFor(cs Case) (string, error) {
	if cs.Signature == "" {
		return cs.Pattern, nil
	}
	p, ok := c.Signatures[cs.Signature]
	if !ok {
		return "", fmt.Errorf("unknown signature %q", cs.Signature)
	}
	return p, nil
}

// Signature returns the pattern registered under name.
func (c Config) Signature(name string) (string, bool) {
	p, ok := c.Signatures[name]
	return p, ok
}

// WithSignatures returns a copy of c whose signature table also holds
// extra. Signatures already defined by c win.
func (c Config) WithSignatures(extra map[string]string) Config {
	merged := make(map[string]string, len(c.Signatures)+len(extra))
	for name, p := range extra {
		merged[name] = p
	}
	for name, p := range c.Signatures {
		merged[name] = p
	}
	c.Signatures = merged
	return c
}

// Starter returns the configuration written by "argmatch init".
func Starter() Config {
	return Config{
		Name: "argmatch",
		Signatures: map[string]string{
			"greet": "name:string,[times:number]",
		},
		Cases: []Case{
			{
				Name:      "greet once",
				Signature: "greet",
				Args:      []any{"bob"},
				Expect: Expect{
					Types: map[string]string{"0": "string", "name": "string"},
				},
			},
			{
				Name:    "too many arguments",
				Pattern: "number",
				Args:    []any{1, 2},
				Expect:  Expect{Error: "range"},
			},
		},
	}
}
