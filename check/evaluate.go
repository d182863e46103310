package check

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gnoswap-labs/argmatch"
	tt "github.com/gnoswap-labs/argmatch/internal/types"
	"github.com/gnoswap-labs/argmatch/pattern"
)

// Evaluate matches every case of cfg and reports one outcome per case.
func Evaluate(m *argmatch.Matcher, cfg Config, file string) []tt.Outcome {
	outcomes := make([]tt.Outcome, 0, len(cfg.Cases))
	for _, cs := range cfg.Cases {
		outcomes = append(outcomes, evaluateCase(m, cfg, file, cs))
	}
	return outcomes
}

func evaluateCase(m *argmatch.Matcher, cfg Config, file string, cs Case) tt.Outcome {
	outcome := tt.Outcome{File: file, Case: cs.Name}

	p, err := cfg.PatternFor(cs)
	if err != nil {
		outcome.Kind = "load"
		outcome.Message = err.Error()
		return outcome
	}
	outcome.Pattern = p

	res, err := m.Match(cs.Args, p)
	kind := errorKind(err)

	switch {
	case cs.Expect.Error != "":
		if err == nil {
			outcome.Message = fmt.Sprintf("expected %s error, got a match", cs.Expect.Error)
			return outcome
		}
		outcome.Kind = kind
		if kind != cs.Expect.Error {
			outcome.Message = fmt.Sprintf("expected %s error, got %s error: %v", cs.Expect.Error, kind, err)
			return outcome
		}
		outcome.Passed = true
		outcome.Message = err.Error()
		return outcome

	case err != nil:
		outcome.Kind = kind
		outcome.Message = err.Error()
		return outcome
	}

	if msg := compareResult(res, cs.Expect); msg != "" {
		outcome.Message = msg
		return outcome
	}
	outcome.Passed = true
	return outcome
}

func errorKind(err error) string {
	var perr *pattern.Error
	if errors.As(err, &perr) {
		return perr.Kind.String()
	}
	if err != nil {
		return "unknown"
	}
	return ""
}

// compareResult returns a description of the first expectation res does
// not meet, or "" when all are met. Keys are checked in sorted order.
func compareResult(res argmatch.Result, expect Expect) string {
	for _, key := range sortedKeys(expect.Types) {
		e, ok := res[key]
		if !ok {
			return fmt.Sprintf("missing result key %q", key)
		}
		if want := expect.Types[key]; string(e.Type) != want {
			return fmt.Sprintf("key %q: expected type %s, got %s", key, want, e.Type)
		}
	}
	for _, key := range sortedKeys(expect.Names) {
		e, ok := res[key]
		if !ok {
			return fmt.Sprintf("missing result key %q", key)
		}
		if want := expect.Names[key]; e.Name != want {
			return fmt.Sprintf("key %q: expected name %q, got %q", key, want, e.Name)
		}
	}
	return ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
