package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/argmatch"
	"github.com/gnoswap-labs/argmatch/formatter"
	"github.com/gnoswap-labs/argmatch/pattern"
)

var (
	matchPattern   string
	matchSignature string
	matchJSON      bool
)

var matchCmd = &cobra.Command{
	Use:   "match [values...]",
	Short: "Match values against a pattern",
	Long: `Each value is read as YAML, so 42 is a number, true a boolean,
[1, 2] an array, {a: 1} an object and null is null. Anything else is a string.
Example) argmatch match -p "name:string,[times:number]" bob 3`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := resolvePattern(cfgFile, matchPattern, matchSignature)
		if err != nil {
			logger.Error("Failed to resolve pattern", zap.Error(err))
			os.Exit(1)
		}

		values, err := decodeValues(args)
		if err != nil {
			logger.Error("Failed to decode values", zap.Error(err))
			os.Exit(1)
		}

		if !runMatch(os.Stdout, logger, p, values, matchJSON) {
			os.Exit(1)
		}
	},
}

func init() {
	matchCmd.Flags().StringVarP(&matchPattern, "pattern", "p", "", "Pattern to match against")
	matchCmd.Flags().StringVarP(&matchSignature, "sig", "s", "", "Name of a signature from the configuration file")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Output the result in JSON format")
}

// decodeValues reads every command line value as a YAML document. An empty
// value is the empty string.
func decodeValues(args []string) ([]any, error) {
	values := make([]any, len(args))
	for i, arg := range args {
		if arg == "" {
			values[i] = ""
			continue
		}
		if err := yaml.Unmarshal([]byte(arg), &values[i]); err != nil {
			return nil, fmt.Errorf("value #%d (%q): %w", i+1, arg, err)
		}
	}
	return values, nil
}

type jsonFailure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// runMatch matches values against p and writes the result or the failure
// to w. It reports whether the match succeeded.
func runMatch(w io.Writer, logger *zap.Logger, p string, values []any, isJson bool) bool {
	m := argmatch.New(argmatch.WithLogger(logger))
	res, err := m.Match(values, p)

	if !isJson {
		if err != nil {
			fmt.Fprint(w, formatter.FormatError(err))
			return false
		}
		fmt.Fprint(w, formatter.FormatResult(res))
		return true
	}

	var out any = res
	if err != nil {
		failure := jsonFailure{Kind: "unknown", Message: err.Error()}
		var perr *pattern.Error
		if errors.As(err, &perr) {
			failure.Kind = perr.Kind.String()
		}
		out = map[string]jsonFailure{"error": failure}
	}

	d, jerr := json.Marshal(out)
	if jerr != nil {
		logger.Error("Error marshalling result to JSON", zap.Error(jerr))
		return false
	}
	fmt.Fprintln(w, string(d))
	return err == nil
}
