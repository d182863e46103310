package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/argmatch/formatter"
	"github.com/gnoswap-labs/argmatch/pattern"
)

var explainSignature string

var explainCmd = &cobra.Command{
	Use:   "explain [pattern]",
	Short: "Show how a pattern compiles",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var literal string
		if len(args) == 1 {
			literal = args[0]
		}
		if literal == "" && explainSignature == "" {
			fmt.Println("error: Please provide a pattern or a signature")
			os.Exit(1)
		}

		p, err := resolvePattern(cfgFile, literal, explainSignature)
		if err != nil {
			logger.Error("Failed to resolve pattern", zap.Error(err))
			os.Exit(1)
		}

		if !runExplain(os.Stdout, p) {
			os.Exit(1)
		}
	},
}

func init() {
	explainCmd.Flags().StringVarP(&explainSignature, "sig", "s", "", "Name of a signature from the configuration file")
}

func runExplain(w io.Writer, p string) bool {
	schema, err := pattern.Compile(p)
	if err != nil {
		fmt.Fprint(w, formatter.FormatError(err))
		return false
	}
	fmt.Fprint(w, formatter.FormatSchema(schema))
	return true
}
