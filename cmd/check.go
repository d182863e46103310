package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/argmatch"
	"github.com/gnoswap-labs/argmatch/check"
	"github.com/gnoswap-labs/argmatch/formatter"
	tt "github.com/gnoswap-labs/argmatch/internal/types"
)

var (
	checkJson  bool
	checkWatch bool
	outPath    string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Run the cases of case files (default: the configuration file)",
	Run: func(cmd *cobra.Command, args []string) {
		paths := args
		if len(paths) == 0 {
			paths = []string{cfgFile}
		}

		signatures, err := loadSignatures(cfgFile)
		if err != nil {
			logger.Error("Failed to load configuration", zap.String("path", cfgFile), zap.Error(err))
			os.Exit(1)
		}
		engine := check.NewEngine(argmatch.New(argmatch.WithLogger(logger)), signatures)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		failed, err := runCheck(ctx, os.Stdout, logger, engine, paths, checkJson, outPath)
		if err != nil {
			logger.Error("Error processing case files", zap.Error(err))
			os.Exit(1)
		}

		if checkWatch {
			if err := runWatch(logger, engine, paths); err != nil {
				logger.Error("Error watching case files", zap.Error(err))
				os.Exit(1)
			}
			return
		}

		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJson, "json", false, "Output outcomes in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Re-run case files when they change")
}

// runCheck runs the case files and prints their outcomes. It returns the
// number of failed cases.
func runCheck(ctx context.Context, w io.Writer, logger *zap.Logger, runner check.Runner, paths []string, isJson bool, jsonOutput string) (int, error) {
	outcomes, err := check.ProcessFiles(ctx, logger, runner, paths)
	if err != nil {
		return 0, err
	}

	if err := printOutcomes(w, outcomes, isJson, jsonOutput); err != nil {
		return 0, err
	}
	return tt.Failed(outcomes), nil
}

func printOutcomes(w io.Writer, outcomes []tt.Outcome, isJson bool, jsonOutput string) error {
	if !isJson {
		fmt.Fprint(w, formatter.FormatOutcomes(outcomes))
		return nil
	}

	d, err := json.Marshal(outcomes)
	if err != nil {
		return fmt.Errorf("marshalling outcomes to JSON: %w", err)
	}
	if jsonOutput == "" {
		fmt.Fprintln(w, string(d))
		return nil
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		return fmt.Errorf("writing JSON output file: %w", err)
	}
	return nil
}

// runWatch re-runs changed case files until interrupted.
func runWatch(logger *zap.Logger, runner check.Runner, paths []string) error {
	watcher, err := check.NewWatcher(runner, logger, func(file string, outcomes []tt.Outcome, err error) {
		if err != nil {
			fmt.Print(formatter.FormatError(fmt.Errorf("%s: %w", file, err)))
			return
		}
		fmt.Print(formatter.FormatOutcomes(outcomes))
	})
	if err != nil {
		return err
	}
	if err := watcher.Add(paths...); err != nil {
		_ = watcher.Stop()
		return err
	}
	if err := watcher.Start(); err != nil {
		_ = watcher.Stop()
		return err
	}
	fmt.Println("watching for changes, press Ctrl+C to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return watcher.Stop()
}
