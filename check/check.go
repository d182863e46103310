package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/argmatch"
	tt "github.com/gnoswap-labs/argmatch/internal/types"
)

// Runner evaluates one case file.
type Runner interface {
	RunFile(path string) ([]tt.Outcome, error)
}

// Engine is the default Runner. Case files may refer to the signatures of
// the main configuration in addition to their own.
type Engine struct {
	matcher    *argmatch.Matcher
	signatures map[string]string
}

// NewEngine returns an Engine matching with m. signatures may be nil.
func NewEngine(m *argmatch.Matcher, signatures map[string]string) *Engine {
	if m == nil {
		m = argmatch.New()
	}
	return &Engine{matcher: m, signatures: signatures}
}

// RunFile loads the case file at path and evaluates its cases.
func (e *Engine) RunFile(path string) ([]tt.Outcome, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return Evaluate(e.matcher, cfg.WithSignatures(e.signatures), path), nil
}

// ProcessFiles runs every path, in order, through ProcessPath.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	runner Runner,
	paths []string,
) ([]tt.Outcome, error) {
	var all []tt.Outcome
	for _, path := range paths {
		outcomes, err := ProcessPath(ctx, logger, runner, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, outcomes...)
	}

	return all, nil
}

// ProcessPath runs a single case file, or every case file below a
// directory on a bounded worker pool. Outcomes keep the walk order.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	runner Runner,
	path string,
) ([]tt.Outcome, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	// an explicitly named file is run whatever its extension
	if !info.IsDir() {
		return ProcessFile(runner, path)
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && IsCaseFile(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	results := make([][]tt.Outcome, len(files))
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup

dispatch:
	for i, filePath := range files {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			outcomes, err := ProcessFile(runner, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				outcomes = []tt.Outcome{loadFailure(fp, err)}
			}
			results[i] = outcomes
			_ = bar.Add(1)
		}(i, filePath)
	}
	wg.Wait()
	_ = bar.Finish()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var outcomes []tt.Outcome
	for _, r := range results {
		outcomes = append(outcomes, r...)
	}
	return outcomes, nil
}

// ProcessFile runs a single case file.
func ProcessFile(runner Runner, path string) ([]tt.Outcome, error) {
	return runner.RunFile(path)
}

func loadFailure(path string, err error) tt.Outcome {
	return tt.Outcome{File: path, Kind: "load", Message: err.Error()}
}

var caseFileExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
}

// IsCaseFile reports whether path has a case file extension.
func IsCaseFile(path string) bool {
	return caseFileExtensions[filepath.Ext(path)]
}
