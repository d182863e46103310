package check

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/argmatch"
	tt "github.com/gnoswap-labs/argmatch/internal/types"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) RunFile(path string) ([]tt.Outcome, error) {
	args := m.Called(path)
	return args.Get(0).([]tt.Outcome), args.Error(1)
}

func TestProcessFile(t *testing.T) {
	t.Parallel()

	expected := []tt.Outcome{{File: "cases.yaml", Case: "c", Passed: true}}
	runner := new(mockRunner)
	runner.On("RunFile", "cases.yaml").Return(expected, nil)

	outcomes, err := ProcessFile(runner, "cases.yaml")

	assert.NoError(t, err)
	assert.Equal(t, expected, outcomes)
	runner.AssertExpectations(t)
}

func TestProcessPathDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	a := writeFile(t, dir, "a.yaml", "")
	b := writeFile(t, sub, "b.yml", "")
	writeFile(t, dir, "notes.txt", "")
	bad := writeFile(t, dir, "z.yaml", "")

	runner := new(mockRunner)
	runner.On("RunFile", a).Return([]tt.Outcome{{File: a, Case: "a", Passed: true}}, nil)
	runner.On("RunFile", b).Return([]tt.Outcome{{File: b, Case: "b", Passed: true}}, nil)
	runner.On("RunFile", bad).Return([]tt.Outcome(nil), errors.New("boom"))

	logger, _ := zap.NewProduction()
	outcomes, err := ProcessPath(context.Background(), logger, runner, dir)
	require.NoError(t, err)

	// walk order: a.yaml, sub/b.yml, z.yaml
	require.Len(t, outcomes, 3)
	assert.Equal(t, "a", outcomes[0].Case)
	assert.Equal(t, "b", outcomes[1].Case)
	assert.Equal(t, bad, outcomes[2].File)
	assert.Equal(t, "load", outcomes[2].Kind)
	assert.False(t, outcomes[2].Passed)
	runner.AssertExpectations(t)
}

func TestProcessPathMissing(t *testing.T) {
	t.Parallel()

	_, err := ProcessPath(context.Background(), nil, new(mockRunner), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestProcessPathCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ProcessPath(ctx, nil, new(mockRunner), dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.yaml", sampleCases)
	second := writeFile(t, dir, "second.yaml", `signatures:
  local: "boolean"
cases:
  - name: shared signature
    signature: shared
    args: [[1]]
    expect:
      types: {"0": array}
  - name: local signature
    signature: local
    args: ["no"]
`)

	engine := NewEngine(argmatch.New(), map[string]string{"shared": "items:array"})
	logger, _ := zap.NewProduction()

	outcomes, err := ProcessFiles(context.Background(), logger, engine, []string{first, second})
	require.NoError(t, err)
	require.Len(t, outcomes, 5)

	assert.Equal(t, 1, tt.Failed(outcomes))
	assert.True(t, outcomes[3].Passed)
	assert.False(t, outcomes[4].Passed)
	assert.Equal(t, "type", outcomes[4].Kind)
}

func TestEngineRunFileError(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, nil)
	_, err := engine.RunFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestIsCaseFile(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCaseFile("a.yaml"))
	assert.True(t, IsCaseFile("dir/a.yml"))
	assert.False(t, IsCaseFile("a.json"))
	assert.False(t, IsCaseFile("yaml"))
}
