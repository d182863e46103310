package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/argmatch"
	"github.com/gnoswap-labs/argmatch/check"
	tt "github.com/gnoswap-labs/argmatch/internal/types"
)

func init() {
	color.NoColor = true
}

func TestDecodeValues(t *testing.T) {
	t.Parallel()

	values, err := decodeValues([]string{"42", "1.5", "true", "bob", "", "null", "[1, two]", "{a: 1}"})
	require.NoError(t, err)

	assert.Equal(t, []any{
		42,
		1.5,
		true,
		"bob",
		"",
		nil,
		[]any{1, "two"},
		map[string]any{"a": 1},
	}, values)

	_, err = decodeValues([]string{"[1, 2"})
	assert.Error(t, err)
}

func TestRunMatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ok := runMatch(&buf, zap.NewNop(), "name:string,[times:number]", []any{"bob", 3}, false)
	assert.True(t, ok)
	assert.Equal(t, "0 | name = \"bob\" (string)\n1 | times = 3 (number)\n", buf.String())

	buf.Reset()
	ok = runMatch(&buf, zap.NewNop(), "number", []any{"bob"}, false)
	assert.False(t, ok)
	assert.Equal(t, "error[type]: The argument #1 ('bob') could not be matched against the pattern.\n", buf.String())
}

func TestRunMatchJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ok := runMatch(&buf, zap.NewNop(), "name:string", []any{"bob"}, true)
	require.True(t, ok)

	var res map[string]argmatch.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "bob", res["name"].Value)
	assert.Equal(t, "name", res["0"].Name)

	buf.Reset()
	ok = runMatch(&buf, zap.NewNop(), "string,", []any{"bob"}, true)
	assert.False(t, ok)
	assert.JSONEq(t, `{"error":{"kind":"syntax","message":"Empty argument definition in pattern."}}`, buf.String())
}

func TestRunExplain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, runExplain(&buf, "[verbose:boolean]"))
	assert.Equal(t, "pattern: [verbose:boolean] (0-1 arguments)\n  |\n0 | verbose: boolean (optional)\n  |\n", buf.String())

	buf.Reset()
	assert.False(t, runExplain(&buf, "[boolean"))
	assert.Equal(t, "error[syntax]: Argument started as optional but closing bracket missing.\n", buf.String())
}

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, initConfigurationFile(path))

	cfg, err := check.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, check.Starter().Signatures, cfg.Signatures)
}

func TestResolvePattern(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, initConfigurationFile(path))

	p, err := resolvePattern(path, "string", "")
	require.NoError(t, err)
	assert.Equal(t, "string", p)

	p, err = resolvePattern(path, "", "greet")
	require.NoError(t, err)
	assert.Equal(t, "name:string,[times:number]", p)

	_, err = resolvePattern(path, "", "nope")
	assert.ErrorContains(t, err, "unknown signature")

	_, err = resolvePattern(path, "string", "greet")
	assert.Error(t, err)

	_, err = resolvePattern(filepath.Join(t.TempDir(), "missing.yaml"), "", "greet")
	assert.Error(t, err)
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, initConfigurationFile(path))

	engine := check.NewEngine(argmatch.New(), nil)

	var buf bytes.Buffer
	failed, err := runCheck(context.Background(), &buf, zap.NewNop(), engine, []string{path}, false, "")
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Contains(t, buf.String(), "PASS "+path+": greet once\n")
	assert.Contains(t, buf.String(), "2 cases, 0 failed\n")

	jsonPath := filepath.Join(dir, "out.json")
	buf.Reset()
	failed, err = runCheck(context.Background(), &buf, zap.NewNop(), engine, []string{path}, true, jsonPath)
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Empty(t, buf.String())

	d, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var outcomes []tt.Outcome
	require.NoError(t, json.Unmarshal(d, &outcomes))
	assert.Len(t, outcomes, 2)
}
