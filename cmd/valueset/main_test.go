// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	valueset "github.com/digitalocean/go-valueset"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestAlgebraCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"parse", "{3,1},[5,6),[6,7]"}, want: "{1,3},[5,7]"},
		{args: []string{"union", "{1},[2,3)", "{3},(5,6)"}, want: "{1},[2,3],(5,6)"},
		{args: []string{"diff", "{},[0,10]", "{5},(2,3)"}, want: "{},[0,2],[3,5),(5,10]"},
		{args: []string{"intersect", "{},[0,4)", "{},(3,9]", "{3.5}"}, want: "{3.5}"},
		{args: []string{"complement", "{1},[2,3)"}, want: "{},(-Inf,1),(1,2),[3,+Inf)"},
		{args: []string{"contains", "{},(0,10]", "10"}, want: "true"},
		{args: []string{"contains", "{},(0,10]", "[0,1]"}, want: "false"},
		{args: []string{"equal", "{1},[2,3)", "{{1},[2,3)}"}, want: "true"},
		{args: []string{"cuts", "--first", "inf", "0", "1"}, want: "(-Inf,0]\n(0,1]"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlgebraCommandErrors(t *testing.T) {
	_, err := execute(t, "parse", "[1,2)")
	assert.True(t, valueset.IsSyntaxErr(err), "got %v", err)

	_, err = execute(t, "cuts", "--last", "sideways", "0", "1")
	assert.ErrorContains(t, err, "--last")

	_, err = execute(t, "cuts", "1", "0")
	assert.True(t, valueset.IsCutOrderErr(err), "got %v", err)

	_, err = execute(t, "--log-level", "loud", "parse", "{}")
	assert.ErrorContains(t, err, "--log-level")
}

const mergeYAML = `
min_weight: 0.05
strategy: greedy
concurrency: 2
features:
  grade:
    - {bin: 1, weight: 0.01}
    - {bin: 2, weight: 0.02}
    - {bin: 3, weight: 0.5}
  age:
    - {bin: "[0,18]", weight: 0.5}
    - {bin: "(18,65]", weight: 0.01}
    - {bin: "(65,+Inf)", weight: 0.49}
`

func TestParseMergeConfig(t *testing.T) {
	cfg, err := parseMergeConfig([]byte(mergeYAML))
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.MinWeight)
	assert.Equal(t, "greedy", cfg.Strategy)
	assert.Equal(t, 2, cfg.Concurrency)
	require.Len(t, cfg.Features["grade"], 3)
	assert.Equal(t, binConfig{Bin: "1", Weight: 0.01}, cfg.Features["grade"][0])
	assert.Equal(t, "(18,65]", cfg.Features["age"][1].Bin)
}

func TestMergeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(mergeYAML), 0o600))

	got, err := execute(t, "merge", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "age: [0,65](0.51) (65,+Inf)(0.49)\ngrade: {1,2,3}(0.53)", got)

	got, err = execute(t, "merge", "--config", path, "--strategy", "sequential", "--min-weight", "0.6")
	require.NoError(t, err)
	assert.Equal(t, "age: [0,+Inf)(1)\ngrade: {1,2,3}(0.53)", got)

	_, err = execute(t, "merge", "--config", path, "--strategy", "random")
	assert.ErrorContains(t, err, "unknown merge strategy")

	_, err = execute(t, "merge", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read merge config")
}
