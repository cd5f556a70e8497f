package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScriptWithStats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdict.session")
	defer teardown()
	//
	var out bytes.Buffer
	script := "v1 = empty add a 1\nv2 = v1 add b 2\nget v1 a\n"
	require.NoError(t, runScript(strings.NewReader(script), &out, true, true))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "empty"))
	assert.Contains(t, lines[2], "distance=0") // v1 has been touched by get
	assert.Contains(t, lines[3], "rotations=1")
}

func TestRunScriptFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdict.session")
	defer teardown()
	//
	err := runScript(strings.NewReader("keys ghost\n"), &bytes.Buffer{}, false, false)
	assert.Error(t, err)
}

func TestTraceLevel(t *testing.T) {
	level, err := traceLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, tracing.LevelDebug, level)
	_, err = traceLevel("verbose")
	assert.Error(t, err)
}

func TestRootCommandAppliesConfiguration(t *testing.T) {
	defer tracing.SetTraceSelector(nil)
	t.Setenv("PDICT_CHECK", "true")
	t.Setenv("PDICT_STATS", "true")
	//
	script := filepath.Join(t.TempDir(), "script.pd")
	require.NoError(t, os.WriteFile(script, []byte("v = empty add a 1\nsize v\n"), 0o644))
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	defer RootCmd.SetOut(nil)
	RootCmd.SetArgs([]string{"run", "--trace=debug", script})
	require.NoError(t, RootCmd.Execute())
	//
	for _, key := range tracingKeys {
		assert.Equal(t, tracing.LevelDebug, tracing.Select(key).GetTraceLevel(), "trace level of %s", key)
	}
	assert.True(t, viper.GetBool("check"), "PDICT_CHECK should enable checking")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1", lines[0])
	assert.Contains(t, lines[2], "size=1 table=1") // stats enabled by PDICT_STATS
}
