package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lineupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"Voo_Channels_2024a.tsv": "News\nSports\n",
		"Voo_Channels_2024b.tsv": "News\nCNN W\n42\nSports\nESPN\n",
		"Lineup_2024b.tsv":       "News\nCNN\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestBatchCommand(t *testing.T) {
	dir := lineupDir(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runCLI(t, "--config", configPath, "--log-level", "error", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"Provider or year not found in filename: Lineup_2024b.tsv",
		"Generated " + filepath.Join(dir, "Voo_Channels_2024c.xlsx"),
	}, lines)

	out, err = runCLI(t, "--config", configPath, "config", "get", "last_directory")
	require.NoError(t, err)
	abs, _ := filepath.Abs(dir)
	assert.Equal(t, abs, strings.TrimSpace(out))
}

func TestBatchCommandSummary(t *testing.T) {
	dir := lineupDir(t)
	out, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "config.yaml"), "--log-level", "error", "--summary", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Voo_Channels_2024b.tsv")
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, "skipped")
}

func TestRenderAndInspectCommands(t *testing.T) {
	dir := lineupDir(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	target := filepath.Join(t.TempDir(), "report.xlsx")

	out, err := runCLI(t, "--config", configPath, "--log-level", "error",
		"render", filepath.Join(dir, "Voo_Channels_2024b.tsv"), "--output", target)
	require.NoError(t, err)
	assert.Equal(t, "Generated "+target, strings.TrimSpace(out))

	out, err = runCLI(t, "--config", configPath, "inspect", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Voo 2024")
	assert.Contains(t, out, "CNN")
	assert.Contains(t, out, "ESPN")

	out, err = runCLI(t, "--config", configPath, "inspect", target, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"provider":"Voo"`)

	_, err = runCLI(t, "--config", configPath, "inspect", filepath.Join(dir, "missing.xlsx"))
	assert.Error(t, err)
}

func TestRenderCommandJSON(t *testing.T) {
	dir := lineupDir(t)
	out, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "config.yaml"), "--log-level", "error",
		"render", filepath.Join(dir, "Voo_Channels_2024b.tsv"), "--json", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, `"label": "ESPN"`)
}

func TestRenderCommandSkippedPairIsError(t *testing.T) {
	dir := lineupDir(t)
	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "config.yaml"), "--log-level", "error",
		"render", filepath.Join(dir, "Lineup_2024b.tsv"))
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	_, err := runCLI(t, "--config", configPath, "config", "set", "audience_src", "/data/audience.xlsx")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", configPath, "config", "get", "audience_src")
	require.NoError(t, err)
	assert.Equal(t, "/data/audience.xlsx", strings.TrimSpace(out))

	out, err = runCLI(t, "--config", configPath, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "data_suffix: b")
	assert.Contains(t, out, "/data/audience.xlsx")

	out, err = runCLI(t, "--config", configPath, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "config: "+configPath)

	_, err = runCLI(t, "--config", configPath, "config", "unset", "audience_src")
	require.NoError(t, err)
	_, err = runCLI(t, "--config", configPath, "config", "get", "audience_src")
	assert.Error(t, err)
}
