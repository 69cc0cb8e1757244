package chansynth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "Voo_Channels_2024a.tsv"), "News\nSports\n")
	writeFile(t, filepath.Join(dir, "Voo_Channels_2024b.tsv"), "News\nCNN W\n42\nSports\nESPN\n")
	writeFile(t, filepath.Join(dir, "Proximus_2024b.tsv"), "News\nCNN\n")
	writeFile(t, filepath.Join(dir, "Orange_2023b.tsv"), "News\nCNN\n")
	writeFile(t, filepath.Join(dir, "Telenet_2022b.tsv"), "News\nCNN\n")
	// an unreadable catalog
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Telenet_2022a.tsv"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Nested_2024b.tsv"), 0o755))
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me")
	return dir
}

func TestFindPairs(t *testing.T) {
	dir := batchDir(t)
	pairs, err := FindPairs(dir, DefaultNaming())
	require.NoError(t, err)

	var names []string
	for _, p := range pairs {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Orange_2023b.tsv", "Proximus_2024b.tsv", "Telenet_2022b.tsv", "Voo_Channels_2024b.tsv"}, names)
}

func TestRunBatch(t *testing.T) {
	dir := batchDir(t)

	var messages []string
	result, err := RunBatch(dir, DefaultOptions(), func(o Outcome) {
		messages = append(messages, o.Message())
	})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 4)

	statuses := map[string]Status{}
	for _, o := range result.Outcomes {
		statuses[o.Pair.Name] = o.Status
	}
	assert.Equal(t, map[string]Status{
		"Orange_2023b.tsv":       StatusSkipped,
		"Proximus_2024b.tsv":     StatusSkipped,
		"Telenet_2022b.tsv":      StatusFailed,
		"Voo_Channels_2024b.tsv": StatusGenerated,
	}, statuses)
	assert.Equal(t, 1, result.Count(StatusGenerated))
	assert.Equal(t, 2, result.Count(StatusSkipped))
	assert.Equal(t, 1, result.Count(StatusFailed))

	require.Len(t, messages, 4)
	assert.Equal(t, "Section names file not found: "+filepath.Join(dir, "Orange_2023a.tsv"), messages[0])
	assert.Equal(t, "Provider or year not found in filename: Proximus_2024b.tsv", messages[1])
	assert.Contains(t, messages[2], "Failed to process Telenet_2022b.tsv")
	assert.Equal(t, "Generated "+filepath.Join(dir, "Voo_Channels_2024c.xlsx"), messages[3])

	_, err = os.Stat(filepath.Join(dir, "Voo_Channels_2024c.xlsx"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Telenet_2022c.xlsx"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunBatchMissingDir(t *testing.T) {
	_, err := RunBatch(filepath.Join(t.TempDir(), "missing"), DefaultOptions(), nil)
	assert.Error(t, err)
}

func TestRunBatchEmptyDir(t *testing.T) {
	result, err := RunBatch(t.TempDir(), DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Outcomes)
}
