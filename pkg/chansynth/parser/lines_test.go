package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

func TestParseLines(t *testing.T) {
	cat := models.SectionCatalog{"News", "Sports"}
	got := ParseLines([]string{"News", "CNN W", "42", "Sports", "ESPN"}, cat)
	assert.Equal(t, []models.Association{
		{Section: "News", Text: "CNN W"},
		{Section: "Sports", Text: "ESPN"},
	}, got)
}

func TestParseLinesDiscards(t *testing.T) {
	cat := models.SectionCatalog{"News", "Sports"}
	lines := []string{
		"Lineup 2024",
		"7",
		"  News  ",
		"",
		"   ",
		"BBC One",
		"12",
		"1234",
		"News",
		"\tBBC Two\t",
		"Sports",
		"Sports",
		"Eurosport 1",
	}
	got := ParseLines(lines, cat)
	assert.Equal(t, []models.Association{
		{Section: "News", Text: "BBC One"},
		{Section: "News", Text: "BBC Two"},
		{Section: "Sports", Text: "Eurosport 1"},
	}, got)
}

func TestParseLinesHeaderThenNumber(t *testing.T) {
	got := ParseLines([]string{"News", "CNN", "42"}, models.SectionCatalog{"News"})
	require.Len(t, got, 1)
	assert.Equal(t, models.Association{Section: "News", Text: "CNN"}, got[0])
}

func TestParseLinesNoHeader(t *testing.T) {
	got := ParseLines([]string{"CNN", "ESPN"}, models.SectionCatalog{"News"})
	assert.Empty(t, got)
}

func TestClassifyLine(t *testing.T) {
	sections := models.SectionCatalog{"News"}.Set()

	tests := []struct {
		name    string
		line    string
		current string
		rule    string
		next    string
	}{
		{"blank", "  ", "News", RuleBlank, "News"},
		{"header", " News ", "", RuleSection, "News"},
		{"one digit", "7", "News", RuleChannelNumber, "News"},
		{"three digits", "101", "News", RuleChannelNumber, "News"},
		{"digits and text", "101 CNN", "News", RuleContent, "News"},
		{"arabic-indic digits", "\u0664\u0662", "News", RuleChannelNumber, "News"},
		{"superscript digit", "1\u00b2", "News", RuleChannelNumber, "News"},
		{"circled digit", "\u2460", "News", RuleChannelNumber, "News"},
		{"fraction", "\u00bd", "News", RuleContent, "News"},
		{"before header", "CNN", "", RulePreHeader, ""},
		{"content", "CNN", "News", RuleContent, "News"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, _, next := ClassifyLine(tt.line, sections, tt.current)
			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Voo_2024b.tsv")
	require.NoError(t, os.WriteFile(path, []byte("News\r\nCNN W\r\n42\r\n"), 0o644))

	got, err := ParseFile(path, models.SectionCatalog{"News"})
	require.NoError(t, err)
	assert.Equal(t, []models.Association{{Section: "News", Text: "CNN W"}}, got)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.tsv"), models.SectionCatalog{"News"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
