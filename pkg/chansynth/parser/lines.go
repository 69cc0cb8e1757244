package parser

import (
	"fmt"
	"io"
	"unicode"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

// Line rule names reported by ClassifyLine.
const (
	RuleBlank         = "blank"
	RuleSection       = "section"
	RuleChannelNumber = "channel-number"
	RuleContent       = "content"
	RulePreHeader     = "pre-header"
)

// LineRule is one step of the line classification. Rules are tried in order.
type LineRule struct {
	Name  string
	Match func(line string, sections map[string]struct{}) bool
}

// LineRules is the ordered classification applied to every trimmed line.
// A line matching none of them is content.
var LineRules = []LineRule{
	{Name: RuleBlank, Match: func(line string, _ map[string]struct{}) bool { return line == "" }},
	{Name: RuleSection, Match: func(line string, sections map[string]struct{}) bool {
		_, ok := sections[line]
		return ok
	}},
	{Name: RuleChannelNumber, Match: func(line string, _ map[string]struct{}) bool { return isChannelNumber(line) }},
}

// ClassifyLine classifies one raw line given the active section (empty when none yet).
// It returns the matched rule name, the trimmed line and the section active afterwards.
func ClassifyLine(line string, sections map[string]struct{}, current string) (rule, text, next string) {
	text = trim(line)
	for _, r := range LineRules {
		if !r.Match(text, sections) {
			continue
		}
		if r.Name == RuleSection {
			return r.Name, text, text
		}
		return r.Name, text, current
	}
	if current == "" {
		return RulePreHeader, text, current
	}
	return RuleContent, text, current
}

// ParseLines walks a document and associates every content line with the section
// header above it. Headers, blank lines, channel numbers and lines before the first
// header produce nothing.
func ParseLines(lines []string, cat models.SectionCatalog) []models.Association {
	sections := cat.Set()
	assocs := make([]models.Association, 0, len(lines))

	current := ""
	for _, line := range lines {
		rule, text, next := ClassifyLine(line, sections, current)
		current = next
		if rule == RuleContent {
			assocs = append(assocs, models.Association{Section: current, Text: text})
		}
	}
	return assocs
}

// ParseDocument reads and parses a lineup document.
func ParseDocument(r io.Reader, cat models.SectionCatalog) ([]models.Association, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines, cat), nil
}

// ParseFile reads and parses the lineup document at path.
func ParseFile(path string, cat models.SectionCatalog) ([]models.Association, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, fmt.Errorf("read lineup document: %w", err)
	}
	return ParseLines(lines, cat), nil
}

// digitValued holds the No characters that carry a single digit value, such as
// superscripts and circled digits. Fractions and other numerals are not included.
var digitValued = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

// isChannelNumber reports whether s is made only of digits: decimal digits plus the
// digit-valued superscript and enclosed forms.
func isChannelNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.Is(digitValued, r) {
			return false
		}
	}
	return true
}
