// Package parser turns channel lineup text into report models.
package parser

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxLineSize is the longest line accepted from an input file.
const MaxLineSize = 1 << 20

// ReadLines decodes r as UTF-8 (or UTF-16 when a BOM says so) and splits it into lines.
// Line terminators are removed; lines are not trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
