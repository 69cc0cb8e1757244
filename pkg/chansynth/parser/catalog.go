package parser

import (
	"fmt"
	"io"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

// ReadCatalog reads one section label per non-empty trimmed line, in order.
// Duplicates are retained.
func ReadCatalog(r io.Reader) (models.SectionCatalog, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return catalogFromLines(lines), nil
}

// LoadCatalog reads the section catalog file at path.
func LoadCatalog(path string) (models.SectionCatalog, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, fmt.Errorf("read section catalog: %w", err)
	}
	return catalogFromLines(lines), nil
}

func catalogFromLines(lines []string) models.SectionCatalog {
	cat := make(models.SectionCatalog, 0, len(lines))
	for _, line := range lines {
		if label := trim(line); label != "" {
			cat = append(cat, label)
		}
	}
	return cat
}
