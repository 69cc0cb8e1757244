package parser

import (
	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

// BuildMatrix folds associations into a membership matrix over the catalog schema.
//
// Rows are created per distinct raw text in first-seen order, section flags are set,
// then each row label is classified once for its region token. Rows whose labels
// become identical after the token is stripped are merged: section flags are OR-ed
// and differing region vectors widen to all regions.
func BuildMatrix(assocs []models.Association, cat models.SectionCatalog) *models.Matrix {
	raw := models.NewMatrix(cat)
	for _, a := range assocs {
		i := raw.Ensure(a.Text)
		raw.Mark(i, a.Section)
	}

	m := models.NewMatrix(cat)
	for _, row := range raw.Rows {
		region, label := ClassifyRegion(row.Label)
		if _, exists := m.Row(label); !exists {
			i := m.Ensure(label)
			m.Rows[i].Region = region
			copy(m.Rows[i].Sections, row.Sections)
			continue
		}
		i := m.Ensure(label)
		merged := &m.Rows[i]
		merged.Region = merged.Region.Merge(region)
		for s, on := range row.Sections {
			merged.Sections[s] = merged.Sections[s] || on
		}
	}
	return m
}
