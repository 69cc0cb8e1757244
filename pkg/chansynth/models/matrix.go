package models

// ColumnKind distinguishes region columns from section columns.
type ColumnKind int

const (
	// RegionColumn is one of the four location columns.
	RegionColumn ColumnKind = iota
	// SectionColumn is a bouquet column taken from the catalog.
	SectionColumn
)

// Column describes one data column of the matrix.
type Column struct {
	// Kind tells whether the column is a region or a section.
	Kind ColumnKind `json:"kind"`
	// Name is the column identity (region header or catalog label, never display-trimmed).
	Name string `json:"name"`
	// Region is set for region columns only.
	Region Region `json:"region,omitempty"`
	// Section is the position in the catalog for section columns.
	Section int `json:"section,omitempty"`
}

// Schema is the fixed ordered column list of a matrix: region columns then catalog sections.
type Schema struct {
	Columns  []Column
	sections map[string][]int
}

// NewSchema builds the schema for a catalog. Duplicate labels get one column each.
func NewSchema(cat SectionCatalog) Schema {
	s := Schema{
		Columns:  make([]Column, 0, len(Regions)+len(cat)),
		sections: make(map[string][]int, len(cat)),
	}
	for _, r := range Regions {
		s.Columns = append(s.Columns, Column{Kind: RegionColumn, Name: r.ColumnName(), Region: r})
	}
	for i, label := range cat {
		s.Columns = append(s.Columns, Column{Kind: SectionColumn, Name: label, Section: i})
		s.sections[label] = append(s.sections[label], i)
	}
	return s
}

// SectionIndexes returns the catalog positions carrying label.
func (s Schema) SectionIndexes(label string) []int {
	return s.sections[label]
}

// Row is one channel of the matrix.
type Row struct {
	// Label is the canonical channel name (region token removed).
	Label string `json:"label"`
	// Region holds the availability flags.
	Region RegionVector `json:"region"`
	// Sections is parallel to the catalog: true when the channel is in that section.
	Sections []bool `json:"sections"`
}

// Value returns the flag of the row at schema column col.
func (r Row) Value(col Column) bool {
	if col.Kind == RegionColumn {
		return r.Region.Has(col.Region)
	}
	if col.Section < 0 || col.Section >= len(r.Sections) {
		return false
	}
	return r.Sections[col.Section]
}

// Matrix is the channel × column membership table.
type Matrix struct {
	// Sections is the catalog the matrix was built from.
	Sections SectionCatalog `json:"sections"`
	// Rows holds one entry per canonical label, in first-seen order.
	Rows []Row `json:"rows"`

	schema Schema
	index  map[string]int
}

// NewMatrix creates an empty matrix over the catalog schema.
func NewMatrix(cat SectionCatalog) *Matrix {
	return &Matrix{
		Sections: cat,
		Rows:     []Row{},
		schema:   NewSchema(cat),
		index:    make(map[string]int),
	}
}

// Schema returns the fixed column layout.
func (m *Matrix) Schema() Schema {
	if m.schema.Columns == nil {
		m.schema = NewSchema(m.Sections)
	}
	return m.schema
}

// Len returns the number of rows.
func (m *Matrix) Len() int {
	return len(m.Rows)
}

// Row returns the row for label.
func (m *Matrix) Row(label string) (Row, bool) {
	i, ok := m.lookup()[label]
	if !ok {
		return Row{}, false
	}
	return m.Rows[i], true
}

// Has reports whether the channel label is flagged for section.
func (m *Matrix) Has(label, section string) bool {
	row, ok := m.Row(label)
	if !ok {
		return false
	}
	for _, i := range m.Schema().SectionIndexes(section) {
		if row.Value(Column{Kind: SectionColumn, Section: i}) {
			return true
		}
	}
	return false
}

// Ensure returns the index of label, appending an empty row with all regions set if missing.
func (m *Matrix) Ensure(label string) int {
	idx := m.lookup()
	if i, ok := idx[label]; ok {
		return i
	}
	m.Rows = append(m.Rows, Row{
		Label:    label,
		Region:   AllRegions,
		Sections: make([]bool, len(m.Sections)),
	})
	idx[label] = len(m.Rows) - 1
	return len(m.Rows) - 1
}

// Mark sets the section flag of the row at i. Unknown sections are ignored.
func (m *Matrix) Mark(i int, section string) bool {
	cols := m.Schema().SectionIndexes(section)
	for _, c := range cols {
		m.Rows[i].Sections[c] = true
	}
	return len(cols) > 0
}

// Reindex rebuilds the label lookup after rows were replaced.
func (m *Matrix) Reindex() {
	m.index = make(map[string]int, len(m.Rows))
	for i, r := range m.Rows {
		m.index[r.Label] = i
	}
}

func (m *Matrix) lookup() map[string]int {
	if m.index == nil {
		m.Reindex()
	}
	return m.index
}
