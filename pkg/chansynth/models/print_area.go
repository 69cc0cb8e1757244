package models

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Report is a rendered lineup: identity stamp, matrix and print bounds.
type Report struct {
	// BookName is the workbook file name (no path), empty before rendering.
	BookName string `json:"book_name,omitempty"`
	// Identity is the provider/year stamp.
	Identity ReportIdentity `json:"identity"`
	// Matrix is the channel membership table.
	Matrix *Matrix `json:"matrix"`
	// PrintArea is the printable range of the sheet, if set.
	PrintArea *PrintArea `json:"print_area,omitempty"`
}
