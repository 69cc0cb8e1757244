// Package chansynth turns channel lineup documents into categorized spreadsheet reports.
package chansynth

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/output"
	"github.com/ukaji3/chansynth-go/pkg/chansynth/parser"
)

// Naming is the file naming convention relating a lineup document to its section
// catalog and generated report: all three share a stem and differ by a marker
// suffix and extension.
type Naming struct {
	// DataSuffix marks lineup documents (e.g. "b" in "Voo_2024b.tsv").
	DataSuffix string
	// CatalogSuffix marks section catalog files.
	CatalogSuffix string
	// OutputSuffix marks generated reports.
	OutputSuffix string
	// DataExt is the extension of documents and catalogs.
	DataExt string
	// OutputExt is the extension of generated reports.
	OutputExt string
}

// DefaultNaming returns the b/a/c convention: X b.tsv + X a.tsv -> X c.xlsx.
func DefaultNaming() Naming {
	return Naming{
		DataSuffix:    "b",
		CatalogSuffix: "a",
		OutputSuffix:  "c",
		DataExt:       ".tsv",
		OutputExt:     ".xlsx",
	}
}

// IsData reports whether filename is a lineup document.
func (n Naming) IsData(filename string) bool {
	return strings.HasSuffix(filename, n.DataSuffix+n.DataExt)
}

// Pair returns the file pair for the lineup document at dataPath.
func (n Naming) Pair(dataPath string) Pair {
	dir, name := filepath.Split(dataPath)
	stem := strings.TrimSuffix(name, n.DataSuffix+n.DataExt)
	return Pair{
		Name:        name,
		Base:        strings.TrimSuffix(name, filepath.Ext(name)),
		DataPath:    dataPath,
		CatalogPath: filepath.Join(dir, stem+n.CatalogSuffix+n.DataExt),
		OutputPath:  filepath.Join(dir, stem+n.OutputSuffix+n.OutputExt),
	}
}

// Pair is one unit of work: a lineup document, its catalog and the report to write.
type Pair struct {
	// Name is the document file name.
	Name string `json:"name"`
	// Base is the document name without extension; identity is read from it.
	Base string `json:"base"`
	// DataPath is the lineup document.
	DataPath string `json:"data_path"`
	// CatalogPath is the section catalog.
	CatalogPath string `json:"catalog_path"`
	// OutputPath is the report destination.
	OutputPath string `json:"output_path"`
}

// Options configures processing.
type Options struct {
	// Naming relates documents, catalogs and reports.
	Naming Naming
	// Providers is the ordered provider vocabulary. Empty uses parser.DefaultProviders.
	Providers []string
	// Report configures the spreadsheet output.
	Report output.XLSXOptions
	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		Naming: DefaultNaming(),
		Report: output.DefaultXLSXOptions(),
	}
}

func (o Options) providerRules() []parser.ProviderRule {
	if len(o.Providers) == 0 {
		return parser.DefaultProviders
	}
	return parser.ProviderRules(o.Providers)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
