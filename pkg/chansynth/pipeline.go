package chansynth

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
	"github.com/ukaji3/chansynth-go/pkg/chansynth/output"
	"github.com/ukaji3/chansynth-go/pkg/chansynth/parser"
)

// ProcessPair runs the whole pipeline for one pair and writes its report.
// Every error is a *PairError; IsSkip tells ineligible pairs from failures.
func ProcessPair(pair Pair, opts Options) (*models.Report, error) {
	log := opts.logger().With(slog.String("pair", pair.Name))

	id, err := parser.ResolveIdentity(pair.Base, opts.providerRules())
	if err != nil {
		return nil, NewPairError(pair.Name, StageIdentity, err)
	}

	if _, err := os.Stat(pair.CatalogPath); errors.Is(err, fs.ErrNotExist) {
		return nil, NewPairError(pair.Name, StageCatalog, fmt.Errorf("%w: %s", ErrCatalogNotFound, pair.CatalogPath))
	}
	cat, err := parser.LoadCatalog(pair.CatalogPath)
	if err != nil {
		return nil, NewPairError(pair.Name, StageCatalog, err)
	}

	assocs, err := parser.ParseFile(pair.DataPath, cat)
	if err != nil {
		return nil, NewPairError(pair.Name, StageParse, err)
	}
	m := parser.BuildMatrix(assocs, cat)
	log.Debug("matrix built",
		slog.String("provider", id.Provider),
		slog.String("year", id.Year),
		slog.Int("sections", len(cat)),
		slog.Int("associations", len(assocs)),
		slog.Int("rows", m.Len()))

	report, err := output.WriteXLSX(pair.OutputPath, m, id, opts.Report)
	if err != nil {
		return nil, NewPairError(pair.Name, StageRender, err)
	}
	log.Info("report written", slog.String("output", pair.OutputPath))
	return report, nil
}

// BuildReport runs the pipeline in memory, without touching the filesystem.
func BuildReport(filename string, document []string, cat models.SectionCatalog, opts Options) (*models.Report, error) {
	id, err := parser.ResolveIdentity(filename, opts.providerRules())
	if err != nil {
		return nil, NewPairError(filename, StageIdentity, err)
	}
	m := parser.BuildMatrix(parser.ParseLines(document, cat), cat)
	return &models.Report{Identity: id, Matrix: m}, nil
}
