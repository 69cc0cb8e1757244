package chansynth

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

// Status is the outcome of one pair in a batch.
type Status string

const (
	// StatusGenerated means the report was written.
	StatusGenerated Status = "generated"
	// StatusSkipped means the pair was not eligible (no identity or no catalog).
	StatusSkipped Status = "skipped"
	// StatusFailed means a read or write error stopped the pair.
	StatusFailed Status = "failed"
)

// Outcome records what happened to one pair.
type Outcome struct {
	Pair   Pair
	Status Status
	Report *models.Report
	Err    error
}

// Message returns the console line for the outcome.
func (o Outcome) Message() string {
	switch {
	case o.Status == StatusGenerated:
		return "Generated " + o.Pair.OutputPath
	case errors.Is(o.Err, ErrCatalogNotFound):
		return "Section names file not found: " + o.Pair.CatalogPath
	case o.Status == StatusSkipped:
		return "Provider or year not found in filename: " + o.Pair.Name
	default:
		cause := o.Err
		var pe *PairError
		if errors.As(o.Err, &pe) {
			cause = pe.Err
		}
		return fmt.Sprintf("Failed to process %s: %v", o.Pair.Name, cause)
	}
}

// Observer is called once per pair as the batch progresses.
type Observer func(Outcome)

// BatchResult aggregates the outcomes of a batch run.
type BatchResult struct {
	Dir      string
	Outcomes []Outcome
}

// Count returns how many outcomes have status s.
func (r *BatchResult) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// FindPairs lists the lineup documents directly inside dir, in name order.
func FindPairs(dir string, naming Naming) ([]Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for _, e := range entries {
		if e.IsDir() || !naming.IsData(e.Name()) {
			continue
		}
		pairs = append(pairs, naming.Pair(filepath.Join(dir, e.Name())))
	}
	return pairs, nil
}

// RunBatch processes every pair found in dir. A failing pair never stops the batch;
// only an unreadable dir is returned as an error.
func RunBatch(dir string, opts Options, observe Observer) (*BatchResult, error) {
	log := opts.logger()

	pairs, err := FindPairs(dir, opts.Naming)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	log.Info("batch started", slog.String("dir", dir), slog.Int("pairs", len(pairs)))

	result := &BatchResult{Dir: dir, Outcomes: make([]Outcome, 0, len(pairs))}
	for _, pair := range pairs {
		outcome := Outcome{Pair: pair, Status: StatusGenerated}
		outcome.Report, outcome.Err = ProcessPair(pair, opts)
		switch {
		case outcome.Err == nil:
		case IsSkip(outcome.Err):
			outcome.Status = StatusSkipped
			log.Warn("pair skipped", slog.String("pair", pair.Name), slog.String("reason", outcome.Err.Error()))
		default:
			outcome.Status = StatusFailed
			log.Error("pair failed", slog.String("pair", pair.Name), slog.String("error", outcome.Err.Error()))
		}

		result.Outcomes = append(result.Outcomes, outcome)
		if observe != nil {
			observe(outcome)
		}
	}

	log.Info("batch finished",
		slog.Int("generated", result.Count(StatusGenerated)),
		slog.Int("skipped", result.Count(StatusSkipped)),
		slog.Int("failed", result.Count(StatusFailed)))
	return result, nil
}
