package chansynth

import (
	"errors"
	"fmt"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/parser"
)

var (
	// ErrProviderNotFound indicates no known provider occurs in the document name.
	ErrProviderNotFound = parser.ErrProviderNotFound
	// ErrYearNotFound indicates the document name has no four-digit year.
	ErrYearNotFound = parser.ErrYearNotFound
	// ErrCatalogNotFound indicates the paired section catalog does not exist.
	ErrCatalogNotFound = errors.New("section catalog not found")
)

// Pipeline stages reported by PairError.
const (
	StageIdentity = "identity"
	StageCatalog  = "catalog"
	StageParse    = "parse"
	StageRender   = "render"
)

// PairError represents a failure while processing one file pair.
type PairError struct {
	Pair  string
	Stage string
	Err   error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("processing %q (%s): %v", e.Pair, e.Stage, e.Err)
}

func (e *PairError) Unwrap() error {
	return e.Err
}

// NewPairError creates a new PairError.
func NewPairError(pair, stage string, err error) *PairError {
	return &PairError{
		Pair:  pair,
		Stage: stage,
		Err:   err,
	}
}

// IsSkip reports whether err means the pair was not eligible for processing
// (identity not derivable or catalog missing) rather than a read or write failure.
func IsSkip(err error) bool {
	return errors.Is(err, ErrProviderNotFound) ||
		errors.Is(err, ErrYearNotFound) ||
		errors.Is(err, ErrCatalogNotFound)
}
