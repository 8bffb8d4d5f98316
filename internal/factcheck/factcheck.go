// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package factcheck compares generated listing copy against the input
// record via an external AI call. The capability is best effort by design:
// callers treat any error as "check unavailable" and fall back to a neutral
// score rather than failing the pipeline.
package factcheck

import (
	"context"
	"errors"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// ErrUnavailable signals that no consistency check was performed. The
// Neutral checker returns it unconditionally; remote implementations may
// wrap it when the backing service is disabled.
var ErrUnavailable = errors.New("consistency check unavailable")

// Finding is the structured outcome of one consistency check.
type Finding struct {
	// IsConsistent is true when the copy matches the record.
	IsConsistent bool `json:"is_consistent"`

	// FabricatedFeatures lists features mentioned in the copy but marked
	// false or absent in the record.
	FabricatedFeatures []string `json:"fabricated_features"`

	// MissingImportantFeatures lists important record features the copy
	// never mentions.
	MissingImportantFeatures []string `json:"missing_important_features"`

	// IncorrectNumbers lists numbers in the copy that contradict the
	// record (e.g. "text says 2 bedrooms but record has 3").
	IncorrectNumbers []string `json:"incorrect_numbers"`

	// WrongListingType is true when the copy sells a rental or vice versa.
	WrongListingType bool `json:"wrong_listing_type"`

	// WrongLanguage is true when the copy's language does not match the
	// record's language field.
	WrongLanguage bool `json:"wrong_language"`

	// OtherInconsistencies lists any remaining discrepancies.
	OtherInconsistencies []string `json:"other_inconsistencies"`

	// Summary is a one-line digest of everything found.
	Summary string `json:"summary"`
}

// Checker performs one consistency check of rendered copy text against the
// input record. Implementations must honor ctx cancellation; the remote
// implementation applies its own call timeout.
type Checker interface {
	Check(ctx context.Context, copyText string, rec types.InputRecord) (Finding, error)
}

// Neutral is the fallback Checker used when remote checking is disabled.
// It never succeeds, which routes every caller through the fail-open path.
type Neutral struct{}

// Check always returns ErrUnavailable.
func (Neutral) Check(context.Context, string, types.InputRecord) (Finding, error) {
	return Finding{}, ErrUnavailable
}
