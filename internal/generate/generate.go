// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate produces structured listing copy from a role-tagged
// conversation via a Generative AI API. The retry loop drives it through
// the Composer interface so tests can supply a mock.
package generate

import (
	"context"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// Composer turns the conversation into one candidate ListingCopy. The turns
// are the trailing window of the conversation history, oldest first. A
// malformed or incomplete model response is a call failure, never a partial
// document: callers may rely on a non-nil result satisfying the seven-field
// schema.
type Composer interface {
	Compose(ctx context.Context, turns []types.Turn) (*types.ListingCopy, error)
}
