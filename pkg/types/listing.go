// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across pipeline stages.
package types

import (
	"encoding/json"
	"strings"
)

// InputRecord is the caller-supplied listing record: a semi-structured
// mapping with location fields, a language tag, and domain attributes
// (listing type, numeric facts, feature flags). It is read-only to the
// pipeline for the lifetime of one run.
type InputRecord map[string]any

// IsEmpty reports whether the record carries no data at all.
func (r InputRecord) IsEmpty() bool {
	return len(r) == 0
}

// Language returns the record's language tag (e.g. "en", "pt-BR"), or ""
// when absent.
func (r InputRecord) Language() string {
	return r.stringField("language")
}

// City returns the city from the nested location object, or "".
func (r InputRecord) City() string {
	return r.locationField("city")
}

// Neighborhood returns the neighborhood from the nested location object, or "".
func (r InputRecord) Neighborhood() string {
	return r.locationField("neighborhood")
}

// ListingType returns the sale/rent type, or "".
func (r InputRecord) ListingType() string {
	return r.stringField("listing_type")
}

// MarshalIndent serializes the record as indented JSON, the form used to
// seed the conversation and to feed the fact checker.
func (r InputRecord) MarshalIndent() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r InputRecord) stringField(key string) string {
	if v, ok := r[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func (r InputRecord) locationField(key string) string {
	loc, ok := r["location"].(map[string]any)
	if !ok {
		return ""
	}
	if v, ok := loc[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
