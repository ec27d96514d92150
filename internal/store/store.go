// Package store provides generic record-collection storage. A collection
// is the full set of records of one entity type, read and rewritten as a
// unit; a record is a flat mapping of field names to string values. No
// type coercion happens here — callers interpret field semantics.
package store

import (
	"context"
	"errors"
)

// Collection names
const (
	Companies    = "companies"
	Jobs         = "jobs"
	Candidates   = "candidates"
	Applications = "applications"
)

// ErrNotFound is returned when the underlying collection resource does
// not exist.
var ErrNotFound = errors.New("collection not found")

// Record is a single entity instance as stored.
type Record map[string]string

// RecordStore is the storage contract the repository layer depends on.
// LoadAll re-reads the full collection on every call; SaveAll replaces
// the entire collection, atomically from the caller's perspective, with
// the given field order preserved on the written resource.
type RecordStore interface {
	LoadAll(ctx context.Context, collection string) ([]Record, error)
	SaveAll(ctx context.Context, collection string, records []Record, fieldOrder []string) error
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
