// Package identity issues unique, human-readable IDs per entity kind.
package identity

import (
	"fmt"
	"sync/atomic"

	"github.com/db-keli/task-management/internal/entities"
)

// Kind names a category of entities with its own ID prefix and counter.
type Kind string

const (
	// KindUser issues U-prefixed IDs.
	KindUser Kind = "user"
	// KindProject issues P-prefixed IDs.
	KindProject Kind = "project"
	// KindTask issues T-prefixed IDs.
	KindTask Kind = "task"
	// KindStatusReport issues SR-prefixed IDs for numbered report runs.
	KindStatusReport Kind = "status_report"
)

var prefixes = map[Kind]string{
	KindUser:         "U",
	KindProject:      "P",
	KindTask:         "T",
	KindStatusReport: "SR",
}

// Issuer hands out strictly increasing per-kind IDs. Counters never
// decrease through normal flow and issued values are never reused, even
// after the entity is deleted. NextID is safe under concurrent callers;
// the kind map is frozen at construction.
type Issuer struct {
	counters map[Kind]*atomic.Int64
}

// NewIssuer registers every known kind with its counter at 1.
func NewIssuer() *Issuer {
	counters := make(map[Kind]*atomic.Int64, len(prefixes))
	for kind := range prefixes {
		c := &atomic.Int64{}
		c.Store(1)
		counters[kind] = c
	}
	return &Issuer{counters: counters}
}

// NextID returns the next ID for the kind, formatted as the kind prefix
// followed by a zero-padded counter (P007), and advances the counter.
func (i *Issuer) NextID(kind Kind) (string, error) {
	c, ok := i.counters[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", entities.ErrUnknownKind, kind)
	}
	next := c.Add(1) - 1
	return fmt.Sprintf("%s%03d", prefixes[kind], next), nil
}

// Current returns the next-to-issue counter value for diagnostics and
// tests.
func (i *Issuer) Current(kind Kind) (int64, error) {
	c, ok := i.counters[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", entities.ErrUnknownKind, kind)
	}
	return c.Load(), nil
}

// Set overrides a kind's counter. Administrative use only.
func (i *Issuer) Set(kind Kind, value int64) error {
	if value < 0 {
		return fmt.Errorf("%w: counter value cannot be negative", entities.ErrInvalidArgument)
	}
	c, ok := i.counters[kind]
	if !ok {
		return fmt.Errorf("%w: %q", entities.ErrUnknownKind, kind)
	}
	c.Store(value)
	return nil
}

// Reset restarts a kind's counter at 1. Test and administrative use
// only; not reachable from application flow.
func (i *Issuer) Reset(kind Kind) error {
	c, ok := i.counters[kind]
	if !ok {
		return fmt.Errorf("%w: %q", entities.ErrUnknownKind, kind)
	}
	c.Store(1)
	return nil
}

// ResetAll restarts every counter at 1.
func (i *Issuer) ResetAll() {
	for _, c := range i.counters {
		c.Store(1)
	}
}
