// Package journal is an append-only log of compliance-relevant events:
// affiliate clicks, cookie scans and consent decisions. The memory backend is
// the default; the postgres backend gives durable storage for deployments
// that need an audit trail.
package journal

import (
	"context"
	"encoding/json"
	"time"
)

type ClickRecord struct {
	ID         string
	ClientID   string
	AdID       string
	Revenue    float64
	OccurredAt time.Time
}

type ScanRecord struct {
	ID         string
	ClientID   string
	Domain     string
	Cookies    []json.RawMessage
	OccurredAt time.Time
}

type ConsentRecord struct {
	ID         string
	ClientID   string
	Domain     string
	Consent    map[string]any
	IPHash     string
	UserAgent  string
	OccurredAt time.Time
}

// Recorder appends event records. Implementations assign the record ID and
// must be safe for concurrent use. A failed append never changes the HTTP
// response of the operation that produced the record.
type Recorder interface {
	RecordClick(ctx context.Context, rec ClickRecord) error
	RecordScan(ctx context.Context, rec ScanRecord) error
	RecordConsent(ctx context.Context, rec ConsentRecord) error
	Close()
}
