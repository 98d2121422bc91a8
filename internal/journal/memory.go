package journal

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory keeps records in process memory, in arrival order.
type Memory struct {
	mu       sync.Mutex
	clicks   []ClickRecord
	scans    []ScanRecord
	consents []ConsentRecord
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) RecordClick(_ context.Context, rec ClickRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = uuid.NewString()
	m.clicks = append(m.clicks, rec)
	return nil
}

func (m *Memory) RecordScan(_ context.Context, rec ScanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = uuid.NewString()
	m.scans = append(m.scans, rec)
	return nil
}

func (m *Memory) RecordConsent(_ context.Context, rec ConsentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = uuid.NewString()
	m.consents = append(m.consents, rec)
	return nil
}

func (m *Memory) Close() {}

// Clicks returns a copy of the recorded click events.
func (m *Memory) Clicks() []ClickRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ClickRecord(nil), m.clicks...)
}

// Scans returns a copy of the recorded scan events.
func (m *Memory) Scans() []ScanRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ScanRecord(nil), m.scans...)
}

// Consents returns a copy of the recorded consent events.
func (m *Memory) Consents() []ConsentRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ConsentRecord(nil), m.consents...)
}
