package responselog

import (
	"sync"
	"time"

	"prompt-console/internal/domain"

	"github.com/google/uuid"
)

// Store is the append-only log of query/result pairs shown in the console.
type Store interface {
	// Append stamps the record with its identity and position and adds it
	// to the end of the log. It returns the stored record.
	Append(record domain.ResponseRecord) domain.ResponseRecord

	// Snapshot returns the current contents in insertion order.
	Snapshot() []domain.ResponseRecord

	// Clear removes all records.
	Clear()
}

// MemoryStore implements Store with an in-memory slice. Handlers run on
// separate goroutines, so every access goes through the RWMutex.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.ResponseRecord
	nextPos int64
}

// NewMemoryStore returns an empty log.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds the record to the end of the log. Positions are assigned
// under the write lock, so log order is completion order.
func (s *MemoryStore) Append(record domain.ResponseRecord) domain.ResponseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.RecordID = uuid.New()
	record.Position = s.nextPos
	record.CreatedAt = time.Now().UTC()
	s.nextPos++

	s.records = append(s.records, record)
	return record
}

// Snapshot returns a copy of the log. Callers keep what they were handed
// even if the log is cleared afterwards.
func (s *MemoryStore) Snapshot() []domain.ResponseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ResponseRecord(nil), s.records...)
}

// Clear drops every record and restarts positions from zero.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.nextPos = 0
}
