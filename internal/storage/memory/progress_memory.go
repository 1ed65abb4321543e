package memory

import (
	"context"
	"sync"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
)

// ProgressMemory is the in-memory progress repository, used in tests and in
// storage-less runs. Records are deep-copied on the way in and out so callers
// never alias store state.
type ProgressMemory struct {
	mu  sync.RWMutex
	rec models.ProgressRecord
}

func NewProgressMemory() *ProgressMemory {
	return &ProgressMemory{rec: models.ProgressRecord{}}
}

func (r *ProgressMemory) LoadRecord(_ context.Context) (models.ProgressRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rec.Clone(), nil
}

func (r *ProgressMemory) SaveRecord(_ context.Context, rec models.ProgressRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec = rec.Clone()
	return nil
}
