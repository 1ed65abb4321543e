package progress

import (
	"context"
	"sync"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
)

type progressRepo interface {
	LoadRecord(ctx context.Context) (models.ProgressRecord, error)
	SaveRecord(ctx context.Context, rec models.ProgressRecord) error
}

type catalogSource interface {
	Lesson(moduleID, lessonID int) (models.Lesson, error)
}

// ProgressService owns the learner's completion record. Durability is best
// effort: a repository that fails to load reads as an empty record, a
// repository that fails to save keeps the session cache as the source of
// truth and the failure never reaches the caller.
type ProgressService struct {
	log     logger.Log
	repo    progressRepo
	catalog catalogSource

	mu     sync.Mutex
	rec    models.ProgressRecord
	loaded bool
}

func NewProgressService(log logger.Log, repo progressRepo, catalog catalogSource) *ProgressService {
	return &ProgressService{
		log:     log,
		repo:    repo,
		catalog: catalog,
	}
}

// Completed returns the completed lesson ids for the module. A learner with
// no saved record and one whose record failed to load are indistinguishable.
func (s *ProgressService) Completed(ctx context.Context, moduleID int) map[int]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx)
	return s.rec.Completed(moduleID)
}

// ToggleLesson flips completion of one lesson and returns the module's new
// completed set. The lesson must exist in the catalog; entries already in the
// record are left alone so stale ids survive a toggle round trip.
func (s *ProgressService) ToggleLesson(ctx context.Context, moduleID, lessonID int) (map[int]bool, error) {
	if _, err := s.catalog.Lesson(moduleID, lessonID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx)
	s.rec.Toggle(moduleID, lessonID)
	s.persist(ctx)
	return s.rec.Completed(moduleID), nil
}

// WriteCompleted replaces the module's completed set in full. Idempotent.
func (s *ProgressService) WriteCompleted(ctx context.Context, moduleID int, lessonIDs map[int]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx)
	s.rec.SetCompleted(moduleID, lessonIDs)
	s.persist(ctx)
}

// hydrate loads the record once per service lifetime. Callers hold s.mu.
func (s *ProgressService) hydrate(ctx context.Context) {
	if s.loaded {
		return
	}
	rec, err := s.repo.LoadRecord(ctx)
	if err != nil {
		s.log.Warn("progress: load failed, starting empty", logger.Err(err))
		rec = models.ProgressRecord{}
	}
	if rec == nil {
		rec = models.ProgressRecord{}
	}
	s.rec = rec
	s.loaded = true
}

// persist writes the full record best effort. Callers hold s.mu.
func (s *ProgressService) persist(ctx context.Context) {
	if err := s.repo.SaveRecord(ctx, s.rec.Clone()); err != nil {
		s.log.Warn("progress: save failed, keeping session state", logger.Err(err))
	}
}
