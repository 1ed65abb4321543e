package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app_errors"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/catalog"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/storage/memory"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]models.Module{
		{
			ID: 1, Title: "First", LessonCount: 4,
			Lessons: []models.Lesson{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
		},
	})
	require.NoError(t, err)
	return c
}

type brokenRepo struct {
	loadErr error
	saveErr error
	rec     models.ProgressRecord
}

func (r *brokenRepo) LoadRecord(context.Context) (models.ProgressRecord, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.rec.Clone(), nil
}

func (r *brokenRepo) SaveRecord(context.Context, models.ProgressRecord) error {
	return r.saveErr
}

func TestToggleLesson_RoundTrip(t *testing.T) {
	s := NewProgressService(logger.New("local"), memory.NewProgressMemory(), testCatalog(t))
	ctx := context.Background()

	set, err := s.ToggleLesson(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{2: true}, set)

	set, err = s.ToggleLesson(ctx, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestToggleLesson_Persists(t *testing.T) {
	repo := memory.NewProgressMemory()
	ctx := context.Background()

	s := NewProgressService(logger.New("local"), repo, testCatalog(t))
	_, err := s.ToggleLesson(ctx, 1, 1)
	require.NoError(t, err)

	// A fresh service hydrating from the same repo sees the toggle.
	s2 := NewProgressService(logger.New("local"), repo, testCatalog(t))
	assert.Equal(t, map[int]bool{1: true}, s2.Completed(ctx, 1))
}

func TestToggleLesson_UnknownLesson(t *testing.T) {
	s := NewProgressService(logger.New("local"), memory.NewProgressMemory(), testCatalog(t))

	_, err := s.ToggleLesson(context.Background(), 1, 42)
	assert.ErrorIs(t, err, app_errors.ErrLessonNotFound)

	_, err = s.ToggleLesson(context.Background(), 9, 1)
	assert.ErrorIs(t, err, app_errors.ErrModuleNotFound)
}

func TestToggleLesson_SaveFailureIsSwallowed(t *testing.T) {
	repo := &brokenRepo{saveErr: errors.New("quota exceeded")}
	s := NewProgressService(logger.New("local"), repo, testCatalog(t))
	ctx := context.Background()

	set, err := s.ToggleLesson(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{3: true}, set)

	// Session state keeps serving even though durability is gone.
	assert.Equal(t, map[int]bool{3: true}, s.Completed(ctx, 1))
}

func TestCompleted_LoadFailureReadsEmpty(t *testing.T) {
	repo := &brokenRepo{loadErr: errors.New("storage corrupt")}
	s := NewProgressService(logger.New("local"), repo, testCatalog(t))

	assert.Empty(t, s.Completed(context.Background(), 1))
}

func TestToggleLesson_PreservesStaleIDs(t *testing.T) {
	repo := &brokenRepo{rec: models.ProgressRecord{1: {99: true}}}
	s := NewProgressService(logger.New("local"), repo, testCatalog(t))
	ctx := context.Background()

	set, err := s.ToggleLesson(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 99: true}, set)

	set, err = s.ToggleLesson(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{99: true}, set)
}

func TestWriteCompleted_FullReplace(t *testing.T) {
	s := NewProgressService(logger.New("local"), memory.NewProgressMemory(), testCatalog(t))
	ctx := context.Background()

	s.WriteCompleted(ctx, 1, map[int]bool{1: true, 2: true})
	assert.Equal(t, map[int]bool{1: true, 2: true}, s.Completed(ctx, 1))

	s.WriteCompleted(ctx, 1, map[int]bool{3: true})
	assert.Equal(t, map[int]bool{3: true}, s.Completed(ctx, 1))
}
