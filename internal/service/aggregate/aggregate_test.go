package aggregate

import (
	"context"
	"testing"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app_errors"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/catalog"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProgress struct {
	rec models.ProgressRecord
}

func (s *stubProgress) Completed(_ context.Context, moduleID int) map[int]bool {
	return s.rec.Completed(moduleID)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]models.Module{
		{
			ID: 1, Title: "First", LessonCount: 4,
			Lessons: []models.Lesson{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
		},
		{
			ID: 2, Title: "Second", LessonCount: 2,
			Lessons: []models.Lesson{{ID: 1}, {ID: 2}},
		},
		{
			ID: 3, Title: "Empty", LessonCount: 0,
		},
	})
	require.NoError(t, err)
	return c
}

func newAggregator(t *testing.T, rec models.ProgressRecord) *ProgressAggregator {
	t.Helper()
	return NewProgressAggregator(logger.New("local"), testCatalog(t), &stubProgress{rec: rec})
}

func TestModuleProgress_EmptyStore(t *testing.T) {
	a := newAggregator(t, models.ProgressRecord{})

	mp, err := a.ModuleProgress(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.ModuleProgress{
		ModuleID:       1,
		CompletedCount: 0,
		LessonCount:    4,
		Percent:        0,
		Status:         models.StatusNotStarted,
	}, mp)
}

func TestModuleProgress_Lifecycle(t *testing.T) {
	ctx := context.Background()

	a := newAggregator(t, models.ProgressRecord{1: {1: true, 2: true}})
	mp, err := a.ModuleProgress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, mp.CompletedCount)
	assert.Equal(t, 50, mp.Percent)
	assert.Equal(t, models.StatusInProgress, mp.Status)

	a = newAggregator(t, models.ProgressRecord{1: {1: true, 2: true, 3: true, 4: true}})
	mp, err = a.ModuleProgress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, mp.Percent)
	assert.Equal(t, models.StatusCompleted, mp.Status)
}

func TestModuleProgress_NeverExceedsLessonCount(t *testing.T) {
	// Record references lessons the catalog does not know about.
	a := newAggregator(t, models.ProgressRecord{1: {1: true, 2: true, 3: true, 4: true, 99: true, 100: true}})

	mp, err := a.ModuleProgress(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, mp.CompletedCount)
	assert.LessOrEqual(t, mp.CompletedCount, mp.LessonCount)
	assert.Equal(t, 100, mp.Percent)
}

func TestModuleProgress_ForeignIDsContributeNothing(t *testing.T) {
	a := newAggregator(t, models.ProgressRecord{2: {7: true, 8: true}})

	mp, err := a.ModuleProgress(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, mp.CompletedCount)
	assert.Equal(t, models.StatusNotStarted, mp.Status)
}

func TestModuleProgress_ZeroLessons(t *testing.T) {
	a := newAggregator(t, models.ProgressRecord{})

	mp, err := a.ModuleProgress(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0, mp.Percent)
	assert.Equal(t, models.StatusNotStarted, mp.Status)
}

func TestModuleProgress_UnknownModule(t *testing.T) {
	a := newAggregator(t, models.ProgressRecord{})

	_, err := a.ModuleProgress(context.Background(), 42)
	assert.ErrorIs(t, err, app_errors.ErrModuleNotFound)
}

func TestOverallProgress(t *testing.T) {
	a := newAggregator(t, models.ProgressRecord{
		1: {1: true, 2: true},
		2: {1: true},
	})

	overall := a.OverallProgress(context.Background())
	assert.Equal(t, 3, overall.CompletedCount)
	assert.Equal(t, 6, overall.TotalCount)
	// round(100 * 3 / 6)
	assert.Equal(t, 50, overall.Percent)
	assert.Len(t, overall.Modules, 3)
}

func TestOverallProgress_Rounding(t *testing.T) {
	a := newAggregator(t, models.ProgressRecord{1: {1: true}})

	overall := a.OverallProgress(context.Background())
	// round(100 * 1 / 6) = round(16.67) = 17
	assert.Equal(t, 17, overall.Percent)
}

func TestOverallProgress_NoLessonsAtAll(t *testing.T) {
	c, err := catalog.New([]models.Module{{ID: 1, Title: "Empty", LessonCount: 0}})
	require.NoError(t, err)
	a := NewProgressAggregator(logger.New("local"), c, &stubProgress{rec: models.ProgressRecord{}})

	overall := a.OverallProgress(context.Background())
	assert.Equal(t, 0, overall.TotalCount)
	assert.Equal(t, 0, overall.Percent)
}
