package catalog

import (
	"testing"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app_errors"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModules() []models.Module {
	return []models.Module{
		{
			ID: 1, Title: "First", LessonCount: 2,
			Lessons: []models.Lesson{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}},
		},
		{
			ID: 2, Title: "Second", LessonCount: 1,
			Lessons: []models.Lesson{{ID: 1, Title: "c"}},
		},
	}
}

func TestNew_Valid(t *testing.T) {
	c, err := New(validModules())
	require.NoError(t, err)

	assert.Len(t, c.Modules(), 2)
	assert.Equal(t, 3, c.TotalLessons())

	m, err := c.ModuleByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Second", m.Title)

	l, err := c.Lesson(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "b", l.Title)
}

func TestNew_LessonCountMismatch(t *testing.T) {
	modules := validModules()
	modules[0].LessonCount = 5

	_, err := New(modules)
	assert.ErrorContains(t, err, "lesson_count")
}

func TestNew_NonContiguousIDs(t *testing.T) {
	modules := validModules()
	modules[1].ID = 4

	_, err := New(modules)
	assert.ErrorContains(t, err, "contiguous")
}

func TestNew_DuplicateLessonIDs(t *testing.T) {
	modules := validModules()
	modules[0].Lessons[1].ID = 1

	_, err := New(modules)
	assert.ErrorContains(t, err, "duplicate lesson id")
}

func TestLookupMisses(t *testing.T) {
	c, err := New(validModules())
	require.NoError(t, err)

	_, err = c.ModuleByID(42)
	assert.ErrorIs(t, err, app_errors.ErrModuleNotFound)

	_, err = c.Lesson(1, 42)
	assert.ErrorIs(t, err, app_errors.ErrLessonNotFound)

	_, err = c.Lesson(42, 1)
	assert.ErrorIs(t, err, app_errors.ErrModuleNotFound)
}
