package catalog

import (
	"fmt"
	"log"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app_errors"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/ilyakaznacheev/cleanenv"
)

// Catalog is the static, read-only definition of modules and lessons. It is
// loaded once at startup; a lesson_count that disagrees with the lesson list
// is a content-authoring defect and refuses to load.
type Catalog struct {
	modules      []models.Module
	byID         map[int]models.Module
	totalLessons int
}

type catalogFile struct {
	Modules []models.Module `json:"modules"`
}

func MustLoad(path string) *Catalog {
	var file catalogFile
	if err := cleanenv.ReadConfig(path, &file); err != nil {
		log.Fatalf("Can not read catalog file %s", err)
	}
	c, err := New(file.Modules)
	if err != nil {
		log.Fatalf("Invalid catalog file %s: %s", path, err)
	}
	return c
}

func New(modules []models.Module) (*Catalog, error) {
	byID := make(map[int]models.Module, len(modules))
	total := 0
	for i, m := range modules {
		if m.ID != i+1 {
			return nil, fmt.Errorf("module ids must be contiguous from 1, got %d at position %d", m.ID, i)
		}
		if m.LessonCount != len(m.Lessons) {
			return nil, fmt.Errorf("module %d: lesson_count %d does not match %d lessons", m.ID, m.LessonCount, len(m.Lessons))
		}
		seen := make(map[int]bool, len(m.Lessons))
		for _, l := range m.Lessons {
			if seen[l.ID] {
				return nil, fmt.Errorf("module %d: duplicate lesson id %d", m.ID, l.ID)
			}
			seen[l.ID] = true
		}
		byID[m.ID] = m
		total += m.LessonCount
	}
	return &Catalog{modules: modules, byID: byID, totalLessons: total}, nil
}

func (c *Catalog) Modules() []models.Module {
	return c.modules
}

func (c *Catalog) ModuleByID(id int) (models.Module, error) {
	m, ok := c.byID[id]
	if !ok {
		return models.Module{}, app_errors.ErrModuleNotFound
	}
	return m, nil
}

func (c *Catalog) Lesson(moduleID, lessonID int) (models.Lesson, error) {
	m, err := c.ModuleByID(moduleID)
	if err != nil {
		return models.Lesson{}, err
	}
	for _, l := range m.Lessons {
		if l.ID == lessonID {
			return l, nil
		}
	}
	return models.Lesson{}, app_errors.ErrLessonNotFound
}

func (c *Catalog) TotalLessons() int {
	return c.totalLessons
}
