package aggregate

import (
	"context"
	"math"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/catalog"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
)

type progressSource interface {
	Completed(ctx context.Context, moduleID int) map[int]bool
}

// ProgressAggregator derives completion percentages from the catalog and the
// progress record. Lesson ids in the record that the catalog does not know
// contribute nothing, so a stale record can never inflate a count.
type ProgressAggregator struct {
	log      logger.Log
	catalog  *catalog.Catalog
	progress progressSource
}

func NewProgressAggregator(log logger.Log, c *catalog.Catalog, p progressSource) *ProgressAggregator {
	return &ProgressAggregator{
		log:      log,
		catalog:  c,
		progress: p,
	}
}

func (a *ProgressAggregator) ModuleProgress(ctx context.Context, moduleID int) (models.ModuleProgress, error) {
	module, err := a.catalog.ModuleByID(moduleID)
	if err != nil {
		return models.ModuleProgress{}, err
	}

	completed := a.progress.Completed(ctx, moduleID)
	count := 0
	for _, l := range module.Lessons {
		if completed[l.ID] {
			count++
		}
	}

	return models.ModuleProgress{
		ModuleID:       moduleID,
		CompletedCount: count,
		LessonCount:    module.LessonCount,
		Percent:        percent(count, module.LessonCount),
		Status:         status(count, module.LessonCount),
	}, nil
}

func (a *ProgressAggregator) OverallProgress(ctx context.Context) models.OverallProgress {
	modules := a.catalog.Modules()
	out := models.OverallProgress{Modules: make([]models.ModuleProgress, 0, len(modules))}
	for _, m := range modules {
		mp, err := a.ModuleProgress(ctx, m.ID)
		if err != nil {
			a.log.ErrorErr("aggregate: module progress failed", err, "module_id", m.ID)
			continue
		}
		out.CompletedCount += mp.CompletedCount
		out.TotalCount += mp.LessonCount
		out.Modules = append(out.Modules, mp)
	}
	out.Percent = percent(out.CompletedCount, out.TotalCount)
	return out
}

func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

func status(completed, total int) string {
	switch {
	case completed == 0:
		return models.StatusNotStarted
	case completed == total && total > 0:
		return models.StatusCompleted
	default:
		return models.StatusInProgress
	}
}
