package query

import (
	"context"
	"fmt"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/catalog"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
)

// Placeholder shown when a lesson ships without author notes.
const notesFallback = "Notes for this lesson are on the way."

type aggregateSource interface {
	ModuleProgress(ctx context.Context, moduleID int) (models.ModuleProgress, error)
}

type entitlementSource interface {
	IsLocked(moduleID int, ent models.Entitlement) bool
}

type progressSource interface {
	Completed(ctx context.Context, moduleID int) map[int]bool
}

type mediaRepo interface {
	DownloadURL(ctx context.Context, objectKey string) (string, error)
}

type searchRepo interface {
	Search(ctx context.Context, query string, size int) ([]int, error)
	Count(ctx context.Context, query string) (int, error)
}

// ModuleQueryService assembles the dashboard and module-detail views out of
// the catalog, the entitlement gate, the aggregator and the media store.
type ModuleQueryService struct {
	log       logger.Log
	catalog   *catalog.Catalog
	aggregate aggregateSource
	gate      entitlementSource
	progress  progressSource
	media     mediaRepo
	search    searchRepo
}

func NewModuleQueryService(log logger.Log, c *catalog.Catalog, a aggregateSource, g entitlementSource, p progressSource, m mediaRepo, s searchRepo) *ModuleQueryService {
	return &ModuleQueryService{
		log:       log,
		catalog:   c,
		aggregate: a,
		gate:      g,
		progress:  p,
		media:     m,
		search:    s,
	}
}

func (s *ModuleQueryService) ModulePreviews(ctx context.Context, ent models.Entitlement, query string, limit, offset int) ([]models.ModulePreview, int, error) {
	var modules []models.Module
	if query != "" {
		ids, err := s.search.Search(ctx, query, limit+offset)
		if err != nil {
			return nil, 0, fmt.Errorf("module search failed: %w", err)
		}
		if len(ids) > offset {
			ids = ids[offset:]
		} else {
			ids = nil
		}
		if len(ids) > limit {
			ids = ids[:limit]
		}
		for _, id := range ids {
			m, err := s.catalog.ModuleByID(id)
			if err != nil {
				s.log.ErrorErr("preview: search returned unknown module", err, "module_id", id)
				continue
			}
			modules = append(modules, m)
		}
	} else {
		all := s.catalog.Modules()
		if offset < len(all) {
			modules = all[offset:]
		}
		if limit > 0 && len(modules) > limit {
			modules = modules[:limit]
		}
	}

	total := len(s.catalog.Modules())
	if query != "" {
		var err error
		total, err = s.search.Count(ctx, query)
		if err != nil {
			return nil, 0, fmt.Errorf("module search count failed: %w", err)
		}
	}

	previews := make([]models.ModulePreview, 0, len(modules))
	for _, m := range modules {
		mp, err := s.aggregate.ModuleProgress(ctx, m.ID)
		if err != nil {
			s.log.ErrorErr("preview: failed to aggregate progress", err, "module_id", m.ID)
		}
		previews = append(previews, models.ModulePreview{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Emoji:       m.Emoji,
			CoverURL:    s.resolveURL(ctx, m.CoverKey),
			LessonCount: m.LessonCount,
			Locked:      s.gate.IsLocked(m.ID, ent),
			Progress:    mp,
		})
	}
	return previews, total, nil
}

// ModuleDetail returns the full module view. A locked module still returns
// its metadata with the locked flag raised and an upgrade call-to-action; the
// lock withholds the enter affordance, nothing more.
func (s *ModuleQueryService) ModuleDetail(ctx context.Context, moduleID int, ent models.Entitlement) (*models.ModuleDetail, error) {
	module, err := s.catalog.ModuleByID(moduleID)
	if err != nil {
		return nil, err
	}

	mp, err := s.aggregate.ModuleProgress(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	completed := s.progress.Completed(ctx, moduleID)
	locked := s.gate.IsLocked(moduleID, ent)

	lessons := make([]models.LessonView, 0, len(module.Lessons))
	for _, l := range module.Lessons {
		notes := l.AuthorNotes
		if notes == "" {
			notes = notesFallback
		}
		videoURL := ""
		if l.VideoKey != "" {
			videoURL = s.resolveURL(ctx, l.VideoKey)
		}
		lessons = append(lessons, models.LessonView{
			ID:          l.ID,
			Title:       l.Title,
			Duration:    l.Duration,
			VideoURL:    videoURL,
			ComingSoon:  videoURL == "",
			AuthorNotes: notes,
			Completed:   completed[l.ID],
			Resources:   s.resourceViews(ctx, l.Resources),
		})
	}

	return &models.ModuleDetail{
		ID:          module.ID,
		Title:       module.Title,
		Description: module.Description,
		Emoji:       module.Emoji,
		CoverURL:    s.resolveURL(ctx, module.CoverKey),
		Locked:      locked,
		UpgradeCTA:  locked,
		Lessons:     lessons,
		Resources:   s.resourceViews(ctx, module.Resources),
		Progress:    mp,
	}, nil
}

func (s *ModuleQueryService) resourceViews(ctx context.Context, resources []models.Resource) []models.ResourceView {
	views := make([]models.ResourceView, 0, len(resources))
	for _, r := range resources {
		u := ""
		if r.ObjectKey != "" {
			u = s.resolveURL(ctx, r.ObjectKey)
		}
		views = append(views, models.ResourceView{
			Title:       r.Title,
			DownloadURL: u,
			ComingSoon:  u == "",
		})
	}
	return views
}

// resolveURL presigns best effort: a missing key or a presign failure means
// "coming soon", never a broken link.
func (s *ModuleQueryService) resolveURL(ctx context.Context, objectKey string) string {
	if objectKey == "" {
		return ""
	}
	u, err := s.media.DownloadURL(ctx, objectKey)
	if err != nil {
		s.log.ErrorErr("failed to presign object", err, "object_key", objectKey)
		return ""
	}
	return u
}
