package entitlement

import (
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
)

// EntitlementGate decides which modules render as accessible. The lock is a
// presentation affordance, not an access-control mechanism: module content is
// reachable by direct navigation regardless of lock state.
type EntitlementGate struct {
	log     logger.Log
	preview map[int]bool
}

func NewEntitlementGate(log logger.Log, previewModules []int) *EntitlementGate {
	preview := make(map[int]bool, len(previewModules))
	for _, id := range previewModules {
		preview[id] = true
	}
	return &EntitlementGate{log: log, preview: preview}
}

// IsLocked reports whether the module is withheld for the given entitlement.
// full and vip unlock everything, starter unlocks only the module chosen at
// purchase time, anything else unlocks the preview set only.
func (g *EntitlementGate) IsLocked(moduleID int, ent models.Entitlement) bool {
	switch ent.Tier {
	case models.TierFull, models.TierVIP:
		return false
	case models.TierStarter:
		return moduleID != ent.ChosenModule
	default:
		return !g.preview[moduleID]
	}
}
