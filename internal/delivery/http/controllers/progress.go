package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app_errors"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ProgressService interface {
	ToggleLesson(ctx context.Context, moduleID, lessonID int) (map[int]bool, error)
}

type ProgressAggregator interface {
	OverallProgress(ctx context.Context) models.OverallProgress
	ModuleProgress(ctx context.Context, moduleID int) (models.ModuleProgress, error)
}

type ProgressHandler struct {
	log       logger.Log
	progress  ProgressService
	aggregate ProgressAggregator
}

func NewProgressHandler(log logger.Log, p ProgressService, a ProgressAggregator) *ProgressHandler {
	return &ProgressHandler{
		log:       log,
		progress:  p,
		aggregate: a,
	}
}

// ToggleLesson flips one lesson's completion and answers with the module's
// refreshed progress. Persistence trouble never surfaces here: the session
// state is updated either way.
func (h *ProgressHandler) ToggleLesson(c *gin.Context) {
	moduleID, err := strconv.Atoi(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}
	lessonID, err := strconv.Atoi(c.Param("lesson_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson_id"})
		return
	}

	ctx := c.Request.Context()
	completed, err := h.progress.ToggleLesson(ctx, moduleID, lessonID)
	if err != nil {
		if errors.Is(err, app_errors.ErrModuleNotFound) || errors.Is(err, app_errors.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("ToggleLesson failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not toggle lesson"})
		return
	}

	mp, err := h.aggregate.ModuleProgress(ctx, moduleID)
	if err != nil {
		h.log.ErrorErr("ToggleLesson: aggregate failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute progress"})
		return
	}

	ids := make([]int, 0, len(completed))
	for id := range completed {
		ids = append(ids, id)
	}
	c.JSON(http.StatusOK, gin.H{
		"completed_lessons": ids,
		"progress":          mp,
	})
}

func (h *ProgressHandler) Overall(c *gin.Context) {
	c.JSON(http.StatusOK, h.aggregate.OverallProgress(c.Request.Context()))
}
