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

type ModuleQueryService interface {
	ModulePreviews(ctx context.Context, ent models.Entitlement, query string, limit, offset int) ([]models.ModulePreview, int, error)
	ModuleDetail(ctx context.Context, moduleID int, ent models.Entitlement) (*models.ModuleDetail, error)
}

type ModulesHandler struct {
	log        logger.Log
	service    ModuleQueryService
	defaultEnt models.Entitlement
}

func NewModulesHandler(log logger.Log, s ModuleQueryService, defaultEnt models.Entitlement) *ModulesHandler {
	return &ModulesHandler{
		log:        log,
		service:    s,
		defaultEnt: defaultEnt,
	}
}

func (h *ModulesHandler) ListModules(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 10
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			h.log.ErrorErr("invalid limit parameter", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	offset := 0
	if s := c.Query("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			h.log.ErrorErr("invalid offset parameter", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		offset = v
	}

	ent := RequestEntitlement(c, h.defaultEnt)
	previews, total, err := h.service.ModulePreviews(ctx, ent, c.Query("query"), limit, offset)
	if err != nil {
		h.log.ErrorErr("ListModules failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch modules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"modules": previews,
	})
}

func (h *ModulesHandler) ModuleByID(c *gin.Context) {
	moduleID, err := strconv.Atoi(c.Param("module_id"))
	if err != nil {
		h.log.ErrorErr("invalid module_id", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	ent := RequestEntitlement(c, h.defaultEnt)
	detail, err := h.service.ModuleDetail(c.Request.Context(), moduleID, ent)
	if err != nil {
		if errors.Is(err, app_errors.ErrModuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrModuleNotFound.Error()})
			return
		}
		h.log.ErrorErr("ModuleByID failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch module"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
