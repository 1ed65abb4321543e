package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	EntitlementCtx = "entitlement"
	RequestIDCtx   = "request_id"

	tierHeader   = "X-Client-Tier"
	moduleHeader = "X-Client-Module"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDCtx, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// EntitlementMiddleware resolves the advisory entitlement for the request.
// The headers are unverified on purpose: locking is a presentation
// affordance, not access control.
func EntitlementMiddleware(defaultEnt models.Entitlement) gin.HandlerFunc {
	return func(c *gin.Context) {
		ent := defaultEnt
		if tier := c.GetHeader(tierHeader); tier != "" {
			ent.Tier = tier
		}
		if raw := c.GetHeader(moduleHeader); raw != "" {
			if id, err := strconv.Atoi(raw); err == nil && id > 0 {
				ent.ChosenModule = id
			}
		}
		c.Set(EntitlementCtx, ent)
		c.Next()
	}
}

func RequestEntitlement(c *gin.Context, fallback models.Entitlement) models.Entitlement {
	v, ok := c.Get(EntitlementCtx)
	if !ok {
		return fallback
	}
	ent, ok := v.(models.Entitlement)
	if !ok {
		return fallback
	}
	return ent
}

func LoggingMiddleware(logger logger.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path
		rawQuery := c.Request.URL.RawQuery
		if rawQuery != "" {
			path = fmt.Sprintf("%s?%s", path, rawQuery)
		}
		status := c.Writer.Status()

		msg := fmt.Sprintf("%s %s", method, path)

		logger.Info(msg,
			"status", status,
			"latency", latency,
			"client_ip", clientIP,
			"request_id", c.GetString(RequestIDCtx),
		)

		for _, ginErr := range c.Errors {
			logger.ErrorErr("HTTP request error", ginErr.Err,
				"status", status,
				"method", method,
				"path", path,
			)
		}
	}
}
