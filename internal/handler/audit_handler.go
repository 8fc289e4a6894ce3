package handler

import (
	"net/http"

	"mis/internal/middleware"
	"mis/internal/model"
	"mis/internal/service"
	"mis/pkg/pagination"
	"mis/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
	auth         *middleware.Auth
}

func NewAuditHandler(auditService service.AuditService, auth *middleware.Auth) *AuditHandler {
	return &AuditHandler{auditService: auditService, auth: auth}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	group.Use(h.auth.RequireLevel(model.LevelAdmin))
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs retrieves paginated audit entries, newest first
// @Summary      Get audit logs
// @Description  Retrieves who changed what and when, optionally for one entity
// @Tags         audit
// @Produce      json
// @Param        entity  query     string  false  "Entity, e.g. projects"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{logs=[]service.AuditLogResponse}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), c.Query("entity"), p.Page, p.Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logs":    logs,
		"total":   total,
		"page":    p.Page,
		"limit":   p.Limit,
	})
}
