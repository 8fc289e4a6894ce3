package handler

import (
	"mis/internal/middleware"
	"mis/internal/model"
	"mis/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects *service.ProjectService
	auth     *middleware.Auth
}

func NewProjectHandler(projects *service.ProjectService, auth *middleware.Auth) *ProjectHandler {
	return &ProjectHandler{projects: projects, auth: auth}
}

func (h *ProjectHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/projects")
	admin := h.auth.RequireLevel(model.LevelAdmin)
	{
		group.GET("", h.ListProjects)
		group.POST("/add", admin, h.CreateProject)
		group.PUT("/:id", admin, h.UpdateProject)
		group.DELETE("/:id", admin, h.DeleteProject)
	}
}

// ListProjects handles GET /api/projects
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        mainCategory  query     string  false  "Main category"
// @Param        subCategory   query     string  false  "Sub category"
// @Param        region        query     string  false  "Region"
// @Param        status        query     string  false  "Status"
// @Param        search        query     string  false  "Name, donor or description substring"
// @Param        limit         query     int     false  "Row limit (max 100)"
// @Success      200           {object}  response.Response{projects=[]model.Project}
// @Router       /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	listAs[model.Project](c, h.projects, "projects")
}

// CreateProject handles POST /api/projects/add
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        payload  body      model.Project  true  "Project"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /api/projects/add [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	createFrom(c, h.projects, "Project added successfully")
}

// UpdateProject handles PUT /api/projects/:id
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Project ID"
// @Param        payload  body      model.Project  true  "Project fields"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	updateFrom(c, h.projects, c.Param("id"), "Project updated successfully")
}

// DeleteProject handles DELETE /api/projects/:id
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	deleteBy(c, h.projects, c.Param("id"), "Project deleted successfully")
}
