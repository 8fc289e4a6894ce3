package handler

import (
	"net/http"

	"mis/internal/middleware"
	"mis/internal/model"
	"mis/internal/service"
	"mis/internal/storage"
	"mis/pkg/response"

	"github.com/gin-gonic/gin"
)

// LibraryHandler serves documents and links
type LibraryHandler struct {
	library *service.LibraryService
	media   *service.MediaService
	auth    *middleware.Auth
}

func NewLibraryHandler(library *service.LibraryService, media *service.MediaService, auth *middleware.Auth) *LibraryHandler {
	return &LibraryHandler{library: library, media: media, auth: auth}
}

func (h *LibraryHandler) RegisterRoutes(router *gin.RouterGroup) {
	canAdd := h.auth.RequireCapability(model.CapAdd)
	canDelete := h.auth.RequireCapability(model.CapDelete)

	documents := router.Group("/api/documents")
	{
		documents.GET("", h.ListDocuments)
		documents.POST("/add", canAdd, h.AddDocument)
		documents.POST("/upload", canAdd, h.UploadDocuments)
		documents.DELETE("/:id", canDelete, h.DeleteDocument)
	}

	links := router.Group("/api/links")
	{
		links.GET("", h.ListLinks)
		links.POST("/add", canAdd, h.AddLink)
		links.DELETE("/:id", canDelete, h.DeleteLink)
	}
}

// ListDocuments handles GET /api/documents
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        mainCategory  query     string  false  "Main category"
// @Param        subCategory   query     string  false  "Sub category"
// @Param        search        query     string  false  "Title or description substring"
// @Success      200           {object}  response.Response{documents=[]model.Document}
// @Router       /api/documents [get]
func (h *LibraryHandler) ListDocuments(c *gin.Context) {
	listAs[model.Document](c, h.library.Documents, "documents")
}

// AddDocument handles POST /api/documents/add
// @Summary      Register a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        payload  body      model.Document  true  "Document metadata"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /api/documents/add [post]
func (h *LibraryHandler) AddDocument(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.library.AddDocument(c.Request.Context(), middleware.Actor(c), fields); err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Message("Document added successfully"))
}

// UploadDocuments handles POST /api/documents/upload
// @Summary      Upload documents
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        mainCategory  formData  string  true  "Main category"
// @Param        subCategory   formData  string  true  "Sub category"
// @Param        date          formData  string  true  "Document date (YYYY-MM-DD)"
// @Param        uploadedBy    formData  string  true  "Uploader"
// @Param        groupName     formData  string  true  "Group"
// @Param        files         formData  file    true  "Documents (max 10 MB each)"
// @Success      200           {object}  response.Response{files=[]service.FileResult}
// @Failure      400           {object}  response.Response
// @Router       /api/documents/upload [post]
func (h *LibraryHandler) UploadDocuments(c *gin.Context) {
	upload(c, h.media, storage.KindDocuments)
}

// DeleteDocument handles DELETE /api/documents/:id and removes an uploaded file with it
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Param        id   path      int  true  "Document ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/documents/{id} [delete]
func (h *LibraryHandler) DeleteDocument(c *gin.Context) {
	removeMedia(c, h.media, storage.KindDocuments, "Document deleted successfully")
}

// ListLinks handles GET /api/links
// @Summary      List links
// @Tags         links
// @Produce      json
// @Param        mainCategory  query     string  false  "Main category"
// @Param        subCategory   query     string  false  "Sub category"
// @Param        search        query     string  false  "Title, description or URL substring"
// @Success      200           {object}  response.Response{links=[]model.Link}
// @Router       /api/links [get]
func (h *LibraryHandler) ListLinks(c *gin.Context) {
	listAs[model.Link](c, h.library.Links, "links")
}

// AddLink handles POST /api/links/add
// @Summary      Add a link
// @Tags         links
// @Accept       json
// @Produce      json
// @Param        payload  body      model.Link  true  "Link"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/links/add [post]
func (h *LibraryHandler) AddLink(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.library.AddLink(c.Request.Context(), middleware.Actor(c), fields); err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Message("Link added successfully"))
}

// DeleteLink handles DELETE /api/links/:id
// @Summary      Delete a link
// @Tags         links
// @Produce      json
// @Param        id   path      int  true  "Link ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/links/{id} [delete]
func (h *LibraryHandler) DeleteLink(c *gin.Context) {
	deleteBy(c, h.library.Links, c.Param("id"), "Link deleted successfully")
}
