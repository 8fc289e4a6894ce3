package handler

import (
	"net/http"

	"mis/internal/middleware"
	"mis/internal/model"
	"mis/internal/service"
	"mis/internal/storage"
	"mis/pkg/apperror"
	"mis/pkg/response"

	"github.com/gin-gonic/gin"
)

// MediaHandler serves the upload-backed galleries: pictures and reports
type MediaHandler struct {
	media    *service.MediaService
	pictures lister[model.Picture]
	reports  lister[model.Report]
	auth     *middleware.Auth
}

func NewMediaHandler(media *service.MediaService, pictures lister[model.Picture], reports lister[model.Report], auth *middleware.Auth) *MediaHandler {
	return &MediaHandler{media: media, pictures: pictures, reports: reports, auth: auth}
}

func (h *MediaHandler) RegisterRoutes(router *gin.RouterGroup) {
	canAdd := h.auth.RequireCapability(model.CapAdd)
	canDelete := h.auth.RequireCapability(model.CapDelete)

	pictures := router.Group("/api/pictures")
	{
		pictures.GET("", h.ListPictures)
		pictures.POST("/upload", canAdd, h.UploadPictures)
		pictures.DELETE("/:id", canDelete, h.DeletePicture)
	}

	reports := router.Group("/api/reports")
	{
		reports.GET("", h.auth.RequireCapability(model.CapViewReports), h.ListReports)
		reports.POST("/upload", canAdd, h.UploadReports)
		reports.DELETE("/:id", canDelete, h.DeleteReport)
	}
}

// ListPictures handles GET /api/pictures
// @Summary      List pictures
// @Tags         pictures
// @Produce      json
// @Param        mainCategory  query     string  false  "Main category"
// @Param        subCategory   query     string  false  "Sub category"
// @Param        groupName     query     string  false  "Group"
// @Param        search        query     string  false  "Group or file name substring"
// @Success      200           {object}  response.Response{pictures=[]model.Picture}
// @Router       /api/pictures [get]
func (h *MediaHandler) ListPictures(c *gin.Context) {
	listAs(c, h.pictures, "pictures")
}

// UploadPictures handles POST /api/pictures/upload
// @Summary      Upload pictures
// @Description  Stores image attachments under category/sub-category/date/group and records each one
// @Tags         pictures
// @Accept       multipart/form-data
// @Produce      json
// @Param        mainCategory  formData  string  true  "Main category"
// @Param        subCategory   formData  string  true  "Sub category"
// @Param        date          formData  string  true  "Event date (YYYY-MM-DD)"
// @Param        uploadedBy    formData  string  true  "Uploader"
// @Param        groupName     formData  string  true  "Group"
// @Param        files         formData  file    true  "Images (max 10 MB each)"
// @Success      200           {object}  response.Response{files=[]service.FileResult}
// @Failure      400           {object}  response.Response
// @Failure      500           {object}  response.Response{files=[]service.FileResult}
// @Router       /api/pictures/upload [post]
func (h *MediaHandler) UploadPictures(c *gin.Context) {
	upload(c, h.media, storage.KindPictures)
}

// DeletePicture handles DELETE /api/pictures/:id
// @Summary      Delete a picture
// @Tags         pictures
// @Produce      json
// @Param        id   path      int  true  "Picture ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/pictures/{id} [delete]
func (h *MediaHandler) DeletePicture(c *gin.Context) {
	removeMedia(c, h.media, storage.KindPictures, "Picture deleted successfully")
}

// ListReports handles GET /api/reports
// @Summary      List reports
// @Tags         reports
// @Produce      json
// @Param        mainCategory  query     string  false  "Main category"
// @Param        subCategory   query     string  false  "Sub category"
// @Param        groupName     query     string  false  "Group"
// @Param        search        query     string  false  "Title, group or file name substring"
// @Success      200           {object}  response.Response{reports=[]model.Report}
// @Failure      403           {object}  response.Response
// @Router       /api/reports [get]
func (h *MediaHandler) ListReports(c *gin.Context) {
	listAs(c, h.reports, "reports")
}

// UploadReports handles POST /api/reports/upload
// @Summary      Upload reports
// @Description  Accepts pdf, word, excel, powerpoint and text attachments
// @Tags         reports
// @Accept       multipart/form-data
// @Produce      json
// @Param        mainCategory  formData  string  true  "Main category"
// @Param        subCategory   formData  string  true  "Sub category"
// @Param        date          formData  string  true  "Report date (YYYY-MM-DD)"
// @Param        uploadedBy    formData  string  true  "Uploader"
// @Param        groupName     formData  string  true  "Group"
// @Param        files         formData  file    true  "Documents (max 10 MB each)"
// @Success      200           {object}  response.Response{files=[]service.FileResult}
// @Failure      400           {object}  response.Response
// @Router       /api/reports/upload [post]
func (h *MediaHandler) UploadReports(c *gin.Context) {
	upload(c, h.media, storage.KindReports)
}

// DeleteReport handles DELETE /api/reports/:id
// @Summary      Delete a report
// @Tags         reports
// @Produce      json
// @Param        id   path      int  true  "Report ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/reports/{id} [delete]
func (h *MediaHandler) DeleteReport(c *gin.Context) {
	removeMedia(c, h.media, storage.KindReports, "Report deleted successfully")
}

func upload(c *gin.Context, media *service.MediaService, kind string) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, apperror.BadRequest("Invalid multipart form: "+err.Error()))
		return
	}

	req := service.UploadRequest{
		MainCategory: c.PostForm("mainCategory"),
		SubCategory:  c.PostForm("subCategory"),
		Date:         c.PostForm("date"),
		UploadedBy:   c.PostForm("uploadedBy"),
		GroupName:    c.PostForm("groupName"),
		Files:        form.File["files"],
	}

	result, err := media.Upload(c.Request.Context(), kind, middleware.Actor(c), req)
	if err != nil {
		if result == nil {
			response.Fail(c, err)
			return
		}
		c.JSON(apperror.Status(err), gin.H{
			"success": false,
			"message": result.Message(),
			"error":   err.Error(),
			"files":   result.Files,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message(),
		"files":   result.Files,
	})
}

func removeMedia(c *gin.Context, media *service.MediaService, kind, msg string) {
	if err := media.Delete(c.Request.Context(), kind, middleware.Actor(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, msg)
}
