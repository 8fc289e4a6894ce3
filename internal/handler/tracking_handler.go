package handler

import (
	"net/http"
	"time"

	"mis/internal/middleware"
	"mis/internal/model"
	"mis/internal/service"
	"mis/pkg/response"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	tracking *service.TrackingService
	auth     *middleware.Auth
}

func NewTrackingHandler(tracking *service.TrackingService, auth *middleware.Auth) *TrackingHandler {
	return &TrackingHandler{tracking: tracking, auth: auth}
}

func (h *TrackingHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/tracking-sheet")
	admin := h.auth.RequireLevel(model.LevelAdmin)
	{
		group.GET("", h.ListRows)
		group.GET("/export", h.auth.RequireSession(), h.ExportRows)
		group.POST("/add", admin, h.CreateRow)
		group.PUT("/update", admin, h.UpdateRow)
		group.DELETE("/delete", admin, h.DeleteRows)

		group.GET("/outputs", h.ListOutputs)
		group.POST("/outputs", admin, h.CreateOutput)
		group.PUT("/outputs/:id", admin, h.UpdateOutput)
		group.DELETE("/outputs/:id", admin, h.DeleteOutput)

		group.GET("/activities", h.ListActivities)
		group.POST("/activities", admin, h.CreateActivity)
		group.PUT("/activities/:id", admin, h.UpdateActivity)
		group.DELETE("/activities/:id", admin, h.DeleteActivity)

		group.GET("/sub-activities", h.ListSubActivities)
		group.POST("/sub-activities", admin, h.CreateSubActivity)
		group.PUT("/sub-activities/:id", admin, h.UpdateSubActivity)
		group.DELETE("/sub-activities/:id", admin, h.DeleteSubActivity)
	}
}

// ListRows handles GET /api/tracking-sheet
// @Summary      List tracking-sheet rows
// @Description  Sub-sub-activity rows, optionally narrowed to a node of the hierarchy
// @Tags         tracking
// @Produce      json
// @Param        outputId       query     string  false  "Output ID"
// @Param        activityId     query     string  false  "Activity ID"
// @Param        subActivityId  query     string  false  "Sub-activity ID"
// @Param        status         query     string  false  "Status"
// @Param        province       query     string  false  "Province"
// @Param        search         query     string  false  "Description, indicator or remarks substring"
// @Success      200            {object}  response.Response{rows=[]model.TrackingRow}
// @Router       /api/tracking-sheet [get]
func (h *TrackingHandler) ListRows(c *gin.Context) {
	listAs[model.TrackingRow](c, h.tracking.Rows, "rows")
}

// ExportRows handles GET /api/tracking-sheet/export
// @Summary      Export tracking sheet
// @Description  Streams the filtered rows as an xlsx workbook
// @Tags         tracking
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      401  {object}  response.Response
// @Router       /api/tracking-sheet/export [get]
func (h *TrackingHandler) ExportRows(c *gin.Context) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+service.ExportFileName(time.Now())+`"`)
	if err := h.tracking.Export(c.Request.Context(), queryParams(c), c.Writer); err != nil {
		// nothing has been written yet unless the workbook itself failed midway
		if !c.Writer.Written() {
			c.Header("Content-Disposition", "")
			c.Header("Content-Type", "")
			response.Fail(c, err)
			return
		}
		_ = c.Error(err)
	}
}

// CreateRow handles POST /api/tracking-sheet/add
// @Summary      Add a tracking-sheet row
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        payload  body      model.TrackingRow  true  "Row"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /api/tracking-sheet/add [post]
func (h *TrackingHandler) CreateRow(c *gin.Context) {
	createFrom(c, h.tracking.Rows, "Activity added successfully")
}

// UpdateRow handles PUT /api/tracking-sheet/update; the id travels in the body
// @Summary      Update a tracking-sheet row
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        payload  body      model.TrackingRow  true  "Row including subSubActivityId"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/tracking-sheet/update [put]
func (h *TrackingHandler) UpdateRow(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.tracking.UpdateRow(c.Request.Context(), middleware.Actor(c), fields); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Activity updated successfully")
}

// DeleteRows handles DELETE /api/tracking-sheet/delete
// @Summary      Delete tracking-sheet rows
// @Description  Deletes one row by id, or all rows below an output, activity or sub-activity
// @Tags         tracking
// @Produce      json
// @Param        id             query     string  false  "Sub-sub-activity ID"
// @Param        outputId       query     string  false  "Output ID"
// @Param        activityId     query     string  false  "Activity ID"
// @Param        subActivityId  query     string  false  "Sub-activity ID"
// @Success      200            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Router       /api/tracking-sheet/delete [delete]
func (h *TrackingHandler) DeleteRows(c *gin.Context) {
	n, err := h.tracking.DeleteRows(c.Request.Context(), middleware.Actor(c), queryParams(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Activity deleted successfully",
		"deleted": n,
	})
}

// ListOutputs handles GET /api/tracking-sheet/outputs
// @Summary      List outputs
// @Tags         tracking
// @Produce      json
// @Param        search  query     string  false  "Name or description substring"
// @Success      200     {object}  response.Response{outputs=[]model.TrackingOutput}
// @Router       /api/tracking-sheet/outputs [get]
func (h *TrackingHandler) ListOutputs(c *gin.Context) {
	listAs[model.TrackingOutput](c, h.tracking.Outputs, "outputs")
}

// CreateOutput handles POST /api/tracking-sheet/outputs
// @Summary      Add an output
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        payload  body      model.TrackingOutput  true  "Output"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/tracking-sheet/outputs [post]
func (h *TrackingHandler) CreateOutput(c *gin.Context) {
	createFrom(c, h.tracking.Outputs, "Output added successfully")
}

func (h *TrackingHandler) UpdateOutput(c *gin.Context) {
	updateFrom(c, h.tracking.Outputs, c.Param("id"), "Output updated successfully")
}

// DeleteOutput cascades to the activities, sub-activities and rows below it
func (h *TrackingHandler) DeleteOutput(c *gin.Context) {
	deleteBy(c, h.tracking.Outputs, c.Param("id"), "Output deleted successfully")
}

// ListActivities handles GET /api/tracking-sheet/activities
// @Summary      List activities
// @Tags         tracking
// @Produce      json
// @Param        outputId  query     string  false  "Output ID"
// @Param        search    query     string  false  "Name substring"
// @Success      200       {object}  response.Response{activities=[]model.TrackingActivity}
// @Router       /api/tracking-sheet/activities [get]
func (h *TrackingHandler) ListActivities(c *gin.Context) {
	listAs[model.TrackingActivity](c, h.tracking.Activities, "activities")
}

// CreateActivity handles POST /api/tracking-sheet/activities
// @Summary      Add an activity
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        payload  body      model.TrackingActivity  true  "Activity"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/tracking-sheet/activities [post]
func (h *TrackingHandler) CreateActivity(c *gin.Context) {
	createFrom(c, h.tracking.Activities, "Activity added successfully")
}

func (h *TrackingHandler) UpdateActivity(c *gin.Context) {
	updateFrom(c, h.tracking.Activities, c.Param("id"), "Activity updated successfully")
}

func (h *TrackingHandler) DeleteActivity(c *gin.Context) {
	deleteBy(c, h.tracking.Activities, c.Param("id"), "Activity deleted successfully")
}

// ListSubActivities handles GET /api/tracking-sheet/sub-activities
// @Summary      List sub-activities
// @Tags         tracking
// @Produce      json
// @Param        activityId  query     string  false  "Activity ID"
// @Param        search      query     string  false  "Name substring"
// @Success      200         {object}  response.Response{subActivities=[]model.TrackingSubActivity}
// @Router       /api/tracking-sheet/sub-activities [get]
func (h *TrackingHandler) ListSubActivities(c *gin.Context) {
	listAs[model.TrackingSubActivity](c, h.tracking.SubActivities, "subActivities")
}

// CreateSubActivity handles POST /api/tracking-sheet/sub-activities
// @Summary      Add a sub-activity
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        payload  body      model.TrackingSubActivity  true  "Sub-activity"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/tracking-sheet/sub-activities [post]
func (h *TrackingHandler) CreateSubActivity(c *gin.Context) {
	createFrom(c, h.tracking.SubActivities, "Sub-activity added successfully")
}

func (h *TrackingHandler) UpdateSubActivity(c *gin.Context) {
	updateFrom(c, h.tracking.SubActivities, c.Param("id"), "Sub-activity updated successfully")
}

func (h *TrackingHandler) DeleteSubActivity(c *gin.Context) {
	deleteBy(c, h.tracking.SubActivities, c.Param("id"), "Sub-activity deleted successfully")
}
