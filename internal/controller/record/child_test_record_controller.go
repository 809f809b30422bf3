package record

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/meowcdd/internal/controller"
	"github.com/lshigami/meowcdd/internal/dto"
	"github.com/lshigami/meowcdd/internal/service"
	"github.com/rs/zerolog/log"
)

type ChildTestRecordController struct {
	recordService service.ChildTestRecordService
}

func NewChildTestRecordController(recordService service.ChildTestRecordService) *ChildTestRecordController {
	return &ChildTestRecordController{recordService: recordService}
}

func (c *ChildTestRecordController) RegisterRoutes(api *gin.RouterGroup) {
	records := api.Group("/child-test-records")
	records.POST("", c.CreateRecord)
	records.GET("", c.ListRecords)
	records.GET("/:id", c.GetRecord)
	records.GET("/external/:externalId", c.GetRecordByExternalID)
	records.PUT("/:id", c.ReplaceRecord)
	records.PATCH("/:id", c.PatchRecord)
	records.DELETE("/:id", c.DeleteRecord)
	records.GET("/exists/:externalId", c.ExistsByExternalID)
	records.GET("/child/:childId/test/:testId/exists", c.ExistsByChildAndTest)
	records.GET("/child/:childId/summary", c.GetChildSummary)
	records.POST("/:id/interpretation", c.GenerateInterpretation)
}

// CreateRecord godoc
// @Summary Create a child test record
// @Description Stores a test result. percentageScore and resultLevel are computed by the server from totalScore and maxScore.
// @Tags Child Test Records
// @Accept json
// @Produce json
// @Param record body dto.ChildTestRecordRequestDTO true "Test record"
// @Success 201 {object} dto.ChildTestRecordResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "External ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /child-test-records [post]
func (c *ChildTestRecordController) CreateRecord(ctx *gin.Context) {
	var req dto.ChildTestRecordRequestDTO
	if !controller.BindJSON(ctx, &req, "CreateRecord") {
		return
	}
	resp, err := c.recordService.CreateRecord(req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create child test record")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListRecords godoc
// @Summary List child test records
// @Description Paged listing with optional filters. page is zero-based.
// @Tags Child Test Records
// @Produce json
// @Param childId query int false "Child ID"
// @Param testId query int false "Test ID"
// @Param testType query string false "Test type" Enums(CDD_TEST, ASSESSMENT_TEST)
// @Param status query string false "Record status" Enums(IN_PROGRESS, COMPLETED, ABANDONED, INVALID, REVIEWED)
// @Param resultLevel query string false "Result level" Enums(EXCELLENT, GOOD, AVERAGE, BELOW_AVERAGE, POOR)
// @Param assessor query string false "Assessor"
// @Param environment query string false "Environment"
// @Param parentPresent query bool false "Parent present"
// @Param from query string false "Test date lower bound (RFC3339)"
// @Param to query string false "Test date upper bound (RFC3339)"
// @Param minScore query number false "Minimum percentage score"
// @Param maxScore query number false "Maximum percentage score"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" default(testDate)
// @Param sortDir query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} dto.PageResponseDTO[dto.ChildTestRecordResponseDTO]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /child-test-records [get]
func (c *ChildTestRecordController) ListRecords(ctx *gin.Context) {
	var query dto.ChildTestRecordQuery
	var page dto.PageQuery
	if !controller.BindQuery(ctx, "ListRecords", &query, &page) {
		return
	}
	resp, err := c.recordService.ListRecords(query, page)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list child test records")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetRecord godoc
// @Summary Get a child test record
// @Tags Child Test Records
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} dto.ChildTestRecordResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /child-test-records/{id} [get]
func (c *ChildTestRecordController) GetRecord(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "record ID")
	if !ok {
		return
	}
	resp, err := c.recordService.GetRecord(id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to get child test record")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetRecordByExternalID godoc
// @Summary Get a child test record by external ID
// @Tags Child Test Records
// @Produce json
// @Param externalId path string true "External ID"
// @Success 200 {object} dto.ChildTestRecordResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /child-test-records/external/{externalId} [get]
func (c *ChildTestRecordController) GetRecordByExternalID(ctx *gin.Context) {
	resp, err := c.recordService.GetRecordByExternalID(ctx.Param("externalId"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to get child test record")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ReplaceRecord godoc
// @Summary Replace a child test record
// @Description Overwrites the caller-owned fields. Omitted status and testDate keep their stored values.
// @Tags Child Test Records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param record body dto.ChildTestRecordRequestDTO true "Test record"
// @Success 200 {object} dto.ChildTestRecordResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "External ID already exists"
// @Router /child-test-records/{id} [put]
func (c *ChildTestRecordController) ReplaceRecord(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "record ID")
	if !ok {
		return
	}
	var req dto.ChildTestRecordRequestDTO
	if !controller.BindJSON(ctx, &req, "ReplaceRecord") {
		return
	}
	resp, err := c.recordService.ReplaceRecord(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update child test record")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// PatchRecord godoc
// @Summary Partially update a child test record
// @Tags Child Test Records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param record body dto.ChildTestRecordPatchDTO true "Fields to change"
// @Success 200 {object} dto.ChildTestRecordResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "External ID already exists"
// @Router /child-test-records/{id} [patch]
func (c *ChildTestRecordController) PatchRecord(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "record ID")
	if !ok {
		return
	}
	var req dto.ChildTestRecordPatchDTO
	if !controller.BindJSON(ctx, &req, "PatchRecord") {
		return
	}
	resp, err := c.recordService.PatchRecord(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update child test record")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteRecord godoc
// @Summary Delete a child test record
// @Tags Child Test Records
// @Param id path int true "Record ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /child-test-records/{id} [delete]
func (c *ChildTestRecordController) DeleteRecord(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "record ID")
	if !ok {
		return
	}
	if err := c.recordService.DeleteRecord(id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete child test record")
		return
	}
	log.Info().Uint("recordID", id).Msg("Child test record deleted")
	ctx.Status(http.StatusNoContent)
}

// ExistsByExternalID godoc
// @Summary Check whether an external ID is taken
// @Tags Child Test Records
// @Produce json
// @Param externalId path string true "External ID"
// @Success 200 {object} dto.ExistsResponseDTO
// @Router /child-test-records/exists/{externalId} [get]
func (c *ChildTestRecordController) ExistsByExternalID(ctx *gin.Context) {
	exists, err := c.recordService.ExistsByExternalID(ctx.Param("externalId"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to check external ID")
		return
	}
	ctx.JSON(http.StatusOK, dto.ExistsResponseDTO{Exists: exists})
}

// ExistsByChildAndTest godoc
// @Summary Check whether a child has a record for a test
// @Tags Child Test Records
// @Produce json
// @Param childId path int true "Child ID"
// @Param testId path int true "Test ID"
// @Success 200 {object} dto.ExistsResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /child-test-records/child/{childId}/test/{testId}/exists [get]
func (c *ChildTestRecordController) ExistsByChildAndTest(ctx *gin.Context) {
	childID, ok := controller.ParseID(ctx, "childId", "child ID")
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "testId", "test ID")
	if !ok {
		return
	}
	exists, err := c.recordService.ExistsByChildAndTest(childID, testID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to check child test record")
		return
	}
	ctx.JSON(http.StatusOK, dto.ExistsResponseDTO{Exists: exists})
}

// GetChildSummary godoc
// @Summary Summarise a child's completed tests
// @Description Completed count, average percentage of COMPLETED records and the latest test date.
// @Tags Child Test Records
// @Produce json
// @Param childId path int true "Child ID"
// @Success 200 {object} dto.ChildTestSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /child-test-records/child/{childId}/summary [get]
func (c *ChildTestRecordController) GetChildSummary(ctx *gin.Context) {
	childID, ok := controller.ParseID(ctx, "childId", "child ID")
	if !ok {
		return
	}
	resp, err := c.recordService.GetChildSummary(childID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to summarise child test records")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GenerateInterpretation godoc
// @Summary Generate the interpretation text of a record
// @Description Uses Gemini when configured, otherwise a template based on the result level. Scores are not changed.
// @Tags Child Test Records
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} dto.ChildTestRecordResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /child-test-records/{id}/interpretation [post]
func (c *ChildTestRecordController) GenerateInterpretation(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "record ID")
	if !ok {
		return
	}
	resp, err := c.recordService.GenerateInterpretation(id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to generate interpretation")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
