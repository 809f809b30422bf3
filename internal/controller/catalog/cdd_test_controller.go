package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/meowcdd/internal/controller"
	"github.com/lshigami/meowcdd/internal/dto"
	"github.com/lshigami/meowcdd/internal/service"
)

type CDDTestController struct {
	testService service.CDDTestService
}

func NewCDDTestController(testService service.CDDTestService) *CDDTestController {
	return &CDDTestController{testService: testService}
}

func (c *CDDTestController) RegisterRoutes(api *gin.RouterGroup) {
	tests := api.Group("/cdd-tests")
	tests.POST("", c.CreateTest)
	tests.GET("", c.ListTests)
	tests.GET("/count", c.CountTests)
	tests.GET("/code/:code", c.GetTestByCode)
	tests.GET("/code/:code/exists", c.ExistsByCode)
	tests.GET("/for-child/:childId", c.ListTestsForChild)
	tests.GET("/:id", c.GetTest)
	tests.PUT("/:id", c.UpdateTest)
	tests.DELETE("/:id", c.DeleteTest)
}

// CreateTest godoc
// @Summary Create a CDD test
// @Tags CDD Tests
// @Accept json
// @Produce json
// @Param test body dto.CDDTestRequestDTO true "Test definition"
// @Success 201 {object} dto.CDDTestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "Assessment code already exists"
// @Router /cdd-tests [post]
func (c *CDDTestController) CreateTest(ctx *gin.Context) {
	var req dto.CDDTestRequestDTO
	if !controller.BindJSON(ctx, &req, "CreateTest") {
		return
	}
	resp, err := c.testService.CreateTest(req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create CDD test")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListTests godoc
// @Summary List CDD tests
// @Tags CDD Tests
// @Produce json
// @Param status query string false "Status" Enums(DRAFT, ACTIVE, INACTIVE, ARCHIVED)
// @Param category query string false "Category"
// @Param ageMonths query int false "Only tests whose age window contains this age"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param sortDir query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} dto.PageResponseDTO[dto.CDDTestResponseDTO]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /cdd-tests [get]
func (c *CDDTestController) ListTests(ctx *gin.Context) {
	var query dto.CDDTestQuery
	var page dto.PageQuery
	if !controller.BindQuery(ctx, "ListTests", &query, &page) {
		return
	}
	resp, err := c.testService.ListTests(query, page)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list CDD tests")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListTestsForChild godoc
// @Summary List the active CDD tests suitable for a child's age
// @Tags CDD Tests
// @Produce json
// @Param childId path int true "Child ID"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.PageResponseDTO[dto.CDDTestResponseDTO]
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Router /cdd-tests/for-child/{childId} [get]
func (c *CDDTestController) ListTestsForChild(ctx *gin.Context) {
	childID, ok := controller.ParseID(ctx, "childId", "child ID")
	if !ok {
		return
	}
	var page dto.PageQuery
	if !controller.BindQuery(ctx, "ListTestsForChild", &page) {
		return
	}
	resp, err := c.testService.ListTestsForChild(childID, page)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list CDD tests for child")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CountTests godoc
// @Summary Count CDD tests
// @Tags CDD Tests
// @Produce json
// @Param status query string false "Status" Enums(DRAFT, ACTIVE, INACTIVE, ARCHIVED)
// @Param category query string false "Category"
// @Param ageMonths query int false "Age in months"
// @Success 200 {object} dto.CountResponseDTO
// @Router /cdd-tests/count [get]
func (c *CDDTestController) CountTests(ctx *gin.Context) {
	var query dto.CDDTestQuery
	if !controller.BindQuery(ctx, "CountTests", &query) {
		return
	}
	count, err := c.testService.CountTests(query)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to count CDD tests")
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponseDTO{Count: count})
}

// GetTest godoc
// @Summary Get a CDD test
// @Tags CDD Tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.CDDTestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /cdd-tests/{id} [get]
func (c *CDDTestController) GetTest(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "test ID")
	if !ok {
		return
	}
	resp, err := c.testService.GetTest(id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to get CDD test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetTestByCode godoc
// @Summary Get a CDD test by assessment code
// @Tags CDD Tests
// @Produce json
// @Param code path string true "Assessment code"
// @Success 200 {object} dto.CDDTestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /cdd-tests/code/{code} [get]
func (c *CDDTestController) GetTestByCode(ctx *gin.Context) {
	resp, err := c.testService.GetTestByCode(ctx.Param("code"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to get CDD test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ExistsByCode godoc
// @Summary Check whether an assessment code is taken
// @Tags CDD Tests
// @Produce json
// @Param code path string true "Assessment code"
// @Success 200 {object} dto.ExistsResponseDTO
// @Router /cdd-tests/code/{code}/exists [get]
func (c *CDDTestController) ExistsByCode(ctx *gin.Context) {
	exists, err := c.testService.ExistsByCode(ctx.Param("code"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to check assessment code")
		return
	}
	ctx.JSON(http.StatusOK, dto.ExistsResponseDTO{Exists: exists})
}

// UpdateTest godoc
// @Summary Update a CDD test
// @Tags CDD Tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param test body dto.CDDTestRequestDTO true "Test definition"
// @Success 200 {object} dto.CDDTestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment code already exists"
// @Router /cdd-tests/{id} [put]
func (c *CDDTestController) UpdateTest(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "test ID")
	if !ok {
		return
	}
	var req dto.CDDTestRequestDTO
	if !controller.BindJSON(ctx, &req, "UpdateTest") {
		return
	}
	resp, err := c.testService.UpdateTest(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update CDD test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteTest godoc
// @Summary Delete a CDD test
// @Tags CDD Tests
// @Param id path int true "Test ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /cdd-tests/{id} [delete]
func (c *CDDTestController) DeleteTest(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "test ID")
	if !ok {
		return
	}
	if err := c.testService.DeleteTest(id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete CDD test")
		return
	}
	ctx.Status(http.StatusNoContent)
}
