package child

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/meowcdd/internal/controller"
	"github.com/lshigami/meowcdd/internal/dto"
	"github.com/lshigami/meowcdd/internal/service"
)

type ChildController struct {
	childService service.ChildService
}

func NewChildController(childService service.ChildService) *ChildController {
	return &ChildController{childService: childService}
}

func (c *ChildController) RegisterRoutes(api *gin.RouterGroup) {
	children := api.Group("/children")
	children.POST("", c.CreateChild)
	children.GET("", c.ListChildren)
	children.GET("/:id", c.GetChild)
	children.PUT("/:id", c.UpdateChild)
	children.DELETE("/:id", c.DeleteChild)
}

// CreateChild godoc
// @Summary Register a child
// @Description currentAgeMonths is computed from dateOfBirth. status defaults to ACTIVE.
// @Tags Children
// @Accept json
// @Produce json
// @Param child body dto.ChildRequestDTO true "Child profile"
// @Success 201 {object} dto.ChildResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children [post]
func (c *ChildController) CreateChild(ctx *gin.Context) {
	var req dto.ChildRequestDTO
	if !controller.BindJSON(ctx, &req, "CreateChild") {
		return
	}
	resp, err := c.childService.CreateChild(req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create child")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListChildren godoc
// @Summary List children
// @Tags Children
// @Produce json
// @Param parentId query string false "Parent ID"
// @Param name query string false "Case-insensitive name fragment"
// @Param gender query string false "Gender" Enums(MALE, FEMALE, OTHER)
// @Param status query string false "Status" Enums(ACTIVE, INACTIVE, SUSPENDED)
// @Param minAgeMonths query int false "Minimum age in months"
// @Param maxAgeMonths query int false "Maximum age in months"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param sortDir query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} dto.PageResponseDTO[dto.ChildResponseDTO]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /children [get]
func (c *ChildController) ListChildren(ctx *gin.Context) {
	var query dto.ChildQuery
	var page dto.PageQuery
	if !controller.BindQuery(ctx, "ListChildren", &query, &page) {
		return
	}
	resp, err := c.childService.ListChildren(query, page)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list children")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetChild godoc
// @Summary Get a child
// @Tags Children
// @Produce json
// @Param id path int true "Child ID"
// @Success 200 {object} dto.ChildResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Router /children/{id} [get]
func (c *ChildController) GetChild(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "child ID")
	if !ok {
		return
	}
	resp, err := c.childService.GetChild(id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to get child")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateChild godoc
// @Summary Update a child
// @Tags Children
// @Accept json
// @Produce json
// @Param id path int true "Child ID"
// @Param child body dto.ChildRequestDTO true "Child profile"
// @Success 200 {object} dto.ChildResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Router /children/{id} [put]
func (c *ChildController) UpdateChild(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "child ID")
	if !ok {
		return
	}
	var req dto.ChildRequestDTO
	if !controller.BindJSON(ctx, &req, "UpdateChild") {
		return
	}
	resp, err := c.childService.UpdateChild(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update child")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteChild godoc
// @Summary Delete a child
// @Tags Children
// @Param id path int true "Child ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Router /children/{id} [delete]
func (c *ChildController) DeleteChild(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id", "child ID")
	if !ok {
		return
	}
	if err := c.childService.DeleteChild(id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete child")
		return
	}
	ctx.Status(http.StatusNoContent)
}
