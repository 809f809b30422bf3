package child

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/meowcdd/internal/dto"
	"github.com/lshigami/meowcdd/internal/service"
	"github.com/lshigami/meowcdd/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChildService struct {
	service.ChildService
	created   dto.ChildRequestDTO
	listQuery dto.ChildQuery
	listPage  dto.PageQuery
}

func (s *stubChildService) CreateChild(req dto.ChildRequestDTO) (*dto.ChildResponseDTO, error) {
	s.created = req
	return &dto.ChildResponseDTO{ID: 1, FullName: req.FullName, Status: "ACTIVE"}, nil
}

func (s *stubChildService) GetChild(id uint) (*dto.ChildResponseDTO, error) {
	return nil, fmt.Errorf("child %d: %w", id, service.ErrNotFound)
}

func (s *stubChildService) ListChildren(query dto.ChildQuery, page dto.PageQuery) (*dto.PageResponseDTO[dto.ChildResponseDTO], error) {
	s.listQuery, s.listPage = query, page
	return dto.NewPageResponse[dto.ChildResponseDTO](nil, page.Page, 10, 0), nil
}

func (s *stubChildService) DeleteChild(id uint) error {
	return nil
}

func setup(t *testing.T) (*gin.Engine, *stubChildService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterGinValidators())
	stub := &stubChildService{}
	router := gin.New()
	NewChildController(stub).RegisterRoutes(router.Group("/api/v1"))
	return router, stub
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateChild(t *testing.T) {
	router, stub := setup(t)

	w := serve(router, http.MethodPost, "/api/v1/children",
		`{"parentId":"p1","fullName":"An","gender":"MALE","dateOfBirth":"2023-01-02"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "2023-01-02", stub.created.DateOfBirth)

	w = serve(router, http.MethodPost, "/api/v1/children",
		`{"parentId":"p1","fullName":"An","gender":"BOY","dateOfBirth":"2023-01-02"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(router, http.MethodPost, "/api/v1/children",
		`{"parentId":"p1","fullName":"An","gender":"MALE","dateOfBirth":"02/01/2023"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListChildren_BindsFilters(t *testing.T) {
	router, stub := setup(t)

	w := serve(router, http.MethodGet, "/api/v1/children?parentId=p1&status=ACTIVE&minAgeMonths=6&page=2&size=5&sortDir=asc", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "p1", stub.listQuery.ParentID)
	require.NotNil(t, stub.listQuery.MinAge)
	assert.Equal(t, 6, *stub.listQuery.MinAge)
	assert.Equal(t, 2, stub.listPage.Page)
	assert.Equal(t, 5, stub.listPage.Size)
	assert.Equal(t, "asc", stub.listPage.SortDir)

	w = serve(router, http.MethodGet, "/api/v1/children?sortDir=sideways", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndDeleteChild(t *testing.T) {
	router, _ := setup(t)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/v1/children/3", "").Code)
	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/api/v1/children/3", "").Code)
}
