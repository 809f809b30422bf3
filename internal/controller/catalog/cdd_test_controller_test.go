package catalog

import (
	"bytes"
	"encoding/json"
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

type stubCDDTestService struct {
	service.CDDTestService
	countQuery dto.CDDTestQuery
	forChild   uint
}

func (s *stubCDDTestService) CreateTest(req dto.CDDTestRequestDTO) (*dto.CDDTestResponseDTO, error) {
	if req.AssessmentCode == "TAKEN" {
		return nil, fmt.Errorf("code %s: %w", req.AssessmentCode, service.ErrDuplicate)
	}
	return &dto.CDDTestResponseDTO{ID: 1, AssessmentCode: req.AssessmentCode, Names: req.Names}, nil
}

func (s *stubCDDTestService) GetTestByCode(code string) (*dto.CDDTestResponseDTO, error) {
	return &dto.CDDTestResponseDTO{ID: 4, AssessmentCode: code}, nil
}

func (s *stubCDDTestService) CountTests(query dto.CDDTestQuery) (int64, error) {
	s.countQuery = query
	return 7, nil
}

func (s *stubCDDTestService) ListTestsForChild(childID uint, page dto.PageQuery) (*dto.PageResponseDTO[dto.CDDTestResponseDTO], error) {
	s.forChild = childID
	return dto.NewPageResponse([]dto.CDDTestResponseDTO{{ID: 1}}, 0, 10, 1), nil
}

func setup(t *testing.T) (*gin.Engine, *stubCDDTestService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterGinValidators())
	stub := &stubCDDTestService{}
	router := gin.New()
	NewCDDTestController(stub).RegisterRoutes(router.Group("/api/v1"))
	return router, stub
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTest(t *testing.T) {
	router, _ := setup(t)

	w := serve(router, http.MethodPost, "/api/v1/cdd-tests", `{"assessmentCode":"ASQ-3","names":{"vi":"ASQ","en":"ASQ"},"status":"ACTIVE"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CDDTestResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ASQ", resp.Names["en"])

	w = serve(router, http.MethodPost, "/api/v1/cdd-tests", `{"assessmentCode":"TAKEN","names":{"vi":"x"}}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(router, http.MethodPost, "/api/v1/cdd-tests", `{"assessmentCode":"X","names":{}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(router, http.MethodPost, "/api/v1/cdd-tests", `{"assessmentCode":"X","names":{"vi":"x"},"status":"LIVE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountAndCodeRoutes(t *testing.T) {
	router, stub := setup(t)

	w := serve(router, http.MethodGet, "/api/v1/cdd-tests/count?status=ACTIVE&ageMonths=18", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"count":7}`, w.Body.String())
	assert.Equal(t, "ACTIVE", stub.countQuery.Status)
	require.NotNil(t, stub.countQuery.AgeMonths)
	assert.Equal(t, 18, *stub.countQuery.AgeMonths)

	w = serve(router, http.MethodGet, "/api/v1/cdd-tests/code/M-CHAT", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"assessmentCode":"M-CHAT"`)

	w = serve(router, http.MethodGet, "/api/v1/cdd-tests/for-child/12", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(12), stub.forChild)
}
