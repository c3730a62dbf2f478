package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobfinder/search-service/internal/jsearch"
	"jobfinder/search-service/internal/models"
	"jobfinder/search-service/internal/services"
)

type stubSearcher struct {
	items    []jsearch.JobItem
	err      error
	gotQuery string
	gotPage  int
}

func (s *stubSearcher) Search(_ context.Context, query string, page int) ([]jsearch.JobItem, error) {
	s.gotQuery = query
	s.gotPage = page
	return s.items, s.err
}

func newTestRouter(stub *stubSearcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewJobHandler(services.NewJobService(stub, zap.NewNop()))
	r := gin.New()
	r.GET("/api/v1/jobs", handler.SearchJobs)
	r.GET("/api/v1/health", HealthCheck)
	return r
}

func doGet(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchJobs_MissingRole(t *testing.T) {
	w := doGet(t, newTestRouter(&stubSearcher{}), "/api/v1/jobs")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestSearchJobs_RoleTooShort(t *testing.T) {
	w := doGet(t, newTestRouter(&stubSearcher{}), "/api/v1/jobs?role=j")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchJobs_SizeOutOfRange(t *testing.T) {
	w := doGet(t, newTestRouter(&stubSearcher{}), "/api/v1/jobs?role=Java+Developer&size=51")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(t, newTestRouter(&stubSearcher{}), "/api/v1/jobs?role=Java+Developer&size=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchJobs_PageOutOfRange(t *testing.T) {
	w := doGet(t, newTestRouter(&stubSearcher{}), "/api/v1/jobs?role=Java+Developer&page=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchJobs_DefaultsApplied(t *testing.T) {
	stub := &stubSearcher{}
	w := doGet(t, newTestRouter(stub), "/api/v1/jobs?role=Java+Developer")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.gotPage) // page defaults to 1
	assert.Equal(t, "Java Developer in India", stub.gotQuery)
}

func TestSearchJobs_ReturnsNormalizedJobs(t *testing.T) {
	stub := &stubSearcher{items: []jsearch.JobItem{
		{Title: "Java Developer", EmployerName: "Acme", City: "Pune, Maharashtra"},
		{Title: "Backend Engineer", EmployerName: "Beta"},
	}}
	w := doGet(t, newTestRouter(stub), "/api/v1/jobs?role=Java+Developer&city=Pune&exp_min=1&exp_max=3")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Java Developer in Pune, India", stub.gotQuery)

	var jobs []models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, "Java Developer", jobs[0].Title)
	require.NotNil(t, jobs[0].City)
	assert.Equal(t, "Pune", *jobs[0].City)
	assert.Equal(t, "jsearch", jobs[0].Source)
	require.NotNil(t, jobs[0].ExpMin)
	assert.Equal(t, 1, *jobs[0].ExpMin)
	require.NotNil(t, jobs[0].ExpMax)
	assert.Equal(t, 3, *jobs[0].ExpMax)
}

func TestSearchJobs_UpstreamRateLimitReturnsEmptyArray(t *testing.T) {
	stub := &stubSearcher{err: jsearch.ErrRateLimited}
	w := doGet(t, newTestRouter(stub), "/api/v1/jobs?role=Java+Developer")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String()) // empty array, not null, not an error
}

func TestHealthCheck(t *testing.T) {
	w := doGet(t, newTestRouter(&stubSearcher{}), "/api/v1/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
