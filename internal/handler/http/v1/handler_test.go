package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/city_incidents/internal/config"
	"github.com/shenikar/city_incidents/internal/filter"
	"github.com/shenikar/city_incidents/internal/models"
	"github.com/shenikar/city_incidents/internal/service"
	"github.com/shenikar/city_incidents/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware(), LoggerMiddleware(logger))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testIncident() *models.Incident {
	return &models.Incident{
		ID:        1,
		Title:     "Пожар на Подоле",
		Category:  "Fire",
		Severity:  models.SeverityHigh,
		CreatedAt: "2024-01-10T10:00:00Z",
		Location:  models.Location{Lat: models.NewCoordinate(50.46), Lng: models.Coordinate{Raw: "n/a"}},
	}
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q service.ListQuery) (*service.IncidentPage, error) {
			assert.Equal(t, []string{"Fire", "Flooding"}, q.Criteria.Categories)
			assert.Equal(t, models.SeverityHigh, q.Criteria.Severity)
			require.NotNil(t, q.Criteria.DateFrom)
			require.NotNil(t, q.Criteria.DateTo)
			assert.Equal(t, "подол", q.Criteria.Search)
			assert.Equal(t, service.SortOrder{Field: "severity", Desc: true}, q.Sort)
			assert.Equal(t, 2, q.Page)
			assert.Equal(t, 5, q.PageSize)
			return &service.IncidentPage{Items: []models.Incident{*testIncident()}, Total: 6, Page: 2, PageSize: 5}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?category=Fire&category=Flooding&severity=4&dateFrom=2024-01-01&dateTo=2024-01-31&search=%D0%BF%D0%BE%D0%B4%D0%BE%D0%BB&page=2&pageSize=5&sortBy=severity&order=desc")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "high", resp.Items[0].SeverityLabel)
	assert.Equal(t, "High", resp.Items[0].SeverityText)
	assert.Equal(t, 50.46, resp.Items[0].Location.Lat)
	assert.Equal(t, "n/a", resp.Items[0].Location.Lng)
}

func TestListIncidents_NoFilters(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidents(gomock.Any(), service.ListQuery{}).
		Return(&service.IncidentPage{Items: []models.Incident{}, Page: 1, PageSize: 10}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?severity=&category=")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items": [], "total": 0, "page": 1, "pageSize": 10}`, w.Body.String())
}

func TestListIncidents_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents?severity=7")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Severity' failed on the 'oneof' tag")
}

func TestListIncidents_InvalidSort(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?sortBy=location")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'SortBy' failed on the 'oneof' tag")
}

func TestListIncidents_InvalidPage(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?page=first")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid query parameters")
}

func TestListIncidents_HugePageNumber(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q service.ListQuery) (*service.IncidentPage, error) {
			assert.Equal(t, math.MaxInt, q.Page)
			return &service.IncidentPage{Items: []models.Incident{}, Total: 3, Page: q.Page, PageSize: q.PageSize}, nil
		}).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents?page=%d&pageSize=10", math.MaxInt))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_PageSizeAboveConfiguredLimit(t *testing.T) {
	handler, mockService, _ := newTestHandler(t)
	handler.cfg.MaxPageSize = 20

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?pageSize=50")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pageSize must not exceed 20")
}

func TestListIncidents_PageSizeAtConfiguredLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q service.ListQuery) (*service.IncidentPage, error) {
			assert.Equal(t, 100, q.PageSize)
			return &service.IncidentPage{Items: []models.Incident{}, Page: 1, PageSize: 100}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?pageSize=100")
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "GET", "/api/v1/incidents?pageSize=101")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pageSize must not exceed 100")
}

func TestListIncidents_InvalidDate(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?dateFrom=31.12.2024")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), filter.ErrInvalidCriteria.Error())
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to list incidents")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := testIncident()

	mockService.EXPECT().GetIncident(gomock.Any(), 1).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/1")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.ID, resp.ID)
	assert.Equal(t, expected.Title, resp.Title)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not get incident: %w", models.ErrIncidentNotFound)

	mockService.EXPECT().GetIncident(gomock.Any(), 42).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/42")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), 42).Return(nil, errors.New("database error")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/42")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetMarkers_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetMarkers(gomock.Any(), filter.Criteria{Categories: []string{"Fire"}}).
		Return(&service.MarkerSet{
			Markers:  []service.Marker{{IncidentID: 1, Title: "Пожар", Category: "Fire", Severity: 3, Lat: 50.4, Lng: 30.5}},
			Rejected: []int{7},
			Bounds:   &service.Bounds{South: 50.4, West: 30.5, North: 50.4, East: 30.5},
		}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/markers?category=Fire")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MarkersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Markers, 1)
	assert.Equal(t, "medium", resp.Markers[0].SeverityLabel)
	assert.Equal(t, []int{7}, resp.Rejected)
	require.NotNil(t, resp.Bounds)
	assert.Equal(t, 50.4, resp.Bounds.North)
}

func TestGetMarkers_NoMarkers(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetMarkers(gomock.Any(), gomock.Any()).Return(&service.MarkerSet{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/markers")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"markers": [], "rejected": [], "bounds": null}`, w.Body.String())
}

func TestListCategories(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents/categories")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, len(models.Categories))
	assert.Contains(t, resp, CategoryResponse{Value: "Fire"})
}

func TestListSeverities(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents/severities")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []SeverityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 5)
	assert.Equal(t, SeverityResponse{Value: 5, Label: "critical", Text: "Critical"}, resp[4])
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health")

	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	_, _, router := newTestHandler(t)
	clientID := uuid.NewString()

	w := makeRequest(router, "GET", "/api/v1/system/health", map[string]string{"X-Request-ID": clientID})
	assert.Equal(t, clientID, w.Header().Get("X-Request-ID"))

	w = makeRequest(router, "GET", "/api/v1/system/health", map[string]string{"X-Request-ID": "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", w.Header().Get("X-Request-ID"))
}

func TestLoggerMiddleware_LogsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware(), LoggerMiddleware(logger))
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	makeRequest(router, "GET", "/missing")

	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"warning"`)
	assert.Contains(t, buf.String(), `"request_id"`)
}
