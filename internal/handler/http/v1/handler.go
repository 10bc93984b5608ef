package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/city_incidents/internal/config"
	"github.com/shenikar/city_incidents/internal/models"
	"github.com/shenikar/city_incidents/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Get a filtered list of incidents
// @Description Filter incidents by category, severity, date range and title, sort and paginate the result.
// @Tags Incidents
// @Produce json
// @Param category query []string false "Categories (repeatable)" collectionFormat(multi)
// @Param severity query int false "Exact severity 1..5, 0 or empty for any"
// @Param dateFrom query string false "Lower bound, inclusive (2006-01-02 or RFC 3339)"
// @Param dateTo query string false "Upper bound, whole day inclusive (2006-01-02 or RFC 3339)"
// @Param search query string false "Case-insensitive title search"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page, at most MAX_PAGE_SIZE" default(10)
// @Param sortBy query string false "Sort field" Enums(id, title, category, severity, createdAt)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	var input ListIncidentsQuery
	log := h.logger.WithField("method", "listIncidents")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Верхняя граница pageSize задается конфигурацией, а не тегом валидатора
	if input.PageSize > h.cfg.MaxPageSize {
		log.WithField("page_size", input.PageSize).Warn("Page size exceeds the configured limit")
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("pageSize must not exceed %d", h.cfg.MaxPageSize)})
		return
	}

	query, err := QueryToListQuery(input)
	if err != nil {
		log.WithError(err).Warn("Invalid filter criteria")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.incidentService.ListIncidents(c.Request.Context(), query)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, PageToResponse(page))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to get incident from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get map markers
// @Description Markers for filtered incidents with valid coordinates, ids rejected for bad coordinates and fitted bounds.
// @Tags Map
// @Produce json
// @Param category query []string false "Categories (repeatable)" collectionFormat(multi)
// @Param severity query int false "Exact severity 1..5, 0 or empty for any"
// @Param dateFrom query string false "Lower bound, inclusive"
// @Param dateTo query string false "Upper bound, whole day inclusive"
// @Param search query string false "Case-insensitive title search"
// @Success 200 {object} MarkersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/markers [get]
func (h *Handler) getMarkers(c *gin.Context) {
	var input FilterQuery
	log := h.logger.WithField("method", "getMarkers")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criteria, err := QueryToCriteria(input)
	if err != nil {
		log.WithError(err).Warn("Invalid filter criteria")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := h.incidentService.GetMarkers(c.Request.Context(), criteria)
	if err != nil {
		log.WithError(err).Error("Failed to build markers in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, MarkerSetToResponse(set))
}

// @Summary List incident categories
// @Tags Dictionaries
// @Produce json
// @Success 200 {array} CategoryResponse
// @Router /incidents/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	resp := make([]CategoryResponse, len(models.Categories))
	for i, category := range models.Categories {
		resp[i] = CategoryResponse{Value: string(category)}
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List severity levels
// @Tags Dictionaries
// @Produce json
// @Success 200 {array} SeverityResponse
// @Router /incidents/severities [get]
func (h *Handler) listSeverities(c *gin.Context) {
	resp := make([]SeverityResponse, len(models.Severities))
	for i, severity := range models.Severities {
		resp[i] = SeverityResponse{Value: severity, Label: severity.Label(), Text: severity.Text()}
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
