package v1

import (
	"github.com/shenikar/city_incidents/internal/filter"
	"github.com/shenikar/city_incidents/internal/models"
	"github.com/shenikar/city_incidents/internal/service"
)

// QueryToCriteria преобразует параметры запроса в критерии фильтра
func QueryToCriteria(q FilterQuery) (filter.Criteria, error) {
	return filter.NewCriteria(filter.RawCriteria{
		Categories: q.Category,
		Severity:   q.Severity,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
		Search:     q.Search,
	})
}

// QueryToListQuery преобразует параметры списка в запрос к сервису
func QueryToListQuery(q ListIncidentsQuery) (service.ListQuery, error) {
	criteria, err := QueryToCriteria(q.FilterQuery)
	if err != nil {
		return service.ListQuery{}, err
	}
	return service.ListQuery{
		Criteria: criteria,
		Sort:     service.SortOrder{Field: q.SortBy, Desc: q.Order == "desc"},
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

func coordinateValue(c models.Coordinate) any {
	if c.Valid {
		return c.Value
	}
	if c.Raw == "" {
		return nil
	}
	return c.Raw
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:            model.ID,
		Title:         model.Title,
		Category:      model.Category,
		Severity:      model.Severity,
		SeverityLabel: model.Severity.Label(),
		SeverityText:  model.Severity.Text(),
		CreatedAt:     model.CreatedAt,
		Location: LocationResponse{
			Lat: coordinateValue(model.Location.Lat),
			Lng: coordinateValue(model.Location.Lng),
		},
		Description: model.Description,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i := range models {
		responses[i] = ModelToIncidentResponse(&models[i])
	}
	return responses
}

// PageToResponse преобразует страницу сервиса в DTO
func PageToResponse(page *service.IncidentPage) *IncidentListResponse {
	return &IncidentListResponse{
		Items:    ModelsToIncidentResponses(page.Items),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

// MarkerSetToResponse преобразует маркеры сервиса в DTO
func MarkerSetToResponse(set *service.MarkerSet) *MarkersResponse {
	resp := &MarkersResponse{
		Markers:  make([]*MarkerResponse, len(set.Markers)),
		Rejected: set.Rejected,
	}
	if resp.Rejected == nil {
		resp.Rejected = []int{}
	}
	for i, m := range set.Markers {
		resp.Markers[i] = &MarkerResponse{
			ID:            m.IncidentID,
			Title:         m.Title,
			Category:      m.Category,
			Severity:      m.Severity,
			SeverityLabel: m.Severity.Label(),
			CreatedAt:     m.CreatedAt,
			Lat:           m.Lat,
			Lng:           m.Lng,
		}
	}
	if set.Bounds != nil {
		resp.Bounds = &BoundsResponse{
			South: set.Bounds.South,
			West:  set.Bounds.West,
			North: set.Bounds.North,
			East:  set.Bounds.East,
		}
	}
	return resp
}
