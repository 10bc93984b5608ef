package v1

import (
	"github.com/shenikar/city_incidents/internal/models"
)

// FilterQuery - параметры фильтра в строке запроса
// @Description Параметры фильтра инцидентов
type FilterQuery struct {
	Category []string `form:"category" validate:"dive,max=128"`
	Severity string   `form:"severity" validate:"omitempty,oneof=0 1 2 3 4 5"`
	DateFrom string   `form:"dateFrom" validate:"omitempty,max=64"`
	DateTo   string   `form:"dateTo" validate:"omitempty,max=64"`
	Search   string   `form:"search" validate:"omitempty,max=256"`
}

// ListIncidentsQuery - фильтр, сортировка и пагинация табличного представления
// @Description Параметры списка инцидентов
type ListIncidentsQuery struct {
	FilterQuery
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1"`
	SortBy   string `form:"sortBy" validate:"omitempty,oneof=id title category severity createdAt"`
	Order    string `form:"order" validate:"omitempty,oneof=asc desc"`
}

// LocationResponse DTO координат; некорректная координата передается исходной строкой
// @Description Координаты инцидента
type LocationResponse struct {
	Lat any `json:"lat"`
	Lng any `json:"lng"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID            int              `json:"id"`
	Title         string           `json:"title"`
	Category      string           `json:"category"`
	Severity      models.Severity  `json:"severity"`
	SeverityLabel string           `json:"severityLabel"`
	SeverityText  string           `json:"severityText"`
	CreatedAt     string           `json:"createdAt"`
	Location      LocationResponse `json:"location"`
	Description   string           `json:"description,omitempty"`
}

// IncidentListResponse DTO для страницы инцидентов
// @Description Страница отфильтрованных инцидентов
type IncidentListResponse struct {
	Items    []*IncidentResponse `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

// MarkerResponse DTO маркера карты
// @Description Маркер инцидента на карте
type MarkerResponse struct {
	ID            int             `json:"id"`
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	Severity      models.Severity `json:"severity"`
	SeverityLabel string          `json:"severityLabel"`
	CreatedAt     string          `json:"createdAt"`
	Lat           float64         `json:"lat"`
	Lng           float64         `json:"lng"`
}

// BoundsResponse DTO границ карты
// @Description Границы, в которые вписывается карта
type BoundsResponse struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// MarkersResponse DTO для карты
// @Description Маркеры, отклоненные инциденты и границы карты
type MarkersResponse struct {
	Markers  []*MarkerResponse `json:"markers"`
	Rejected []int             `json:"rejected"`
	Bounds   *BoundsResponse   `json:"bounds"`
}

// CategoryResponse DTO элемента перечня категорий
// @Description Категория инцидента
type CategoryResponse struct {
	Value string `json:"value"`
}

// SeverityResponse DTO элемента перечня уровней
// @Description Уровень опасности
type SeverityResponse struct {
	Value models.Severity `json:"value"`
	Label string          `json:"label"`
	Text  string          `json:"text"`
}
