package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shenikar/city_incidents/internal/models"
)

// Поля, по которым таблица умеет сортировать
const (
	SortByID        = "id"
	SortByTitle     = "title"
	SortByCategory  = "category"
	SortBySeverity  = "severity"
	SortByCreatedAt = "createdAt"
)

// SortFields - допустимые значения поля сортировки
var SortFields = []string{SortByID, SortByTitle, SortByCategory, SortBySeverity, SortByCreatedAt}

// SortOrder - поле и направление сортировки таблицы
type SortOrder struct {
	Field string
	Desc  bool
}

// IsDefault сообщает, что порядок совпадает с порядком фильтра (createdAt по убыванию)
func (o SortOrder) IsDefault() bool {
	return o.Field == "" || (o.Field == SortByCreatedAt && o.Desc)
}

// SortIncidents сортирует срез на месте, стабильно
func SortIncidents(incidents []models.Incident, order SortOrder) {
	compare := comparator(order.Field)
	slices.SortStableFunc(incidents, func(a, b models.Incident) int {
		if order.Desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

func comparator(field string) func(a, b models.Incident) int {
	switch field {
	case SortByTitle:
		return func(a, b models.Incident) int { return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) }
	case SortByCategory:
		return func(a, b models.Incident) int { return strings.Compare(a.Category, b.Category) }
	case SortBySeverity:
		return func(a, b models.Incident) int { return cmp.Compare(a.Severity, b.Severity) }
	case SortByCreatedAt:
		return compareCreatedAt
	default:
		return func(a, b models.Incident) int { return cmp.Compare(a.ID, b.ID) }
	}
}

// compareCreatedAt ставит неразбираемые даты раньше любых корректных
func compareCreatedAt(a, b models.Incident) int {
	at, aok := a.CreatedTime()
	bt, bok := b.CreatedTime()
	switch {
	case aok && bok:
		return at.Compare(bt)
	case aok:
		return 1
	case bok:
		return -1
	default:
		return 0
	}
}
