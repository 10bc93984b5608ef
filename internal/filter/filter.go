// Package filter отбирает инциденты по критериям фильтра и упорядочивает их по свежести.
//
// Все функции пакета чистые: входной срез не изменяется, результат всегда новый срез.
package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/shenikar/city_incidents/internal/models"
)

// Criteria - активные ограничения фильтра. Нулевое значение любого поля означает
// отсутствие ограничения по этому измерению.
type Criteria struct {
	Categories []string
	Severity   models.Severity
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string
}

// IsEmpty сообщает, что ни одно ограничение не задано
func (c Criteria) IsEmpty() bool {
	return len(c.Categories) == 0 && c.Severity == 0 && c.DateFrom == nil && c.DateTo == nil &&
		strings.TrimSpace(c.Search) == ""
}

func (c Criteria) hasDateBounds() bool {
	return c.DateFrom != nil || c.DateTo != nil
}

type candidate struct {
	incident  models.Incident
	createdAt time.Time
	dated     bool
}

// Incidents возвращает инциденты, удовлетворяющие всем ограничениям, от новых к старым.
// Порядок равных по времени записей сохраняется. Записи с неразбираемым createdAt
// исключаются при заданном диапазоне дат, а без него идут после всех остальных.
func Incidents(incidents []models.Incident, c Criteria) []models.Incident {
	search := normalizeSearch(c.Search)
	dateBounded := c.hasDateBounds()

	matched := make([]candidate, 0, len(incidents))
	for _, incident := range incidents {
		if !MatchCategory(incident.Category, c.Categories) ||
			!MatchSeverity(incident.Severity, c.Severity) ||
			!matchNormalizedSearch(incident.Title, search) {
			continue
		}

		createdAt, ok := incident.CreatedTime()
		if dateBounded && (!ok || !InRange(createdAt, c.DateFrom, c.DateTo)) {
			continue
		}
		matched = append(matched, candidate{incident: incident, createdAt: createdAt, dated: ok})
	}

	slices.SortStableFunc(matched, compareByRecency)

	result := make([]models.Incident, len(matched))
	for i, m := range matched {
		result[i] = m.incident
	}
	return result
}

func compareByRecency(a, b candidate) int {
	switch {
	case a.dated && b.dated:
		return b.createdAt.Compare(a.createdAt)
	case a.dated:
		return -1
	case b.dated:
		return 1
	default:
		return 0
	}
}

// InRange проверяет, что момент не раньше from и не позже конца календарного дня to.
// Незаданная граница не ограничивает.
func InRange(at time.Time, from, to *time.Time) bool {
	if from != nil && at.Before(*from) {
		return false
	}
	if to != nil && at.After(EndOfDay(*to)) {
		return false
	}
	return true
}

// EndOfDay возвращает 23:59:59.999 календарного дня t в его же зоне
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// MatchCategory - пустой набор пропускает все, иначе нужно точное совпадение с элементом набора
func MatchCategory(category string, categories []string) bool {
	return len(categories) == 0 || slices.Contains(categories, category)
}

// MatchSeverity - нулевой уровень пропускает все, иначе нужно точное совпадение
func MatchSeverity(severity, want models.Severity) bool {
	return want == 0 || severity == want
}

// MatchSearch - регистронезависимый поиск подстроки в заголовке
func MatchSearch(title, search string) bool {
	return matchNormalizedSearch(title, normalizeSearch(search))
}

func normalizeSearch(search string) string {
	return strings.ToLower(strings.TrimSpace(search))
}

func matchNormalizedSearch(title, search string) bool {
	return search == "" || strings.Contains(strings.ToLower(title), search)
}
