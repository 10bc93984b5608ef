package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/city_incidents/internal/models"
)

// ErrInvalidCriteria - непустое значение фильтра не удалось разобрать
var ErrInvalidCriteria = errors.New("invalid filter criteria")

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// RawCriteria - значения фильтра в том виде, в каком их присылает слой представления
type RawCriteria struct {
	Categories []string
	Severity   string
	DateFrom   string
	DateTo     string
	Search     string
}

// NewCriteria строит Criteria. Пустые строки, пустые списки и severity "0" означают
// отсутствие ограничения.
func NewCriteria(raw RawCriteria) (Criteria, error) {
	var c Criteria

	for _, category := range raw.Categories {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		c.Categories = append(c.Categories, category)
	}

	severity, err := ParseSeverity(raw.Severity)
	if err != nil {
		return Criteria{}, err
	}
	c.Severity = severity

	if c.DateFrom, err = ParseDate(raw.DateFrom); err != nil {
		return Criteria{}, fmt.Errorf("dateFrom: %w", err)
	}
	if c.DateTo, err = ParseDate(raw.DateTo); err != nil {
		return Criteria{}, fmt.Errorf("dateTo: %w", err)
	}

	c.Search = strings.TrimSpace(raw.Search)
	return c, nil
}

// ParseSeverity разбирает уровень. Пустая строка и "0" дают 0 (без ограничения).
func ParseSeverity(value string) (models.Severity, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: severity %q is not a number", ErrInvalidCriteria, value)
	}
	severity := models.Severity(n)
	if severity != 0 && !severity.Valid() {
		return 0, fmt.Errorf("%w: severity %d is out of range 1..5", ErrInvalidCriteria, n)
	}
	return severity, nil
}

// ParseDate разбирает границу диапазона. Пустая строка дает nil.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: date %q", ErrInvalidCriteria, value)
}

// String - короткое описание активных ограничений для логов и уведомлений
func (c Criteria) String() string {
	var parts []string
	if len(c.Categories) > 0 {
		parts = append(parts, "category="+strings.Join(c.Categories, ","))
	}
	if c.Severity != 0 {
		parts = append(parts, fmt.Sprintf("severity=%d", c.Severity))
	}
	if c.DateFrom != nil {
		parts = append(parts, "dateFrom="+c.DateFrom.Format(time.RFC3339))
	}
	if c.DateTo != nil {
		parts = append(parts, "dateTo="+c.DateTo.Format(time.RFC3339))
	}
	if c.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", c.Search))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
