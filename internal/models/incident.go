package models

import (
	"errors"
	"strings"
	"time"
)

// ErrIncidentNotFound возвращается, когда инцидента с указанным ID нет в снимке данных
var ErrIncidentNotFound = errors.New("incident not found")

// Incident - неизменяемая запись об инциденте из статического набора данных
type Incident struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Severity    Severity `json:"severity" yaml:"severity"`
	CreatedAt   string   `json:"createdAt" yaml:"createdAt"`
	Location    Location `json:"location" yaml:"location"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Форматы createdAt, которые встречаются в данных. Значения без зоны считаются UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp разбирает строку времени. ok=false для пустых и некорректных значений.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreatedTime возвращает разобранное время создания инцидента
func (i Incident) CreatedTime() (time.Time, bool) {
	return ParseTimestamp(i.CreatedAt)
}
