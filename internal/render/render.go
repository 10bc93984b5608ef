// Package render форматирует инциденты для вывода в терминал
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/shenikar/city_incidents/internal/models"
)

const (
	titleWidth = 48
	timeLayout = "2006-01-02 15:04"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(12)

	severityColors = map[string]lipgloss.Color{
		"low":      lipgloss.Color("#2e7d32"),
		"minor":    lipgloss.Color("#9e9d24"),
		"medium":   lipgloss.Color("#f9a825"),
		"high":     lipgloss.Color("#ef6c00"),
		"critical": lipgloss.Color("#c62828"),
	}
)

// Table рисует таблицу инцидентов в заданном порядке
func Table(incidents []models.Incident, now time.Time) string {
	rows := make([][]string, len(incidents))
	for i, incident := range incidents {
		rows[i] = []string{
			strconv.Itoa(incident.ID),
			SeverityBadge(incident.Severity),
			incident.Category,
			truncate(incident.Title, titleWidth),
			CreatedAt(incident, now),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "SEVERITY", "CATEGORY", "TITLE", "CREATED").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// Details рисует карточку одного инцидента
func Details(incident *models.Incident, now time.Time) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	line("ID", strconv.Itoa(incident.ID))
	line("Title", incident.Title)
	line("Category", incident.Category)
	line("Severity", SeverityBadge(incident.Severity))
	line("Created", CreatedAt(*incident, now))
	line("Location", location(incident.Location))
	if incident.Description != "" {
		line("Description", incident.Description)
	}
	return b.String()
}

// Categories выводит перечень категорий по одной на строку
func Categories() string {
	var b strings.Builder
	for _, category := range models.Categories {
		b.WriteString(string(category))
		b.WriteByte('\n')
	}
	return b.String()
}

// SeverityBadge - текст уровня в цвете уровня
func SeverityBadge(s models.Severity) string {
	style := lipgloss.NewStyle().Foreground(severityColors[s.Label()]).Bold(s >= models.SeverityHigh)
	return style.Render(s.Text())
}

// CreatedAt - дата создания с относительным временем. Неразбираемое значение
// выводится как есть.
func CreatedAt(incident models.Incident, now time.Time) string {
	at, ok := incident.CreatedTime()
	if !ok {
		if incident.CreatedAt == "" {
			return faintStyle.Render("unknown")
		}
		return faintStyle.Render(incident.CreatedAt)
	}
	return fmt.Sprintf("%s (%s)", at.Format(timeLayout), humanize.RelTime(at, now, "ago", "from now"))
}

func location(l models.Location) string {
	if l.Valid() {
		return fmt.Sprintf("%.5f, %.5f", l.Lat.Value, l.Lng.Value)
	}
	return faintStyle.Render(fmt.Sprintf("invalid (lat=%s, lng=%s)", coordinateText(l.Lat), coordinateText(l.Lng)))
}

func coordinateText(c models.Coordinate) string {
	switch {
	case c.Valid:
		return strconv.FormatFloat(c.Value, 'f', -1, 64)
	case c.Raw != "":
		return strconv.Quote(c.Raw)
	default:
		return "missing"
	}
}

func truncate(text string, maxWidth int) string {
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length]) + "…"
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
