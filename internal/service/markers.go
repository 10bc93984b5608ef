package service

import (
	"math"

	"github.com/shenikar/city_incidents/internal/models"
)

// boundsPadding - доля размаха, добавляемая к границам с каждой стороны
const boundsPadding = 0.1

// Marker - точка инцидента на карте
type Marker struct {
	IncidentID int
	Title      string
	Category   string
	Severity   models.Severity
	CreatedAt  string
	Lat        float64
	Lng        float64
}

// Bounds - прямоугольник, в который нужно вписать карту
type Bounds struct {
	South float64
	West  float64
	North float64
	East  float64
}

// MarkerSet - маркеры, отклоненные инциденты и границы карты
type MarkerSet struct {
	Markers  []Marker
	Rejected []int
	Bounds   *Bounds
}

// BuildMarkers строит маркеры в порядке входа. Bounds равен nil, если маркеров нет.
func BuildMarkers(incidents []models.Incident) *MarkerSet {
	set := &MarkerSet{
		Markers:  make([]Marker, 0, len(incidents)),
		Rejected: make([]int, 0),
	}

	for _, incident := range incidents {
		if !incident.Location.Valid() {
			set.Rejected = append(set.Rejected, incident.ID)
			continue
		}
		set.Markers = append(set.Markers, Marker{
			IncidentID: incident.ID,
			Title:      incident.Title,
			Category:   incident.Category,
			Severity:   incident.Severity,
			CreatedAt:  incident.CreatedAt,
			Lat:        incident.Location.Lat.Value,
			Lng:        incident.Location.Lng.Value,
		})
	}

	if len(set.Markers) > 0 {
		set.Bounds = fitBounds(set.Markers)
	}
	return set
}

func fitBounds(markers []Marker) *Bounds {
	b := Bounds{South: math.Inf(1), West: math.Inf(1), North: math.Inf(-1), East: math.Inf(-1)}
	for _, m := range markers {
		b.South = math.Min(b.South, m.Lat)
		b.North = math.Max(b.North, m.Lat)
		b.West = math.Min(b.West, m.Lng)
		b.East = math.Max(b.East, m.Lng)
	}

	latPad := (b.North - b.South) * boundsPadding
	lngPad := (b.East - b.West) * boundsPadding
	return &Bounds{
		South: b.South - latPad,
		West:  b.West - lngPad,
		North: b.North + latPad,
		East:  b.East + lngPad,
	}
}
