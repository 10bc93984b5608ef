package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location - координаты инцидента. Любая из координат может оказаться некорректной.
type Location struct {
	Lat Coordinate `json:"lat" yaml:"lat"`
	Lng Coordinate `json:"lng" yaml:"lng"`
}

// Valid сообщает, что обе координаты числовые и лежат в допустимых пределах
func (l Location) Valid() bool {
	if !l.Lat.Valid || !l.Lng.Valid {
		return false
	}
	return l.Lat.Value >= -90 && l.Lat.Value <= 90 && l.Lng.Value >= -180 && l.Lng.Value <= 180
}

// Coordinate хранит одну координату. Нечисловое значение не является ошибкой декодирования:
// оно сохраняется в Raw, а Valid остается false.
type Coordinate struct {
	Value float64
	Valid bool
	Raw   string
}

// NewCoordinate создает корректную координату
func NewCoordinate(v float64) Coordinate {
	return Coordinate{Value: v, Valid: true}
}

func parseCoordinate(raw string) Coordinate {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Coordinate{Raw: raw}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Coordinate{Raw: raw}
	}
	return Coordinate{Value: v, Valid: true}
}

// UnmarshalJSON принимает число, числовую строку или любое другое значение
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = Coordinate{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = parseCoordinate(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*c = parseCoordinate(n.String())
		return nil
	}

	*c = Coordinate{Raw: string(data)}
	return nil
}

// MarshalJSON отдает число для корректной координаты и исходную строку для некорректной
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if c.Valid {
		return []byte(strconv.FormatFloat(c.Value, 'f', -1, 64)), nil
	}
	if c.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(c.Raw)
}

// UnmarshalYAML используется для ассетов в формате YAML
func (c *Coordinate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		*c = Coordinate{}
		return nil
	}
	*c = parseCoordinate(node.Value)
	return nil
}

// MarshalYAML симметричен MarshalJSON
func (c Coordinate) MarshalYAML() (any, error) {
	if c.Valid {
		return c.Value, nil
	}
	if c.Raw == "" {
		return nil, nil
	}
	return c.Raw, nil
}
