package repository

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shenikar/city_incidents/internal/models"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// decodeIncidents разбирает ассет по расширению файла: .yaml/.yml, .jsonc или JSON
func decodeIncidents(name string, data []byte) ([]models.Incident, error) {
	incidents := make([]models.Incident, 0)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &incidents); err != nil {
			return nil, fmt.Errorf("failed to decode yaml incidents: %w", err)
		}
	case ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &incidents); err != nil {
			return nil, fmt.Errorf("failed to decode jsonc incidents: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &incidents); err != nil {
			return nil, fmt.Errorf("failed to decode json incidents: %w", err)
		}
	}

	if incidents == nil {
		incidents = make([]models.Incident, 0)
	}
	return incidents, nil
}
