package repository

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/shenikar/city_incidents/internal/models"
	"github.com/shenikar/city_incidents/internal/service"
)

var _ service.IncidentRepository = (*FileIncidentRepository)(nil)

// FileIncidentRepository держит в памяти снимок инцидентов из статического ассета.
// Снимок только читается; Reload атомарно заменяет его целиком.
type FileIncidentRepository struct {
	path string

	mu        sync.RWMutex
	incidents []models.Incident
	byID      map[int]int
}

// NewFileIncidentRepository загружает ассет и возвращает репозиторий
func NewFileIncidentRepository(ctx context.Context, path string) (*FileIncidentRepository, error) {
	r := &FileIncidentRepository{path: path}
	if err := r.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Path возвращает путь к ассету
func (r *FileIncidentRepository) Path() string {
	return r.path
}

// Reload перечитывает ассет. При ошибке предыдущий снимок остается в силе.
func (r *FileIncidentRepository) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to read incidents file %s: %w", r.path, err)
	}

	incidents, err := decodeIncidents(r.path, data)
	if err != nil {
		return fmt.Errorf("failed to load incidents file %s: %w", r.path, err)
	}

	// при повторяющихся ID поиск возвращает первый, как и поиск по массиву
	byID := make(map[int]int, len(incidents))
	for i, incident := range incidents {
		if _, exists := byID[incident.ID]; !exists {
			byID[incident.ID] = i
		}
	}

	r.mu.Lock()
	r.incidents = incidents
	r.byID = byID
	r.mu.Unlock()
	return nil
}

// GetAll возвращает копию текущего снимка
func (r *FileIncidentRepository) GetAll(ctx context.Context) ([]models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.incidents), nil
}

// GetByID возвращает инцидент по его ID
func (r *FileIncidentRepository) GetByID(ctx context.Context, id int) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %d: %w", id, models.ErrIncidentNotFound)
	}
	incident := r.incidents[idx]
	return &incident, nil
}
