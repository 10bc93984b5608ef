package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/city_incidents/internal/models"
	"github.com/shenikar/city_incidents/internal/service"
)

var _ service.IncidentRepository = (*PostgresIncidentRepository)(nil)

// PostgresIncidentRepository читает тот же набор инцидентов из таблицы incidents.
// Репозиторий ничего не пишет.
type PostgresIncidentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresIncidentRepository(db *pgxpool.Pool) *PostgresIncidentRepository {
	return &PostgresIncidentRepository{db: db}
}

const selectIncidents = `
	SELECT
		id,
		title,
		category,
		severity,
		created_at,
		lat,
		lng,
		description
	FROM incidents
`

// GetAll возвращает все инциденты в порядке ID
func (r *PostgresIncidentRepository) GetAll(ctx context.Context) ([]models.Incident, error) {
	rows, err := r.db.Query(ctx, selectIncidents+" ORDER BY id;")
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// GetByID возвращает инцидент по его ID
func (r *PostgresIncidentRepository) GetByID(ctx context.Context, id int) (*models.Incident, error) {
	incident, err := scanIncident(r.db.QueryRow(ctx, selectIncidents+" WHERE id = $1;", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d: %w", id, models.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return &incident, nil
}

func scanIncident(row pgx.Row) (models.Incident, error) {
	var (
		incident    models.Incident
		createdAt   *time.Time
		lat, lng    *float64
		description *string
	)

	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Category,
		&incident.Severity,
		&createdAt,
		&lat,
		&lng,
		&description,
	)
	if err != nil {
		return models.Incident{}, err
	}

	if createdAt != nil {
		incident.CreatedAt = createdAt.UTC().Format(time.RFC3339Nano)
	}
	if lat != nil {
		incident.Location.Lat = models.NewCoordinate(*lat)
	}
	if lng != nil {
		incident.Location.Lng = models.NewCoordinate(*lng)
	}
	if description != nil {
		incident.Description = *description
	}
	return incident, nil
}
