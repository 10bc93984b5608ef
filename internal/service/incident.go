package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/city_incidents/internal/config"
	"github.com/shenikar/city_incidents/internal/filter"
	"github.com/shenikar/city_incidents/internal/models"
	"github.com/shenikar/city_incidents/internal/notify"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository определяет контракт источника снимка инцидентов
type IncidentRepository interface {
	GetAll(ctx context.Context) ([]models.Incident, error)
	GetByID(ctx context.Context, id int) (*models.Incident, error)
}

// IncidentService определяет контракт для просмотра и фильтрации инцидентов
type IncidentService interface {
	ListIncidents(ctx context.Context, query ListQuery) (*IncidentPage, error)
	GetIncident(ctx context.Context, id int) (*models.Incident, error)
	GetMarkers(ctx context.Context, criteria filter.Criteria) (*MarkerSet, error)
}

// ListQuery - фильтр, сортировка и страница для табличного представления
type ListQuery struct {
	Criteria filter.Criteria
	Sort     SortOrder
	Page     int
	PageSize int
}

// IncidentPage - одна страница отфильтрованных инцидентов
type IncidentPage struct {
	Items    []models.Incident
	Total    int
	Page     int
	PageSize int
}

const emptyResultMessage = "no incidents match the current filters"

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher notify.Publisher
	now       func() time.Time
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config, publisher notify.Publisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

// ListIncidents фильтрует снимок, сортирует и возвращает запрошенную страницу
func (s *incidentService) ListIncidents(ctx context.Context, query ListQuery) (*IncidentPage, error) {
	page, pageSize := s.normalizePage(query.Page, query.PageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"criteria":  query.Criteria.String(),
		"page":      page,
		"page_size": pageSize,
	})
	log.Debug("Listing incidents")

	filtered, err := s.filtered(ctx, query.Criteria)
	if err != nil {
		log.WithError(err).Error("Failed to get incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	if !query.Sort.IsDefault() {
		SortIncidents(filtered, query.Sort)
	}

	if len(filtered) == 0 {
		s.notifyEmpty(ctx, log, query.Criteria)
	}

	result := &IncidentPage{
		Items:    paginate(filtered, page, pageSize),
		Total:    len(filtered),
		Page:     page,
		PageSize: pageSize,
	}
	log.WithField("total", result.Total).Debug("Incidents listed successfully")
	return result, nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id int) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.Debug("Incident not found")
		} else {
			log.WithError(err).Error("Failed to get incident from repository")
		}
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// GetMarkers строит маркеры карты по отфильтрованным инцидентам. Инциденты с некорректными
// координатами не попадают на карту, о каждом публикуется уведомление.
func (s *incidentService) GetMarkers(ctx context.Context, criteria filter.Criteria) (*MarkerSet, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "GetMarkers",
		"criteria": criteria.String(),
	})

	filtered, err := s.filtered(ctx, criteria)
	if err != nil {
		log.WithError(err).Error("Failed to get incidents from repository")
		return nil, fmt.Errorf("service: could not build markers: %w", err)
	}

	set := BuildMarkers(filtered)
	for _, id := range set.Rejected {
		s.publish(ctx, log, notify.Notification{
			Kind:       notify.KindInvalidCoordinates,
			Message:    fmt.Sprintf("invalid coordinates for incident %d", id),
			IncidentID: id,
		})
	}
	if len(filtered) == 0 {
		s.notifyEmpty(ctx, log, criteria)
	}

	log.WithFields(logrus.Fields{
		"markers":  len(set.Markers),
		"rejected": len(set.Rejected),
	}).Debug("Markers built")
	return set, nil
}

func (s *incidentService) filtered(ctx context.Context, criteria filter.Criteria) ([]models.Incident, error) {
	incidents, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Incidents(incidents, criteria), nil
}

func (s *incidentService) normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize < 1:
		pageSize = s.cfg.DefaultPageSize
	case pageSize > s.cfg.MaxPageSize:
		pageSize = s.cfg.MaxPageSize
	}
	return page, pageSize
}

// paginate не умножает номер страницы, пока не убедится, что страница существует:
// иначе page*pageSize переполняет int для больших page
func paginate(incidents []models.Incident, page, pageSize int) []models.Incident {
	if len(incidents) == 0 || page-1 > (len(incidents)-1)/pageSize {
		return []models.Incident{}
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(incidents)-start)
	return incidents[start:end]
}

// notifyEmpty сообщает пользователю о пустом результате. Пустой результат без фильтров
// означает пустой набор данных, а не неудачный фильтр.
func (s *incidentService) notifyEmpty(ctx context.Context, log *logrus.Entry, criteria filter.Criteria) {
	if criteria.IsEmpty() {
		return
	}
	s.publish(ctx, log, notify.Notification{
		Kind:     notify.KindEmptyResult,
		Message:  emptyResultMessage,
		Criteria: criteria.String(),
	})
}

// publish не прерывает запрос: уведомление вторично по отношению к ответу
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, n notify.Notification) {
	n.Timestamp = s.now().UTC()
	if err := s.publisher.Publish(ctx, n); err != nil {
		log.WithError(err).WithField("kind", n.Kind).Warn("Failed to publish notification")
	}
}
