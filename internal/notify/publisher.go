package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	notificationQueueKey = "incident_notifications"
	dedupKeyPrefix       = "incident_notifications:dedup:"
)

// Kind - тип пользовательского уведомления
type Kind string

const (
	// KindEmptyResult - по текущим фильтрам инцидентов не найдено
	KindEmptyResult Kind = "empty_result"
	// KindInvalidCoordinates - у инцидента некорректные координаты, маркер не показан
	KindInvalidCoordinates Kind = "invalid_coordinates"
)

// Notification - сообщение для пользователя
type Notification struct {
	Kind       Kind      `json:"kind"`
	Message    string    `json:"message"`
	IncidentID int       `json:"incident_id,omitempty"`
	Criteria   string    `json:"criteria,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// DedupKey - ключ, по которому одинаковые уведомления схлопываются
func (n Notification) DedupKey() string {
	return fmt.Sprintf("%s:%d:%s", n.Kind, n.IncidentID, n.Criteria)
}

// Publisher - интерфейс для публикации уведомлений
//
//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// RedisPublisher кладет уведомления в очередь Redis. Повтор того же уведомления в пределах
// dedupWindow отбрасывается.
type RedisPublisher struct {
	redisClient *redis.Client
	dedupWindow time.Duration
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client, dedupWindow time.Duration) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
		dedupWindow: dedupWindow,
	}
}

// Publish публикует уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, n Notification) error {
	if p.dedupWindow > 0 {
		fresh, err := p.redisClient.SetNX(ctx, dedupKeyPrefix+n.DedupKey(), 1, p.dedupWindow).Result()
		if err != nil {
			return fmt.Errorf("failed to mark notification in Redis: %w", err)
		}
		if !fresh {
			return nil
		}
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to Redis: %w", err)
	}
	return nil
}

// LogPublisher пишет уведомления в лог. Используется, когда Redis не настроен.
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, n Notification) error {
	p.logger.WithFields(logrus.Fields{
		"kind":        n.Kind,
		"incident_id": n.IncidentID,
		"criteria":    n.Criteria,
	}).Info(n.Message)
	return nil
}
