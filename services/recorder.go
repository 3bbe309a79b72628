package services

import (
	"context"
	"encoding/json"
	"fmt"

	"academyqa/logger"
	"academyqa/models"

	"github.com/go-redis/redis"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder keeps a trace of handled questions. Recording never changes the
// response the client gets.
type Recorder interface {
	Record(ctx context.Context, ev models.QuestionEvent) error
}

// Recorders fans an event out to every recorder and logs their failures.
type Recorders []Recorder

func (rs Recorders) Record(ctx context.Context, ev models.QuestionEvent) error {
	for _, r := range rs {
		if err := r.Record(ctx, ev); err != nil {
			logger.Warn("Failed to record question",
				zap.String("request_id", ev.RequestID),
				zap.String("recorder", fmt.Sprintf("%T", r)),
				zap.Error(err))
		}
	}
	return nil
}

// HistoryRecorder writes one qa_histories row per event.
type HistoryRecorder struct {
	db *gorm.DB
}

func NewHistoryRecorder(db *gorm.DB) *HistoryRecorder {
	return &HistoryRecorder{db: db}
}

func (h *HistoryRecorder) Record(ctx context.Context, ev models.QuestionEvent) error {
	return h.db.WithContext(ctx).Create(models.NewQAHistory(ev)).Error
}

const (
	routeRankKey  = "rank:qa:routes"
	courseRankKey = "rank:qa:courses"
)

// RouteStatsRecorder counts answered questions per route, and per course for
// course questions, in redis.
type RouteStatsRecorder struct {
	client *redis.Client
}

func NewRouteStatsRecorder(client *redis.Client) *RouteStatsRecorder {
	return &RouteStatsRecorder{client: client}
}

func (s *RouteStatsRecorder) Record(_ context.Context, ev models.QuestionEvent) error {
	if ev.Route == "" {
		return nil
	}

	pipe := s.client.TxPipeline()
	pipe.Incr("qa:route:" + string(ev.Route) + ":hits")
	pipe.ZIncrBy(routeRankKey, 1, string(ev.Route))
	if ev.CourseKey != "" {
		pipe.ZIncrBy(courseRankKey, 1, ev.CourseKey)
	}
	_, err := pipe.Exec()
	return err
}

// EventPublisher publishes every event as JSON to a RabbitMQ queue.
type EventPublisher struct {
	channel *amqp.Channel
	queue   string
}

func NewEventPublisher(ch *amqp.Channel, queue string) *EventPublisher {
	return &EventPublisher{channel: ch, queue: queue}
}

func (p *EventPublisher) Record(ctx context.Context, ev models.QuestionEvent) error {
	msg, err := newPublishing(ev)
	if err != nil {
		return err
	}
	return p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg)
}

func newPublishing(ev models.QuestionEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal question event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.RequestID,
		Timestamp:    ev.AskedAt,
		Body:         body,
	}, nil
}
