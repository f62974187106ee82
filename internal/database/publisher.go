package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ayash-Bera/rag-gateway/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// FeedbackEvent is the message broadcast for each feedback record.
type FeedbackEvent struct {
	UserID     string    `json:"user_id"`
	QueryID    string    `json:"query_id"`
	Rating     int       `json:"rating"`
	Comments   *string   `json:"comments"`
	ReceivedAt time.Time `json:"received_at"`
}

// FeedbackPublisher broadcasts feedback on a Redis pub/sub channel. Subscribers that are
// not listening miss the event; nothing is persisted.
type FeedbackPublisher struct {
	client  *redis.Client
	channel string
	logger  *logrus.Logger
	now     func() time.Time
}

// NewFeedbackPublisher connects to Redis and verifies the connection.
func NewFeedbackPublisher(redisURL, channel string, logger *logrus.Logger) (*FeedbackPublisher, error) {
	redisOpts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	redisOpts.PoolSize = 10
	redisOpts.MinIdleConns = 2
	redisOpts.MaxConnAge = time.Hour
	redisOpts.IdleTimeout = 30 * time.Minute
	redisOpts.IdleCheckFrequency = 30 * time.Second

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.WithField("channel", channel).Info("Feedback publisher connected to Redis")

	return NewFeedbackPublisherWithClient(client, channel, logger), nil
}

func NewFeedbackPublisherWithClient(client *redis.Client, channel string, logger *logrus.Logger) *FeedbackPublisher {
	return &FeedbackPublisher{
		client:  client,
		channel: channel,
		logger:  logger,
		now:     time.Now,
	}
}

// Record publishes the feedback as JSON on the configured channel.
func (p *FeedbackPublisher) Record(ctx context.Context, feedback models.FeedbackRequest) error {
	event := FeedbackEvent{
		UserID:     feedback.UserID,
		QueryID:    feedback.QueryID,
		Rating:     feedback.Rating,
		Comments:   feedback.Comments,
		ReceivedAt: p.now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback event: %w", err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, data).Result()
	if err != nil {
		return fmt.Errorf("failed to publish feedback: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"channel":   p.channel,
		"query_id":  feedback.QueryID,
		"receivers": receivers,
	}).Debug("Feedback published")

	return nil
}

// Ping checks the Redis connection.
func (p *FeedbackPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func (p *FeedbackPublisher) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
