package services

import (
	"context"
	"errors"

	"github.com/Ayash-Bera/rag-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

// FeedbackSink receives feedback records. Sinks broadcast or print; none of them store.
type FeedbackSink interface {
	Record(ctx context.Context, feedback models.FeedbackRequest) error
}

// LogSink writes each feedback record as a single log line.
type LogSink struct {
	logger *logrus.Logger
}

func NewLogSink(logger *logrus.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(_ context.Context, feedback models.FeedbackRequest) error {
	s.logger.WithFields(logrus.Fields{
		"user_id":  feedback.UserID,
		"query_id": feedback.QueryID,
		"rating":   feedback.Rating,
		"comments": CommentsOrNone(feedback.Comments),
	}).Info("Feedback received")
	return nil
}

// CommentsOrNone renders absent comments as "None".
func CommentsOrNone(comments *string) string {
	if comments == nil {
		return "None"
	}
	return *comments
}

// MultiSink fans a record out to every sink, even when one of them fails.
type MultiSink []FeedbackSink

func (m MultiSink) Record(ctx context.Context, feedback models.FeedbackRequest) error {
	var errs []error
	for _, sink := range m {
		if err := sink.Record(ctx, feedback); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
