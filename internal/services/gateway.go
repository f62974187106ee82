package services

import (
	"context"
	"fmt"

	"github.com/Ayash-Bera/rag-gateway/internal/metrics"
	"github.com/Ayash-Bera/rag-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

// FeedbackAck is the acknowledgment returned for every accepted feedback record.
const FeedbackAck = "Feedback received"

// GatewayService answers queries and accepts feedback. It holds no mutable state and is
// safe for concurrent use.
type GatewayService struct {
	retriever Retriever
	generator Generator
	sink      FeedbackSink
	logger    *logrus.Logger
}

func NewGatewayService(
	retriever Retriever,
	generator Generator,
	sink FeedbackSink,
	logger *logrus.Logger,
) *GatewayService {
	if retriever == nil {
		retriever = PlaceholderRetriever{}
	}
	if generator == nil {
		generator = TemplateGenerator{}
	}
	if sink == nil {
		sink = NewLogSink(logger)
	}
	return &GatewayService{
		retriever: retriever,
		generator: generator,
		sink:      sink,
		logger:    logger,
	}
}

// SubmitQuery builds the answer for a query. It logs nothing and touches no sink.
func (s *GatewayService) SubmitQuery(ctx context.Context, req models.QueryRequest) (models.QueryResponse, error) {
	retrieved, err := s.retriever.Retrieve(ctx, req.Query, req.Profile)
	if err != nil {
		return models.QueryResponse{}, fmt.Errorf("retrieval failed: %w", err)
	}

	answer, err := s.generator.Generate(ctx, req.Query, retrieved, req.Profile)
	if err != nil {
		return models.QueryResponse{}, fmt.Errorf("generation failed: %w", err)
	}

	return models.QueryResponse{Response: answer}, nil
}

// SubmitFeedback hands the record to the sink and acknowledges it. Sink failures are
// logged; the acknowledgment does not depend on them.
func (s *GatewayService) SubmitFeedback(ctx context.Context, req models.FeedbackRequest) (models.FeedbackResponse, error) {
	metrics.FeedbackRatings.Observe(float64(req.Rating))

	if err := s.sink.Record(ctx, req); err != nil {
		metrics.FeedbackSinkFailures.Inc()
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  req.UserID,
			"query_id": req.QueryID,
		}).Warn("Failed to forward feedback")
	}

	return models.FeedbackResponse{Message: FeedbackAck}, nil
}
