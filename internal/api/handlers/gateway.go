package handlers

import (
	"context"
	"net/http"

	"github.com/Ayash-Bera/rag-gateway/internal/middleware"
	"github.com/Ayash-Bera/rag-gateway/internal/models"
	"github.com/Ayash-Bera/rag-gateway/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Gateway is the service behind the query and feedback endpoints.
type Gateway interface {
	SubmitQuery(ctx context.Context, req models.QueryRequest) (models.QueryResponse, error)
	SubmitFeedback(ctx context.Context, req models.FeedbackRequest) (models.FeedbackResponse, error)
}

type GatewayHandler struct {
	gateway Gateway
	logger  *logrus.Logger
}

func NewGatewayHandler(gateway Gateway, logger *logrus.Logger) *GatewayHandler {
	utils.RegisterJSONFieldNames()
	return &GatewayHandler{
		gateway: gateway,
		logger:  logger,
	}
}

// HandleQuery answers POST /query.
func (h *GatewayHandler) HandleQuery(c *gin.Context) {
	var payload models.QueryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.WithError(err).Debug("Invalid query request")
		utils.ValidationErrorResponse(c, err)
		return
	}

	resp, err := h.gateway.SubmitQuery(c.Request.Context(), payload.ToRequest())
	if err != nil {
		h.logger.WithError(err).WithField("request_id", middleware.GetRequestID(c.Request.Context())).Error("Query failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Query failed", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleFeedback accepts POST /feedback.
func (h *GatewayHandler) HandleFeedback(c *gin.Context) {
	var payload models.FeedbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.WithError(err).Debug("Invalid feedback request")
		utils.ValidationErrorResponse(c, err)
		return
	}

	resp, err := h.gateway.SubmitFeedback(c.Request.Context(), payload.ToRequest())
	if err != nil {
		h.logger.WithError(err).WithField("request_id", middleware.GetRequestID(c.Request.Context())).Error("Feedback failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Feedback failed", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
