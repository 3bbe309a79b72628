package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"academyqa/logger"
	"academyqa/middleware"
	"academyqa/models"
	"academyqa/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgNoQuestion       = "No question provided."
	msgModelUnavailable = "Q&A model is not loaded."
	msgInternal         = "I'm sorry, an error occurred while processing your request. Please try again later."
)

type QARequest struct {
	Question string `json:"question"`
}

type QAResponse struct {
	Answer string `json:"answer"`
}

// Asker answers a single question.
type Asker interface {
	Ask(ctx context.Context, question string) (*models.AnswerResult, error)
}

type QAController struct {
	assistant Asker
	recorder  services.Recorder
}

// NewQAController builds the /ask handler. recorder may be nil.
func NewQAController(assistant Asker, recorder services.Recorder) *QAController {
	return &QAController{assistant: assistant, recorder: recorder}
}

func (q *QAController) AnswerQuestion(c *gin.Context) {
	requestID := c.GetString(middleware.RequestIDKey)

	var req QARequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoQuestion})
		return
	}

	logger.Info("Received question", zap.String("request_id", requestID), zap.String("question", req.Question))

	ev := models.QuestionEvent{
		RequestID: requestID,
		Question:  req.Question,
		AskedAt:   time.Now().UTC(),
	}

	res, err := q.assistant.Ask(c.Request.Context(), req.Question)
	switch {
	case err == nil:
		ev.Status = http.StatusOK
		ev.Answer = res.Text
		ev.Route = res.Route
		ev.CourseKey = res.CourseKey
		c.PureJSON(http.StatusOK, QAResponse{Answer: res.Text})
	case errors.Is(err, services.ErrNoQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoQuestion})
		return
	case errors.Is(err, services.ErrModelUnavailable):
		ev.Status = http.StatusServiceUnavailable
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgModelUnavailable})
	default:
		logger.Error("Error processing question", zap.String("request_id", requestID), zap.Error(err))
		ev.Status = http.StatusInternalServerError
		ev.Route = models.RouteModel
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}

	if q.recorder != nil {
		// Send the answer before touching the stores, and keep recording
		// alive if the client has already gone.
		c.Writer.Flush()
		_ = q.recorder.Record(context.WithoutCancel(c.Request.Context()), ev)
	}
}

// Recover answers a panicking request with the generic error body.
func (q *QAController) Recover(c *gin.Context, recovered any) {
	logger.Error("Recovered from panic",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.Any("panic", recovered))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
}
