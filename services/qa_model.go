package services

import (
	"context"
	"fmt"
	"net/http"

	"academyqa/config"
	"academyqa/logger"
	"academyqa/models"

	"go.uber.org/zap"
)

// QAModel extracts the span of passage that answers question.
// Implementations must be safe for concurrent use.
type QAModel interface {
	Answer(ctx context.Context, question, passage string) (*models.ModelAnswer, error)
}

// ModelAdapter holds the process-wide QA model. It is either ready or
// unavailable for its whole lifetime; the state is decided once at startup.
type ModelAdapter struct {
	model   QAModel
	loadErr error
}

// NewModelAdapter returns a ready adapter around model.
func NewModelAdapter(model QAModel) *ModelAdapter {
	return &ModelAdapter{model: model}
}

// UnavailableModelAdapter returns an adapter that rejects every call.
func UnavailableModelAdapter(err error) *ModelAdapter {
	if err == nil {
		err = ErrModelUnavailable
	}
	return &ModelAdapter{loadErr: err}
}

// LoadModelAdapter initialises the configured provider. A failure is logged
// and yields an unavailable adapter; it never stops the process.
func LoadModelAdapter(ctx context.Context, cfg config.QAConfig) *ModelAdapter {
	model, err := newQAModel(ctx, cfg)
	if err != nil {
		logger.Error("Error loading the Q&A model", zap.String("provider", cfg.Provider), zap.Error(err))
		return UnavailableModelAdapter(err)
	}
	logger.Info("Q&A model loaded successfully", zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))
	return NewModelAdapter(model)
}

func newQAModel(ctx context.Context, cfg config.QAConfig) (QAModel, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case "", "lexical":
		return NewLexicalModel(), nil
	case "ollama":
		return NewOllamaModel(ctx, cfg.BaseURL, cfg.Model, httpClient)
	case "openai":
		return NewOpenAIModel(ctx, cfg.BaseURL, cfg.APIKey, cfg.Model, httpClient)
	default:
		return nil, fmt.Errorf("unknown qa provider %q", cfg.Provider)
	}
}

func (a *ModelAdapter) Ready() bool {
	return a.model != nil
}

// Err is the load failure of an unavailable adapter.
func (a *ModelAdapter) Err() error {
	return a.loadErr
}

// Answer runs the model. Every model failure, panics included, comes back as
// an *InferenceError.
func (a *ModelAdapter) Answer(ctx context.Context, question, passage string) (ans *models.ModelAnswer, err error) {
	if !a.Ready() {
		return nil, ErrModelUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			ans = nil
			err = &InferenceError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	ans, err = a.model.Answer(ctx, question, passage)
	if err != nil {
		return nil, &InferenceError{Err: err}
	}
	if ans == nil {
		return nil, &InferenceError{Err: fmt.Errorf("model returned no answer")}
	}
	return ans, nil
}
