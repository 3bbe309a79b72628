package services

import (
	"context"
	"strings"

	"academyqa/catalog"
	"academyqa/logger"
	"academyqa/models"

	"go.uber.org/zap"
)

// Assistant answers questions: keyword rules first, the QA model otherwise.
// It holds no per-request state.
type Assistant struct {
	catalog    *catalog.Catalog
	dispatcher *Dispatcher
	model      *ModelAdapter
	cache      AnswerCache

	rejectWhenUnavailable bool
}

type AssistantOption func(*Assistant)

// WithAnswerCache caches model answers.
func WithAnswerCache(cache AnswerCache) AssistantOption {
	return func(a *Assistant) {
		a.cache = cache
	}
}

// WithRejectWhenUnavailable controls degraded mode. true (the default)
// refuses every question while the model is unavailable; false still serves
// rule answers and refuses only questions that need the model.
func WithRejectWhenUnavailable(reject bool) AssistantOption {
	return func(a *Assistant) {
		a.rejectWhenUnavailable = reject
	}
}

func NewAssistant(c *catalog.Catalog, model *ModelAdapter, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		catalog:    c,
		dispatcher: NewDispatcher(c),
		model:      model,

		rejectWhenUnavailable: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask answers question. Errors are ErrNoQuestion, ErrModelUnavailable or an
// *InferenceError.
func (a *Assistant) Ask(ctx context.Context, question string) (*models.AnswerResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrNoQuestion
	}
	if a.rejectWhenUnavailable && !a.model.Ready() {
		return nil, ErrModelUnavailable
	}

	if res, ok := a.dispatcher.Dispatch(strings.ToLower(question)); ok {
		return res, nil
	}

	if !a.model.Ready() {
		return nil, ErrModelUnavailable
	}

	passage := a.catalog.Context
	if a.cache != nil {
		cached, hit, err := a.cache.Get(question, passage)
		if err != nil {
			logger.Warn("Answer cache read failed", zap.Error(err))
		} else if hit {
			return &models.AnswerResult{Text: cached, Route: models.RouteModel}, nil
		}
	}

	ans, err := a.model.Answer(ctx, question, passage)
	if err != nil {
		return nil, err
	}
	logger.Debug("Model result",
		zap.String("answer", ans.Text),
		zap.Float64("score", ans.Score),
		zap.Int("start", ans.Start),
		zap.Int("end", ans.End))

	if a.cache != nil {
		if err := a.cache.Set(question, passage, ans.Text); err != nil {
			logger.Warn("Answer cache write failed", zap.Error(err))
		}
	}

	return &models.AnswerResult{Text: ans.Text, Route: models.RouteModel, Score: ans.Score}, nil
}
