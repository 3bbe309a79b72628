package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"academyqa/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderFunc func(context.Context, models.QuestionEvent) error

func (f recorderFunc) Record(ctx context.Context, ev models.QuestionEvent) error {
	return f(ctx, ev)
}

func TestRecordersContinuePastFailures(t *testing.T) {
	var seen []string
	rs := Recorders{
		recorderFunc(func(_ context.Context, ev models.QuestionEvent) error {
			seen = append(seen, "first")
			return errors.New("mysql gone")
		}),
		recorderFunc(func(_ context.Context, ev models.QuestionEvent) error {
			seen = append(seen, "second:"+ev.RequestID)
			return nil
		}),
	}

	err := rs.Record(context.Background(), models.QuestionEvent{RequestID: "r1"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second:r1"}, seen)
}

func TestQuestionEventJSON(t *testing.T) {
	ev := models.QuestionEvent{
		RequestID: "r1",
		Question:  "What is the fee for SDET?",
		Answer:    "The Certified Specialist in SDET is a ...",
		Route:     models.RouteCourse,
		CourseKey: "sdet",
		Status:    200,
		AskedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	body, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"request_id": "r1",
		"question": "What is the fee for SDET?",
		"answer": "The Certified Specialist in SDET is a ...",
		"route": "course",
		"course_key": "sdet",
		"status": 200,
		"asked_at": "2026-01-02T03:04:05Z"
	}`, string(body))
}

func TestNewPublishing(t *testing.T) {
	ev := models.QuestionEvent{
		RequestID: "6f1c0d52-3a59-4d8e-9a4b-2f0c8e7d1b23",
		Question:  "What are the programs offered?",
		Answer:    "The programs offered are: ...",
		Route:     models.RoutePrograms,
		Status:    200,
		AskedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	msg, err := newPublishing(ev)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, ev.RequestID, msg.MessageId)
	assert.True(t, ev.AskedAt.Equal(msg.Timestamp))

	var decoded models.QuestionEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, ev.RequestID, decoded.RequestID)
	assert.Equal(t, ev.Question, decoded.Question)
	assert.Equal(t, models.RoutePrograms, decoded.Route)
	assert.Equal(t, 200, decoded.Status)
}
