package models

import "time"

// Route names the rule (or the model) that produced an answer.
type Route string

const (
	RouteCourse       Route = "course"
	RouteOtherCourses Route = "other_courses"
	RoutePrograms     Route = "programs"
	RouteDuration     Route = "duration"
	RouteFees         Route = "fees"
	RouteModel        Route = "model"
)

// ModelAnswer is a span extracted from a passage. Start and End are byte
// offsets into the passage, or -1 when the text could not be located in it.
type ModelAnswer struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// AnswerResult is the outcome of answering one question.
type AnswerResult struct {
	Text  string
	Route Route
	// CourseKey is set on the course and other_courses routes.
	CourseKey string
	// Score is only meaningful on the model route.
	Score float64
}

// QuestionEvent describes one handled /ask request. It is persisted and
// published once the response has been flushed to the client.
type QuestionEvent struct {
	RequestID string    `json:"request_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer,omitempty"`
	Route     Route     `json:"route,omitempty"`
	CourseKey string    `json:"course_key,omitempty"`
	Status    int       `json:"status"`
	AskedAt   time.Time `json:"asked_at"`
}
