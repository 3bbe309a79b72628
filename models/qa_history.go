package models

import "gorm.io/gorm"

// QAHistory is the audit row stored for every answered question.
type QAHistory struct {
	gorm.Model
	RequestID string `gorm:"size:36;index"`
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text"`
	Route     string `gorm:"size:20;index"`
	CourseKey string `gorm:"size:64"`
	Status    int    `gorm:"index"`
}

func (QAHistory) TableName() string {
	return "qa_histories"
}

// NewQAHistory converts an event into its persisted form.
func NewQAHistory(ev QuestionEvent) *QAHistory {
	return &QAHistory{
		RequestID: ev.RequestID,
		Question:  ev.Question,
		Answer:    ev.Answer,
		Route:     string(ev.Route),
		CourseKey: ev.CourseKey,
		Status:    ev.Status,
	}
}
