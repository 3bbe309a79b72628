package models

import (
	"errors"
	"fmt"
	"strings"
)

// CourseRecord is one program in the course catalog. Key is the canonical
// lowercase phrase matched against questions.
type CourseRecord struct {
	Key      string `mapstructure:"key" json:"key"`
	Name     string `mapstructure:"name" json:"name"`
	Duration string `mapstructure:"duration" json:"duration"`
	Fees     string `mapstructure:"fees" json:"fees"`
}

// KnowledgeBase is an ordered, read-only set of courses keyed by Key.
// Insertion order is the order used whenever courses are listed or matched.
type KnowledgeBase struct {
	records []CourseRecord
	index   map[string]int
}

var ErrEmptyKnowledgeBase = errors.New("knowledge base has no courses")

// NewKnowledgeBase validates records and returns them as a KnowledgeBase.
// Keys must be unique and every field non-blank.
func NewKnowledgeBase(records ...CourseRecord) (*KnowledgeBase, error) {
	if len(records) == 0 {
		return nil, ErrEmptyKnowledgeBase
	}

	kb := &KnowledgeBase{
		records: make([]CourseRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		switch {
		case strings.TrimSpace(r.Key) == "":
			return nil, fmt.Errorf("course %d: key is empty", i)
		case strings.TrimSpace(r.Name) == "":
			return nil, fmt.Errorf("course %q: name is empty", r.Key)
		case strings.TrimSpace(r.Duration) == "":
			return nil, fmt.Errorf("course %q: duration is empty", r.Key)
		case strings.TrimSpace(r.Fees) == "":
			return nil, fmt.Errorf("course %q: fees is empty", r.Key)
		}
		if _, dup := kb.index[r.Key]; dup {
			return nil, fmt.Errorf("course %q: duplicate key", r.Key)
		}
		kb.index[r.Key] = len(kb.records)
		kb.records = append(kb.records, r)
	}
	return kb, nil
}

// Get looks a course up by key. A missing key is reported through ok.
func (kb *KnowledgeBase) Get(key string) (CourseRecord, bool) {
	i, ok := kb.index[key]
	if !ok {
		return CourseRecord{}, false
	}
	return kb.records[i], true
}

// All returns every course in insertion order. The slice is a copy.
func (kb *KnowledgeBase) All() []CourseRecord {
	out := make([]CourseRecord, len(kb.records))
	copy(out, kb.records)
	return out
}

// Names returns every course name in insertion order.
func (kb *KnowledgeBase) Names() []string {
	names := make([]string, 0, len(kb.records))
	for _, r := range kb.records {
		names = append(names, r.Name)
	}
	return names
}

func (kb *KnowledgeBase) Len() int {
	return len(kb.records)
}
