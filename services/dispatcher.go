package services

import (
	"strings"

	"academyqa/catalog"
	"academyqa/models"
)

// Dispatcher answers common question shapes straight from the catalog.
// Rules are tried in a fixed order and the first match wins; a question that
// mentions two courses is answered for whichever comes first in the catalog.
type Dispatcher struct {
	catalog *catalog.Catalog
}

func NewDispatcher(c *catalog.Catalog) *Dispatcher {
	return &Dispatcher{catalog: c}
}

// Dispatch expects an already lowercased question. ok is false when no rule
// applies and the question has to go to the model.
func (d *Dispatcher) Dispatch(normalized string) (*models.AnswerResult, bool) {
	kb := d.catalog.KB

	for _, course := range kb.All() {
		if !strings.Contains(normalized, course.Key) {
			continue
		}
		if containsAny(normalized, "other than", "except for") {
			others := make([]string, 0, kb.Len()-1)
			for _, name := range kb.Names() {
				if name != course.Name {
					others = append(others, name)
				}
			}
			return &models.AnswerResult{
				Text:      "The other courses offered are: " + strings.Join(others, ", ") + ".",
				Route:     models.RouteOtherCourses,
				CourseKey: course.Key,
			}, true
		}
		return &models.AnswerResult{
			Text:      "The " + course.Name + " is a " + course.Duration + " program. The fees are " + strings.TrimSuffix(course.Fees, ".") + ".",
			Route:     models.RouteCourse,
			CourseKey: course.Key,
		}, true
	}

	switch {
	case containsAny(normalized, "programs offered", "courses offered"):
		return &models.AnswerResult{
			Text:  "The programs offered are: " + strings.Join(kb.Names(), ", ") + ".",
			Route: models.RoutePrograms,
		}, true
	case containsAny(normalized, "duration", "how long"):
		return &models.AnswerResult{Text: d.catalog.DurationAnswer, Route: models.RouteDuration}, true
	case containsAny(normalized, "fees", "cost", "how much"):
		return &models.AnswerResult{Text: d.catalog.FeesAnswer, Route: models.RouteFees}, true
	}
	return nil, false
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
