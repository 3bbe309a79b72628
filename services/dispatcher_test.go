package services

import (
	"strings"
	"testing"

	"academyqa/catalog"
	"academyqa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func TestDispatchCourseLookup(t *testing.T) {
	c := defaultCatalog(t)
	d := NewDispatcher(c)

	for _, course := range c.KB.All() {
		t.Run(course.Key, func(t *testing.T) {
			res, ok := d.Dispatch("tell me about " + course.Key)
			require.True(t, ok)
			assert.Equal(t, models.RouteCourse, res.Route)
			assert.Equal(t, course.Key, res.CourseKey)
			assert.Contains(t, res.Text, course.Name)
			assert.Contains(t, res.Text, course.Duration)
			assert.Contains(t, res.Text, course.Fees)
		})
	}
}

func TestDispatchOtherCourses(t *testing.T) {
	c := defaultCatalog(t)
	d := NewDispatcher(c)

	for _, phrase := range []string{"other than", "except for"} {
		for _, course := range c.KB.All() {
			res, ok := d.Dispatch("which courses do you have " + phrase + " " + course.Key + "?")
			require.True(t, ok)
			assert.Equal(t, models.RouteOtherCourses, res.Route)
			assert.NotContains(t, res.Text, course.Name)
			for _, other := range c.KB.All() {
				if other.Key != course.Key {
					assert.Contains(t, res.Text, other.Name)
				}
			}
		}
	}
}

func TestDispatchOtherThanCyberSecurity(t *testing.T) {
	d := NewDispatcher(defaultCatalog(t))

	res, ok := d.Dispatch(strings.ToLower("What courses are offered other than cyber security?"))
	require.True(t, ok)
	assert.Equal(t, "The other courses offered are: "+
		"Certified Specialist in Data Science & Analytics, "+
		"Certified Specialist in Artificial Intelligence & Machine Learning, "+
		"Certified Specialist in Full Stack Development (MERN), "+
		"Certified Specialist in SDET.", res.Text)
}

func TestDispatchDataScienceFee(t *testing.T) {
	d := NewDispatcher(defaultCatalog(t))

	res, ok := d.Dispatch(strings.ToLower("What is the fee for Data Science?"))
	require.True(t, ok)
	assert.Equal(t, "The Certified Specialist in Data Science & Analytics is a "+
		"6 months, which includes 3 months of theoretical training and 3 months of hands-on projects and internship. "+
		"program. The fees are The fees can cost between Rs. 15,000 to Rs. 25,000.", res.Text)
}

func TestDispatchProgramsOffered(t *testing.T) {
	c := defaultCatalog(t)
	d := NewDispatcher(c)

	for _, q := range []string{"what are the programs offered?", "list the courses offered"} {
		res, ok := d.Dispatch(q)
		require.True(t, ok)
		assert.Equal(t, models.RoutePrograms, res.Route)
		assert.Equal(t, "The programs offered are: "+strings.Join(c.KB.Names(), ", ")+".", res.Text)
	}
}

func TestDispatchGenericRules(t *testing.T) {
	c := defaultCatalog(t)
	d := NewDispatcher(c)

	cases := []struct {
		question string
		route    models.Route
		text     string
	}{
		{"what is the duration?", models.RouteDuration, c.DurationAnswer},
		{"how long are the programs?", models.RouteDuration, c.DurationAnswer},
		{"what are the fees?", models.RouteFees, c.FeesAnswer},
		{"what does it cost?", models.RouteFees, c.FeesAnswer},
		{"how much do i pay?", models.RouteFees, c.FeesAnswer},
		// duration is checked before fees
		{"how long and how much?", models.RouteDuration, c.DurationAnswer},
	}
	for _, tc := range cases {
		res, ok := d.Dispatch(tc.question)
		require.True(t, ok, tc.question)
		assert.Equal(t, tc.route, res.Route, tc.question)
		assert.Equal(t, tc.text, res.Text, tc.question)
	}
}

func TestDispatchFirstCourseWins(t *testing.T) {
	d := NewDispatcher(defaultCatalog(t))

	res, ok := d.Dispatch("compare sdet and data science fees")
	require.True(t, ok)
	assert.Equal(t, models.RouteCourse, res.Route)
	assert.Equal(t, "data science", res.CourseKey)
}

func TestDispatchNoMatch(t *testing.T) {
	d := NewDispatcher(defaultCatalog(t))

	res, ok := d.Dispatch("where is the head office located?")
	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestDispatchIsIdempotent(t *testing.T) {
	d := NewDispatcher(defaultCatalog(t))

	first, ok := d.Dispatch("what is the fee for sdet?")
	require.True(t, ok)
	second, ok := d.Dispatch("what is the fee for sdet?")
	require.True(t, ok)
	assert.Equal(t, first, second)
}
