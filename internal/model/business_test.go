package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	stats := Summarize([]Business{
		{Name: "A", Category: "Food", Email: "a@a.com", Phone: "(206) 555-0100", Website: "https://www.a.com", Rating: 4.0},
		{Name: "B", Category: "Food", Phone: "(425) 555-0101", Rating: 5.0},
		{Name: "C", Category: "Salon", Email: "c@c.com", Rating: 3.5},
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"Food": 2, "Salon": 1}, stats.ByCategory)
	assert.Equal(t, 2, stats.WithEmail)
	assert.Equal(t, 2, stats.WithPhone)
	assert.Equal(t, 1, stats.WithWebsite)
	assert.InDelta(t, 4.17, stats.AverageRating, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.ByCategory)
	assert.Zero(t, stats.AverageRating)
}
