// Package model defines the core data types shared across the generator,
// scraper, exporters, and store.
package model

import "math"

// Business is one entry in the directory dataset. Every field is populated
// in the offline path; the scrape path may leave contact fields empty when
// the API does not return them.
type Business struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	Website     string  `json:"website"`
}

// BatchStats summarizes one generation or scrape run.
type BatchStats struct {
	Total         int            `json:"total_businesses"`
	ByCategory    map[string]int `json:"businesses_by_category"`
	WithEmail     int            `json:"businesses_with_email"`
	WithPhone     int            `json:"businesses_with_phone"`
	WithWebsite   int            `json:"businesses_with_website"`
	AverageRating float64        `json:"average_rating"`
}

// Summarize computes batch statistics over a slice of businesses.
func Summarize(businesses []Business) BatchStats {
	stats := BatchStats{
		Total:      len(businesses),
		ByCategory: make(map[string]int),
	}

	var ratingSum float64
	for _, b := range businesses {
		stats.ByCategory[b.Category]++
		if b.Email != "" {
			stats.WithEmail++
		}
		if b.Phone != "" {
			stats.WithPhone++
		}
		if b.Website != "" {
			stats.WithWebsite++
		}
		ratingSum += b.Rating
	}

	if len(businesses) > 0 {
		stats.AverageRating = roundTo2(ratingSum / float64(len(businesses)))
	}
	return stats
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
