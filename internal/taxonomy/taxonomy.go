// Package taxonomy defines the two-level business classification used by
// both the offline generator and the Places scraper, along with validation
// of run configurations against it.
package taxonomy

import (
	"github.com/rotisserie/eris"
)

// Category is a top-level business classification.
type Category string

const (
	CategoryFood          Category = "Food"
	CategorySalon         Category = "Salon"
	CategoryBeauty        Category = "Beauty"
	CategoryHealthcare    Category = "Healthcare"
	CategoryRetail        Category = "Retail"
	CategoryServices      Category = "Services"
	CategoryEntertainment Category = "Entertainment"
	CategoryEducation     Category = "Education"
	CategoryAutomotive    Category = "Automotive"
	CategoryProfessional  Category = "Professional"
)

// Entry pairs a category with its ordered subcategories and the per-subcategory
// record quota for a run.
type Entry struct {
	Category      Category
	Subcategories []string
	Quota         int
}

// Taxonomy is the ordered list of categories a run iterates over. Order is
// significant: generation output is ordered by taxonomy position.
type Taxonomy []Entry

// Default returns the full Seattle dataset taxonomy with the given
// per-subcategory quota applied uniformly.
func Default(quota int) Taxonomy {
	return Taxonomy{
		{CategoryFood, []string{"restaurant", "cafe", "bakery", "bar", "fast_food", "pizza", "asian", "mexican"}, quota},
		{CategorySalon, []string{"hair_care", "beauty_salon", "barber_shop", "nail_salon"}, quota},
		{CategoryBeauty, []string{"beauty_salon", "spa", "nail_salon", "massage_therapist", "skincare", "aesthetics"}, quota},
		{CategoryHealthcare, []string{"doctor", "dentist", "pharmacy", "veterinary_care", "urgent_care", "clinic"}, quota},
		{CategoryRetail, []string{"clothing_store", "shoe_store", "electronics_store", "book_store", "jewelry", "furniture"}, quota},
		{CategoryServices, []string{"lawyer", "accountant", "real_estate_agency", "car_repair", "plumbing", "electrical"}, quota},
		{CategoryEntertainment, []string{"gym", "movie_theater", "bowling_alley", "yoga_studio", "dance_studio"}, quota},
		{CategoryEducation, []string{"school", "library", "tutoring_center", "music_lessons", "art_classes"}, quota},
		{CategoryAutomotive, []string{"car_dealer", "auto_repair", "car_wash", "gas_station", "tire_shop"}, quota},
		{CategoryProfessional, []string{"marketing_agency", "consulting", "photography", "graphic_design", "web_design"}, quota},
	}
}

// Validate rejects malformed taxonomies before any record is produced:
// empty taxonomy, category with no subcategories, negative quota, duplicate
// category, or blank names.
func (t Taxonomy) Validate() error {
	if len(t) == 0 {
		return eris.New("taxonomy: no categories configured")
	}

	seen := make(map[Category]bool, len(t))
	for _, e := range t {
		if e.Category == "" {
			return eris.New("taxonomy: category with empty name")
		}
		if seen[e.Category] {
			return eris.Errorf("taxonomy: duplicate category %q", e.Category)
		}
		seen[e.Category] = true

		if len(e.Subcategories) == 0 {
			return eris.Errorf("taxonomy: category %q has no subcategories", e.Category)
		}
		if e.Quota < 0 {
			return eris.Errorf("taxonomy: category %q has negative quota %d", e.Category, e.Quota)
		}

		subSeen := make(map[string]bool, len(e.Subcategories))
		for _, sub := range e.Subcategories {
			if sub == "" {
				return eris.Errorf("taxonomy: category %q has an empty subcategory", e.Category)
			}
			if subSeen[sub] {
				return eris.Errorf("taxonomy: category %q lists subcategory %q twice", e.Category, sub)
			}
			subSeen[sub] = true
		}
	}
	return nil
}

// Contains reports whether (category, subcategory) is a valid pair.
func (t Taxonomy) Contains(category, subcategory string) bool {
	for _, e := range t {
		if string(e.Category) != category {
			continue
		}
		for _, sub := range e.Subcategories {
			if sub == subcategory {
				return true
			}
		}
		return false
	}
	return false
}

// TotalQuota returns the number of records a run over this taxonomy produces.
func (t Taxonomy) TotalQuota() int {
	total := 0
	for _, e := range t {
		total += e.Quota * len(e.Subcategories)
	}
	return total
}
