package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Pike Place Chowder", "pikeplacechowder"},
		{"ampersand", "Cut & Color", "cutandcolor"},
		{"plus", "Seattle Plus+ Fitness", "seattleplusplusfitness"},
		{"digits", "Elite Salon 42", "elitesalon42"},
		{"punctuation", "The #1 Bistro!", "the1bistro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestWebsiteDerivation(t *testing.T) {
	assert.Equal(t, "https://www.pikeplacechowder.com", Website("Pike Place Chowder"))
}

func TestEmailDerivation(t *testing.T) {
	assert.Equal(t, "info@pikeplacechowder.com", Email("Pike Place Chowder"))
}

func TestEmailWebsiteConsistent(t *testing.T) {
	// Both derive from the same slug, so they stay mutually consistent.
	name := "Emerald City & Co Grill"
	assert.Equal(t, "info@emeraldcityandcogrill.com", Email(name))
	assert.Equal(t, "https://www.emeraldcityandcogrill.com", Website(name))
}
