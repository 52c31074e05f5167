package synth

import (
	"math"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var phonePattern = regexp.MustCompile(`^\((206|425|253)\) [2-9]\d{2}-\d{4}$`)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestPhoneFormat(t *testing.T) {
	rng := testRNG(1)
	for i := 0; i < 200; i++ {
		phone := Phone(rng)
		assert.Regexp(t, phonePattern, phone)
	}
}

func TestRatingBounds(t *testing.T) {
	rng := testRNG(2)
	for i := 0; i < 500; i++ {
		r := Rating(rng)
		assert.GreaterOrEqual(t, r, 3.2)
		assert.LessOrEqual(t, r, 5.0)

		// Exactly one decimal digit.
		scaled := r * 10
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9)
	}
}

func TestAddressFormat(t *testing.T) {
	rng := testRNG(3)
	for i := 0; i < 100; i++ {
		addr := Address(rng)
		assert.Contains(t, addr, ", Seattle WA 98")
		assert.NotEmpty(t, strings.Fields(addr))
	}
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 3.2, ClampRating(0))
	assert.Equal(t, 3.2, ClampRating(1.5))
	assert.Equal(t, 4.2, ClampRating(4.2))
	assert.Equal(t, 4.3, ClampRating(4.26))
	assert.Equal(t, 5.0, ClampRating(9.5))
}
