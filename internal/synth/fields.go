// Package synth contains the field synthesizers and the record assembler for
// the offline dataset. Every synthesizer is a pure function of its inputs and
// an injected RNG, so a seeded run reproduces byte-identical output.
package synth

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sells-group/bizgen/internal/refdata"
)

const (
	ratingMin = 3.2
	ratingMax = 5.0
)

// Phone produces a Seattle metro phone number in "(AAA) NNN-NNNN" form with
// an area code drawn from the fixed pool.
func Phone(rng *rand.Rand) string {
	area := refdata.AreaCodes[rng.IntN(len(refdata.AreaCodes))]
	exchange := 200 + rng.IntN(800)
	line := 1000 + rng.IntN(9000)
	return fmt.Sprintf("(%s) %d-%d", area, exchange, line)
}

// Address produces a Seattle street address: street number, pooled street
// name, an occasional suite designator, and a city/state/zip suffix.
func Address(rng *rand.Rand) string {
	number := 100 + rng.IntN(9900)
	street := refdata.Streets[rng.IntN(len(refdata.Streets))]
	zip := refdata.ZipCodes[rng.IntN(len(refdata.ZipCodes))]

	if rng.Float64() < 0.3 {
		label := refdata.SuiteLabels[rng.IntN(len(refdata.SuiteLabels))]
		unit := 1 + rng.IntN(500)
		return fmt.Sprintf("%d %s %s %d, Seattle WA %s", number, street, label, unit, zip)
	}
	return fmt.Sprintf("%d %s, Seattle WA %s", number, street, zip)
}

// Rating draws uniformly from [3.2, 5.0] and rounds to one decimal place.
func Rating(rng *rand.Rand) float64 {
	v := ratingMin + rng.Float64()*(ratingMax-ratingMin)
	return math.Round(v*10) / 10
}

// ClampRating forces an externally sourced rating into the [3.2, 5.0] band
// and rounds it to one decimal place.
func ClampRating(v float64) float64 {
	if v < ratingMin {
		v = ratingMin
	}
	if v > ratingMax {
		v = ratingMax
	}
	return math.Round(v*10) / 10
}
