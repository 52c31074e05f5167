package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/sells-group/bizgen/internal/refdata"
	"github.com/sells-group/bizgen/internal/taxonomy"
)

// Name composes a business name from the category's prefix/suffix pools.
// Roughly 40% of names carry a connector word and 10% a trailing number.
// Categories without dedicated pools get the generic "<Category> Business
// #<index>" template so synthesis never fails for an enumerated category.
func Name(category taxonomy.Category, index int, rng *rand.Rand) string {
	prefixes := refdata.NamePrefixes(category)
	suffixes := refdata.NameSuffixes(category)
	if len(prefixes) == 0 || len(suffixes) == 0 {
		return fmt.Sprintf("%s Business #%d", category, index)
	}

	prefix := prefixes[rng.IntN(len(prefixes))]
	suffix := suffixes[rng.IntN(len(suffixes))]

	switch {
	case rng.Float64() < 0.4:
		middle := refdata.MiddleWords[rng.IntN(len(refdata.MiddleWords))]
		return fmt.Sprintf("%s %s %s", prefix, middle, suffix)
	case rng.Float64() < 0.1:
		return fmt.Sprintf("%s %s %d", prefix, suffix, 1+rng.IntN(99))
	default:
		return fmt.Sprintf("%s %s", prefix, suffix)
	}
}
