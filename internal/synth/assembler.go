package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/sells-group/bizgen/internal/model"
	"github.com/sells-group/bizgen/internal/taxonomy"
)

// nameAttempts bounds how many compositions the assembler tries before
// falling back to an index-suffixed name to keep names unique within a run.
const nameAttempts = 8

// Assembler builds complete business records. It owns the run-scoped RNG and
// the name-uniqueness set; it holds no other state between records.
type Assembler struct {
	rng  *rand.Rand
	seen map[string]bool
}

// NewAssembler creates an assembler backed by the given RNG. The RNG is the
// only source of variation: the same seed and call sequence reproduce the
// same records.
func NewAssembler(rng *rand.Rand) *Assembler {
	return &Assembler{
		rng:  rng,
		seen: make(map[string]bool),
	}
}

// Assemble produces one fully populated record for the given taxonomy pair
// and run-scoped index. Every field is set; email and website are derived
// from the name so the three stay consistent.
func (a *Assembler) Assemble(category taxonomy.Category, subcategory string, index int) model.Business {
	name := a.uniqueName(category, index)
	return model.Business{
		Name:        name,
		Category:    string(category),
		Subcategory: subcategory,
		Email:       Email(name),
		Phone:       Phone(a.rng),
		Address:     Address(a.rng),
		Rating:      Rating(a.rng),
		Website:     Website(name),
	}
}

// uniqueName composes names until one unseen in this run appears. After
// nameAttempts collisions it suffixes the run index, bumping a counter in
// the unlikely case the suffixed form was also produced organically.
func (a *Assembler) uniqueName(category taxonomy.Category, index int) string {
	var name string
	for range nameAttempts {
		name = Name(category, index, a.rng)
		if !a.seen[name] {
			a.seen[name] = true
			return name
		}
	}

	base := name
	name = fmt.Sprintf("%s %d", base, index)
	for n := 2; a.seen[name]; n++ {
		name = fmt.Sprintf("%s %d-%d", base, index, n)
	}
	a.seen[name] = true
	return name
}
