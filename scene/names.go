package scene

import (
	"math/rand"

	"github.com/Pallinder/go-randomdata"
)

// nameGenerator hands out unique silly names. randomdata keeps a single
// package level source, so graphs with auto names reseed it on creation.
type nameGenerator map[string]struct{}

func newNameGenerator(seed int64) nameGenerator {
	randomdata.CustomRand(rand.New(rand.NewSource(seed)))
	return make(nameGenerator)
}

// reserve marks an explicitly given name as taken
func (ng nameGenerator) reserve(name string) {
	ng[name] = struct{}{}
}

func (ng nameGenerator) next() string {
	for {
		name := randomdata.SillyName()
		// avoid duplicate names
		if _, exists := ng[name]; !exists {
			ng[name] = struct{}{}
			return name
		}
	}
}
