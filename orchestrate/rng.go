package orchestrate

import "math/rand"

// defaultRNGSeed is the fixed seed used when a caller passes seed==0 via
// WithRandomSeed. (cmd/meshtopo does not go through WithRandomSeed: it
// seeds its own *rand.Rand from --random_seed and passes it via WithRand.)
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand: seed==0 maps to
// defaultRNGSeed, any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
