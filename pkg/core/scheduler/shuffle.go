package scheduler

import "math/rand"

// Shuffler reorders backfill candidates. It is the only source of randomness in a run.
type Shuffler interface {
	Shuffle(names []string)
}

// seededShuffler owns a private generator so concurrent runs never share state
type seededShuffler struct {
	rng *rand.Rand
}

// NewSeededShuffler returns a Shuffler whose sequence depends only on seed
func NewSeededShuffler(seed int64) Shuffler {
	return &seededShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededShuffler) Shuffle(names []string) {
	s.rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
}
