package engine

import "math/rand"

// Randomizer picks the kind of each newly spawned piece.
type Randomizer interface {
	Next() Kind
}

// UniformRandomizer draws every kind independently with equal probability.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a uniform randomizer over the seven kinds.
func NewUniformRandomizer(rng *rand.Rand) *UniformRandomizer {
	return &UniformRandomizer{rng: rng}
}

// Next returns a uniformly random kind.
func (r *UniformRandomizer) Next() Kind {
	return Kind(r.rng.Intn(KindCount))
}

// BagRandomizer deals the seven kinds in shuffled rounds, so every kind
// appears exactly once per seven spawns.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagRandomizer creates a 7-bag randomizer.
func NewBagRandomizer(rng *rand.Rand) *BagRandomizer {
	return &BagRandomizer{rng: rng, bag: make([]Kind, 0, KindCount)}
}

// Next pops the next kind from the bag, refilling it when empty.
func (r *BagRandomizer) Next() Kind {
	if len(r.bag) == 0 {
		for k := range Kind(KindCount) {
			r.bag = append(r.bag, k)
		}
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}
	k := r.bag[0]
	r.bag = r.bag[1:]
	return k
}
