package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformRandomizerCoversAllKinds(t *testing.T) {
	r := NewUniformRandomizer(rand.New(rand.NewSource(1)))
	seen := make(map[Kind]int)
	for range 7000 {
		k := r.Next()
		assert.True(t, k.Valid())
		seen[k]++
	}
	assert.Len(t, seen, KindCount)
}

func TestUniformRandomizerIsDeterministic(t *testing.T) {
	a := NewUniformRandomizer(rand.New(rand.NewSource(42)))
	b := NewUniformRandomizer(rand.New(rand.NewSource(42)))
	for range 100 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestBagRandomizerDealsEachKindOncePerRound(t *testing.T) {
	r := NewBagRandomizer(rand.New(rand.NewSource(7)))
	for round := 0; round < 20; round++ {
		seen := make(map[Kind]bool)
		for range KindCount {
			k := r.Next()
			assert.False(t, seen[k], "round %d repeated %s", round, k)
			seen[k] = true
		}
		assert.Len(t, seen, KindCount)
	}
}
