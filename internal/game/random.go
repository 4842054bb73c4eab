package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic name generation.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

const nameLetters = "abcdefghijklmnopqrstuvwxyz"

// RandomTrainerName draws a capitalized name of 5 to 20 lowercase letters,
// used for CPU-controlled trainers.
func RandomTrainerName(rng *rand.Rand) string {
	length := 5 + rng.IntN(16)
	b := make([]byte, length)
	for i := range b {
		b[i] = nameLetters[rng.IntN(len(nameLetters))]
	}
	return strings.ToUpper(string(b[:1])) + string(b[1:])
}
