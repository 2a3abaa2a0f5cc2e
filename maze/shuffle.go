package maze

// Rand is the random source the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Shuffle permutes s in place with Fisher-Yates: for i from the last index
// down to 1, swap s[i] with a uniformly chosen s[j], 0 <= j <= i.
func Shuffle[T any](rng Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
