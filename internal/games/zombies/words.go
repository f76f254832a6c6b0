package zombies

// WordBank hands out words for new zombies.
type WordBank struct {
	words []string
	rng   *RNG
	last  int
}

// NewWordBank creates a bank over a non-empty word list.
func NewWordBank(words []string, rng *RNG) *WordBank {
	return &WordBank{words: words, rng: rng, last: -1}
}

// Next picks a random word, avoiding an immediate repeat when possible.
func (b *WordBank) Next() string {
	if len(b.words) == 0 {
		return ""
	}
	i := b.rng.Intn(len(b.words))
	if i == b.last && len(b.words) > 1 {
		i = (i + 1) % len(b.words)
	}
	b.last = i
	return b.words[i]
}
