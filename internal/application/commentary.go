package application

import (
	"math/rand/v2"
	"time"
)

var predictions = []string{
	"Sri Lanka needs better bowling!",
	"This pitch favors batsmen!",
	"Match could go either way!",
}

// Commentary picks a closing line for a match summary from a fixed table.
type Commentary struct {
	lines []string
	rng   *rand.Rand
}

func NewCommentary(rng *rand.Rand) *Commentary {
	return &Commentary{lines: predictions, rng: rng}
}

// NewSeededCommentary seeds from the clock when seed is 0.
func NewSeededCommentary(seed uint64) *Commentary {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewCommentary(rand.New(rand.NewPCG(seed, seed>>1|1)))
}

func (c *Commentary) Pick() string {
	return c.lines[c.rng.IntN(len(c.lines))]
}
