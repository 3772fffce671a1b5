package assistant

import (
	"math/rand/v2"
	"sync"
)

// Picker selects templates uniformly at random from a seeded source. It is
// safe for concurrent use; the remote fallback picks off the UI loop.
type Picker struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewPicker(seed uint64) *Picker {
	return &Picker{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *Picker) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return options[p.r.IntN(len(options))]
}
