package game

import (
	"math/rand"
	"sync"
)

// lockedRand wraps the shared random source used for food placement behind
// its own mutex. It is only ever called from inside a State critical section
// and never acquires the State lock itself, so the lock order is fixed by
// construction: State first, then rand.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n).
func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
