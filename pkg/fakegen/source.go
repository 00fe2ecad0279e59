package fakegen

import (
	"io"
	"math/rand/v2"
	"sync"
)

// Source supplies the randomness every generator consumes.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Bool returns a fair coin flip.
	Bool() bool
}

// Rand is a Source backed by math/rand/v2
type Rand struct {
	r *rand.Rand
}

// NewSource returns a deterministic Source seeded with seed.
// Two sources built from the same seed yield the same sequence.
func NewSource(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed))}
}

// FromRand wraps an existing *rand.Rand
func FromRand(r *rand.Rand) *Rand {
	return &Rand{r: r}
}

func (s *Rand) IntN(n int) int {
	return s.r.IntN(n)
}

func (s *Rand) Bool() bool {
	return s.r.IntN(2) == 1
}

// LockedSource guards a Source with a mutex so it can be shared between
// goroutines. Output is only reproducible if callers serialize their draws.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *LockedSource) Bool() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Bool()
}

// Reader exposes a Source as a byte stream, one IntN(256) draw per byte.
func Reader(r Source) io.Reader {
	return sourceReader{src: r}
}

type sourceReader struct {
	src Source
}

func (sr sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(sr.src.IntN(256))
	}
	return len(p), nil
}
