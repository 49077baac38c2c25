package wheel

import (
	"math/rand/v2"
	"sync"
)

// Source Источник случайных чисел. IntN возвращает число из [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource возвращает потокобезопасный источник.
// При seed == 0 используется глобальный генератор math/rand/v2,
// иначе детерминированный PCG (для воспроизводимых прогонов).
func NewSource(seed uint64) Source {
	if seed == 0 {
		return globalSource{}
	}
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

type lockedSource struct {
	mtx sync.Mutex
	r   *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.IntN(n)
}
