package quiz

import (
	"math/rand/v2"
	"time"
)

// Clock arms the one-tick-per-second source that drives the countdown. The
// engine arms it on Start and stops the returned Timer on every path out of
// PhasePlaying.
type Clock interface {
	Arm() Timer
}

// Timer is the handle to an armed tick source.
type Timer interface {
	Stop()
}

// RandSource supplies the randomness used for pair selection.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed RandSource. A zero seed picks one from the
// current time.
func NewRand(seed uint64) RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type nopClock struct{}

func (nopClock) Arm() Timer { return nopTimer{} }

type nopTimer struct{}

func (nopTimer) Stop() {}
