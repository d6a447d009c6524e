package quiz

import "github.com/abhisek/wellquiz/internal/catalog"

// NextPair draws two distinct unshown prompts uniformly at random, in random
// left/right order, and installs them as the current pair. When fewer than
// two unshown prompts remain the run finishes and nil is returned. Outside
// PhasePlaying it does nothing and returns nil.
func (e *Engine) NextPair() []catalog.Prompt {
	if e.phase != PhasePlaying {
		return nil
	}

	available := e.available()
	if len(available) < 2 {
		e.finish(ReasonExhausted)
		return nil
	}

	// Draw i from n and j from the remaining n-1; every unordered pair is
	// equally likely and each order appears half the time.
	n := len(available)
	i := e.rand.IntN(n)
	j := e.rand.IntN(n - 1)
	if j >= i {
		j++
	}

	e.pair = []catalog.Prompt{available[i], available[j]}
	return e.CurrentPair()
}

// available returns unshown prompts in catalog order.
func (e *Engine) available() []catalog.Prompt {
	out := make([]catalog.Prompt, 0, len(e.prompts)-len(e.shown))
	for _, p := range e.prompts {
		if !e.shown[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// Remaining returns how many prompts have not been picked yet.
func (e *Engine) Remaining() int {
	return len(e.prompts) - len(e.shown)
}
