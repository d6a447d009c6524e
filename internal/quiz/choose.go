package quiz

import (
	"log/slog"
	"slices"

	"github.com/abhisek/wellquiz/internal/catalog"
)

// Choose records a pick from the current pair: the picked prompt is consumed,
// every intervention it names gains a point, rankings are re-sorted and the
// next pair is drawn. The unpicked prompt stays eligible for later pairs.
//
// Choose returns an *InvalidStateError, leaving all state untouched, when the
// run is not in PhasePlaying or the prompt is not part of the current pair.
func (e *Engine) Choose(picked catalog.Prompt) error {
	if e.phase != PhasePlaying {
		return &InvalidStateError{Phase: e.phase, PromptID: picked.ID, Reason: "quiz is not running"}
	}
	idx := slices.IndexFunc(e.pair, func(p catalog.Prompt) bool { return p.ID == picked.ID })
	if idx < 0 {
		return &InvalidStateError{Phase: e.phase, PromptID: picked.ID, Reason: "prompt is not in the current pair"}
	}
	e.apply(e.pair[idx])
	return nil
}

// ChooseSide picks the prompt displayed at the given position (0 left, 1 right).
func (e *Engine) ChooseSide(side int) error {
	if e.phase != PhasePlaying {
		return &InvalidStateError{Phase: e.phase, PromptID: -1, Reason: "quiz is not running"}
	}
	if side < 0 || side >= len(e.pair) {
		return &InvalidStateError{Phase: e.phase, PromptID: -1, Reason: "no prompt on that side"}
	}
	return e.Choose(e.pair[side])
}

func (e *Engine) apply(picked catalog.Prompt) {
	e.last = &picked
	e.shown[picked.ID] = true

	for i := range e.rankings {
		if picked.Supports(e.rankings[i].Name()) {
			e.rankings[i].Score++
		}
	}
	// Ties keep their order from the previous ranking, not catalog order.
	slices.SortStableFunc(e.rankings, func(a, b Standing) int {
		return b.Score - a.Score
	})

	e.log.Debug("choice recorded",
		slog.String("session_id", e.sessionID),
		slog.Int("prompt_id", picked.ID),
		slog.Int("shown", len(e.shown)))
	e.observer.ChoiceMade(e.sessionID, picked)

	e.NextPair()
}
