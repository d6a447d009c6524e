package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidState is matched by every InvalidStateError via errors.Is.
var ErrInvalidState = errors.New("invalid quiz state")

// InvalidStateError reports a choice the engine cannot accept in its current
// state. No state is changed when it is returned.
type InvalidStateError struct {
	Phase    Phase
	PromptID int
	Reason   string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid quiz state (phase %s, prompt %d): %s", e.Phase, e.PromptID, e.Reason)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }
