package quiz

import "github.com/abhisek/wellquiz/internal/catalog"

// DefaultDuration is the length of a run in seconds.
const DefaultDuration = 30

// Phase represents the current phase of the quiz.
type Phase int

const (
	PhaseIntro    Phase = iota // Waiting for the first Start
	PhasePlaying               // Countdown running, pairs being served
	PhaseFinished              // Run over; rankings are final until the next Start
)

// String returns a lowercase label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// EndReason records why a run left PhasePlaying.
type EndReason int

const (
	ReasonNone      EndReason = iota
	ReasonTimeUp              // Countdown reached zero
	ReasonExhausted           // Fewer than two unshown prompts remained
	ReasonStopped             // End was called by the player
	ReasonClosed              // Engine torn down mid-run
)

// String returns a short label suitable for logs and metric labels.
func (r EndReason) String() string {
	switch r {
	case ReasonTimeUp:
		return "time_up"
	case ReasonExhausted:
		return "exhausted"
	case ReasonStopped:
		return "stopped"
	case ReasonClosed:
		return "closed"
	default:
		return "none"
	}
}

// Standing is an intervention together with its score in the current run.
type Standing struct {
	Intervention catalog.Intervention
	Score        int
}

// Name is shorthand for s.Intervention.Name.
func (s Standing) Name() string {
	return s.Intervention.Name
}

// Observer receives lifecycle notifications from the engine. Calls happen on
// the goroutine that drives the engine.
type Observer interface {
	GameStarted(sessionID string)
	ChoiceMade(sessionID string, picked catalog.Prompt)
	GameEnded(sessionID string, reason EndReason, choices int)
}

type nopObserver struct{}

func (nopObserver) GameStarted(string)                {}
func (nopObserver) ChoiceMade(string, catalog.Prompt) {}
func (nopObserver) GameEnded(string, EndReason, int)  {}
