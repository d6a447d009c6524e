package quiz

import (
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/wellquiz/internal/catalog"
)

// Option configures an Engine.
type Option func(*Engine)

// WithDuration sets the countdown length in seconds. Non-positive values are
// ignored.
func WithDuration(seconds int) Option {
	return func(e *Engine) {
		if seconds > 0 {
			e.duration = seconds
		}
	}
}

// WithRand sets the randomness used for pair selection.
func WithRand(r RandSource) Option {
	return func(e *Engine) {
		if r != nil {
			e.rand = r
		}
	}
}

// WithClock sets the tick source armed on Start.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver registers a lifecycle observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// Engine owns the state of one quiz: lifecycle, pair selection and scoring.
// It is not safe for concurrent use; callers serialize choices and ticks
// through a single event loop.
type Engine struct {
	prompts       []catalog.Prompt
	interventions []catalog.Intervention
	duration      int
	rand          RandSource
	clock         Clock
	log           *slog.Logger
	observer      Observer

	// Session state, rebuilt wholesale by Start.
	sessionID string
	phase     Phase
	remaining int
	shown     map[int]bool
	pair      []catalog.Prompt
	rankings  []Standing
	last      *catalog.Prompt
	reason    EndReason
	timer     Timer
}

// New creates an engine over the given catalog. The catalog is copied and
// never mutated. It does not validate the catalog; see catalog.Validate.
func New(c *catalog.Catalog, opts ...Option) *Engine {
	cl := c.Clone()
	e := &Engine{
		prompts:       cl.Prompts,
		interventions: cl.Interventions,
		duration:      DefaultDuration,
		clock:         nopClock{},
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer:      nopObserver{},
		phase:         PhaseIntro,
		shown:         make(map[int]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = NewRand(0)
	}
	e.remaining = e.duration
	e.rankings = e.initialRankings()
	return e
}

func (e *Engine) initialRankings() []Standing {
	out := make([]Standing, len(e.interventions))
	for i, iv := range e.interventions {
		out[i] = Standing{Intervention: iv}
	}
	return out
}

// Start begins a fresh run: full reset of scores, shown prompts and timer,
// then arms the clock and draws the first pair. A run still in progress is
// ended as stopped and its timer disarmed first.
func (e *Engine) Start() {
	e.finish(ReasonStopped)

	e.sessionID = uuid.New().String()
	e.phase = PhasePlaying
	e.remaining = e.duration
	e.shown = make(map[int]bool)
	e.pair = nil
	e.rankings = e.initialRankings()
	e.last = nil
	e.reason = ReasonNone

	e.log.Info("quiz started",
		slog.String("session_id", e.sessionID),
		slog.Int("duration", e.duration),
		slog.Int("prompts", len(e.prompts)))
	e.observer.GameStarted(e.sessionID)

	e.timer = e.clock.Arm()
	e.NextPair()
}

// Tick advances the countdown by one second. It is a no-op outside
// PhasePlaying.
func (e *Engine) Tick() {
	if e.phase != PhasePlaying {
		return
	}
	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.finish(ReasonTimeUp)
	}
}

// End stops the current run. It is idempotent and a no-op before the first
// Start.
func (e *Engine) End() {
	e.finish(ReasonStopped)
}

// Close releases the timer. A run still in progress ends with ReasonClosed.
func (e *Engine) Close() {
	e.finish(ReasonClosed)
}

func (e *Engine) finish(reason EndReason) {
	e.disarm()
	if e.phase != PhasePlaying {
		return
	}
	e.phase = PhaseFinished
	e.pair = nil
	e.reason = reason

	top := ""
	if len(e.rankings) > 0 {
		top = e.rankings[0].Name()
	}
	e.log.Info("quiz finished",
		slog.String("session_id", e.sessionID),
		slog.String("reason", reason.String()),
		slog.Int("choices", len(e.shown)),
		slog.Int("remaining", e.remaining),
		slog.String("top", top))
	e.observer.GameEnded(e.sessionID, reason, len(e.shown))
}

func (e *Engine) disarm() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// RemainingSeconds returns the countdown value.
func (e *Engine) RemainingSeconds() int { return e.remaining }

// Duration returns the configured run length in seconds.
func (e *Engine) Duration() int { return e.duration }

// SessionID identifies the current run. Empty before the first Start.
func (e *Engine) SessionID() string { return e.sessionID }

// EndReason reports why the last run finished.
func (e *Engine) EndReason() EndReason { return e.reason }

// CurrentPair returns a copy of the pair on display, or nil.
func (e *Engine) CurrentPair() []catalog.Prompt {
	return slices.Clone(e.pair)
}

// Rankings returns a copy of every intervention ordered by score.
func (e *Engine) Rankings() []Standing {
	return slices.Clone(e.rankings)
}

// Top returns at most n leading standings.
func (e *Engine) Top(n int) []Standing {
	if n > len(e.rankings) {
		n = len(e.rankings)
	}
	if n < 0 {
		n = 0
	}
	return slices.Clone(e.rankings[:n])
}

// LastChoice returns the most recently picked prompt.
func (e *Engine) LastChoice() (catalog.Prompt, bool) {
	if e.last == nil {
		return catalog.Prompt{}, false
	}
	return *e.last, true
}

// Gained reports whether the last pick scored the named intervention.
func (e *Engine) Gained(name string) bool {
	return e.last != nil && e.last.Supports(name)
}

// ShownCount returns how many prompts have been picked this run.
func (e *Engine) ShownCount() int { return len(e.shown) }

// PromptCount returns the size of the prompt catalog.
func (e *Engine) PromptCount() int { return len(e.prompts) }

// Interventions returns the intervention catalog in its original order.
func (e *Engine) Interventions() []catalog.Intervention {
	return slices.Clone(e.interventions)
}
