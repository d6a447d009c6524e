package play

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellquiz/internal/quiz"
)

// Clock adapts the engine's tick source to Bubble Tea. Each Arm hands out a
// fresh generation id; tick messages carry it, so ticks scheduled for a run
// that has since been stopped or restarted are dropped.
type Clock struct {
	interval time.Duration
	gen      int
	live     int
}

var _ quiz.Clock = (*Clock)(nil)

// NewClock returns a clock that ticks once per second.
func NewClock() *Clock {
	return &Clock{interval: time.Second}
}

func (c *Clock) Arm() quiz.Timer {
	c.gen++
	c.live = c.gen
	return armed{clock: c, id: c.gen}
}

// Live reports whether id belongs to the currently armed timer.
func (c *Clock) Live(id int) bool {
	return id != 0 && id == c.live
}

// Next schedules the tick for the armed timer, or nil when disarmed.
func (c *Clock) Next() tea.Cmd {
	if c.live == 0 {
		return nil
	}
	id := c.live
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return timerTickMsg{id: id}
	})
}

type armed struct {
	clock *Clock
	id    int
}

func (a armed) Stop() {
	if a.clock.live == a.id {
		a.clock.live = 0
	}
}
