package play

// timerTickMsg is sent every second while a run is armed.
type timerTickMsg struct {
	id int
}

// startMsg begins a new run from the intro or results menu.
type startMsg struct{}
