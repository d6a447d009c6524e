package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellquiz/internal/ui/theme"
)

// PickedMsg reports that the player committed to one side of a pair.
type PickedMsg struct {
	Side int
}

// PairKeyMap holds the bindings for choosing between two cards.
type PairKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	PickLeft  key.Binding
	PickRight key.Binding
	Confirm   key.Binding
}

// DefaultPairKeys returns the standard bindings.
func DefaultPairKeys() PairKeyMap {
	return PairKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←→", "Move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		PickLeft: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1/2", "Pick"),
		),
		PickRight: key.NewBinding(
			key.WithKeys("2"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Choose"),
		),
	}
}

// PairChoice shows two prompts side by side and lets the player pick one.
type PairChoice struct {
	Left     string
	Right    string
	Selected int
	Keys     PairKeyMap
}

// NewPairChoice creates a pair selector with the left card highlighted.
func NewPairChoice(left, right string) PairChoice {
	return PairChoice{Left: left, Right: right, Keys: DefaultPairKeys()}
}

// SetPair swaps in a new pair of prompts, keeping the highlighted side.
func (p *PairChoice) SetPair(left, right string) {
	p.Left, p.Right = left, right
}

// Update moves the highlight or emits a PickedMsg.
func (p PairChoice) Update(msg tea.Msg) (PairChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(kmsg, p.Keys.Left):
		p.Selected = 0
	case key.Matches(kmsg, p.Keys.Right):
		p.Selected = 1
	case key.Matches(kmsg, p.Keys.PickLeft):
		p.Selected = 0
		return p, pick(0)
	case key.Matches(kmsg, p.Keys.PickRight):
		p.Selected = 1
		return p, pick(1)
	case key.Matches(kmsg, p.Keys.Confirm):
		return p, pick(p.Selected)
	}
	return p, nil
}

func pick(side int) tea.Cmd {
	return func() tea.Msg { return PickedMsg{Side: side} }
}

// View renders both cards across width columns.
func (p PairChoice) View(width int) string {
	cardWidth := max((width-3)/2, 16)
	left := p.card("1", p.Left, p.Selected == 0, cardWidth)
	right := p.card("2", p.Right, p.Selected == 1, cardWidth)
	gap := lipgloss.NewStyle().Foreground(theme.TextDim).Render(" or ")
	return lipgloss.JoinHorizontal(lipgloss.Center, left, gap, right)
}

func (p PairChoice) card(num, text string, selected bool, width int) string {
	border := theme.Border
	textStyle := theme.Unselected
	if selected {
		border = theme.Primary
		textStyle = theme.Selected
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(num)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Padding(0, 1).
		Render(label + "\n\n" + textStyle.Render(text))
}
