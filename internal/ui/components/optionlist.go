package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// OptionList displays the keyed answer choices for one question. Options
// are addressed by their letter key, not by position, so the cursor and
// the recorded choice are both keys.
type OptionList struct {
	Keys      []string          // display order, e.g. a b c d
	Options   map[string]string // key -> option text
	Cursor    int               // index into Keys
	ChosenKey string            // "" until an answer is picked
}

// NewOptionList creates an option list over the given keyed choices.
func NewOptionList(keys []string, options map[string]string) OptionList {
	return OptionList{
		Keys:    keys,
		Options: options,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Letter keys jump straight to the
// matching option; enter picks the one under the cursor.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Keys)-1 {
			o.Cursor++
		}
	case "enter":
		o.ChosenKey = o.Keys[o.Cursor]
	default:
		for i, k := range o.Keys {
			if key == k {
				o.Cursor = i
				o.ChosenKey = k
			}
		}
	}

	return o, nil
}

// SetChosen restores a previously recorded answer, e.g. when navigating
// back to an already answered question.
func (o *OptionList) SetChosen(key string) {
	o.ChosenKey = key
	for i, k := range o.Keys {
		if k == key {
			o.Cursor = i
		}
	}
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, k := range o.Keys {
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		marker := "( )"
		if k == o.ChosenKey {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, k, o.Options[k])

		if i == o.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else if k == o.ChosenKey {
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
