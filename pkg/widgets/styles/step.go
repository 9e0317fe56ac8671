package styles

import "github.com/charmbracelet/lipgloss"

// StepState is the visual state of one stepper step.
type StepState int

const (
	StepUpcoming StepState = iota
	StepCurrent
	StepCompleted
	StepError
)

func (s StepState) String() string {
	switch s {
	case StepCurrent:
		return "current"
	case StepCompleted:
		return "completed"
	case StepError:
		return "error"
	default:
		return "upcoming"
	}
}

// StepVariant is how a step in a given state is drawn.
type StepVariant struct {
	Marker string
	Style  lipgloss.Style
}

var stepVariants = map[StepState]StepVariant{
	StepUpcoming:  {Marker: "○", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("8"))},
	StepCurrent:   {Marker: "●", Style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))},
	StepCompleted: {Marker: "✓", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("2"))},
	StepError:     {Marker: "✗", Style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))},
}

// Step returns the variant for s. Unknown states draw as upcoming.
func Step(s StepState) StepVariant {
	if v, ok := stepVariants[s]; ok {
		return v
	}
	return stepVariants[StepUpcoming]
}
