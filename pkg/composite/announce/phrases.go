package announce

import "fmt"

// Phrases builds the announcement text for each transition. Widgets override
// the fields they phrase differently; Fill supplies the rest.
type Phrases struct {
	Activated   func(label string, pos, total int) string
	Deactivated func(label string, pos, total int) string
	Unavailable func(label string) string
	Boundary    func(label string) string
}

// DefaultPhrases returns the generic wording.
func DefaultPhrases() Phrases {
	return Phrases{
		Activated: func(label string, _, _ int) string {
			return label + " activated"
		},
		Deactivated: func(label string, _, _ int) string {
			return label + " deactivated"
		},
		Unavailable: func(label string) string {
			if label == "" {
				return "Item unavailable"
			}
			return label + " unavailable"
		},
		Boundary: func(label string) string {
			return "End of list, " + label
		},
	}
}

// Fill returns p with nil fields taken from DefaultPhrases.
func (p Phrases) Fill() Phrases {
	d := DefaultPhrases()
	if p.Activated == nil {
		p.Activated = d.Activated
	}
	if p.Deactivated == nil {
		p.Deactivated = d.Deactivated
	}
	if p.Unavailable == nil {
		p.Unavailable = d.Unavailable
	}
	if p.Boundary == nil {
		p.Boundary = d.Boundary
	}
	return p
}

// Expanded phrases a disclosure section opening.
func Expanded(label string, _, _ int) string { return label + " expanded" }

// Collapsed phrases a disclosure section closing.
func Collapsed(label string, _, _ int) string { return label + " collapsed" }

// StepCurrent phrases a stepper moving to a step.
func StepCurrent(label string, pos, total int) string {
	return fmt.Sprintf("Step %d of %d: %s", pos, total, label)
}

// Slide phrases a carousel moving to a slide.
func Slide(label string, pos, total int) string {
	return fmt.Sprintf("Slide %d of %d: %s", pos, total, label)
}

// RangeStart phrases the first pick of a range.
func RangeStart(label string) string { return "Start date selected: " + label }

// RangeEnd phrases the second pick of a range.
func RangeEnd(label string) string { return "End date selected: " + label }

// RangeComplete phrases a finished range.
func RangeComplete(start, end string) string {
	return fmt.Sprintf("Range selected: %s to %s", start, end)
}
