// Package widgets collects Bubble Tea adapters over the interaction engine.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/rover/pkg/widgets/tabs]: tab bar with one visible panel
//   - [github.com/germanamz/rover/pkg/widgets/accordion]: collapsible vertical sections
//   - [github.com/germanamz/rover/pkg/widgets/stepper]: multi-step progress with optional locking
//   - [github.com/germanamz/rover/pkg/widgets/carousel]: one slide at a time with dots
//   - [github.com/germanamz/rover/pkg/widgets/rangepick]: start and end picking over a list
//   - [github.com/germanamz/rover/pkg/widgets/styles]: shared lipgloss styles
//
// Each adapter owns rendering only. State lives in the engine passed to New.
package widgets
