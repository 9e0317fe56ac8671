package demo

import (
	"fmt"

	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/engine"
)

// Kinds lists the widgets the demo can show, in help order.
var Kinds = []string{"tabs", "accordion", "stepper", "carousel", "rangepick"}

// Sample returns the built-in configuration for a widget kind.
func Sample(kind string) (engine.Config, error) {
	switch kind {
	case "tabs":
		return engine.Config{
			Name:             "settings",
			AriaLabel:        "Settings",
			NumericShortcuts: true,
			Description: "## Tabs\n\nArrow keys move between tabs and show them right away. " +
				"Digits jump straight to a tab. The *Billing* tab is disabled.",
			Items: []item.Item{
				{ID: "general", Label: "General", Payload: "Name, language and time zone."},
				{ID: "security", Label: "Security", Payload: "Password and two-factor sign in."},
				{ID: "billing", Label: "Billing", Disabled: true},
				{ID: "notifications", Label: "Notifications", Payload: "Email and push preferences."},
			},
		}, nil
	case "accordion":
		return engine.Config{
			Name:      "faq",
			AriaLabel: "Frequently asked questions",
			Mode:      "multi",
			Description: "## Accordion\n\nMove with the arrow keys and press **enter** to expand or " +
				"collapse a section. Several sections may be open at once.",
			Items: []item.Item{
				{ID: "shipping", Label: "How long does shipping take?", Payload: "Three to five business days."},
				{ID: "returns", Label: "Can I return an item?", Payload: "Yes, within thirty days of delivery."},
				{ID: "warranty", Label: "Is there a warranty?", Payload: "Every product carries a two year warranty."},
			},
		}, nil
	case "stepper":
		return engine.Config{
			Name:      "checkout",
			AriaLabel: "Checkout progress",
			Description: "## Stepper\n\nPress **n** and **b** to go forward and back, or focus a step " +
				"and press **enter**. With `--linear` steps unlock as you reach them.",
			Items: []item.Item{
				{ID: "cart", Label: "Cart"},
				{ID: "shipping", Label: "Shipping"},
				{ID: "payment", Label: "Payment"},
				{ID: "review", Label: "Review"},
			},
		}, nil
	case "carousel":
		return engine.Config{
			Name:      "gallery",
			AriaLabel: "Featured photos",
			Description: "## Carousel\n\nArrow keys change the slide. The last slide wraps " +
				"around to the first.",
			Items: []item.Item{
				{ID: "dunes", Label: "Dunes", Payload: "Wind-carved dunes at sunrise."},
				{ID: "fjord", Label: "Fjord", Payload: "A quiet fjord under low cloud."},
				{ID: "canyon", Label: "Canyon", Payload: "Red walls of a desert canyon."},
				{ID: "glacier", Label: "Glacier", Payload: "Blue ice at the edge of a glacier."},
			},
		}, nil
	case "rangepick":
		items := make([]item.Item, 0, 14)
		for d := 1; d <= 14; d++ {
			items = append(items, item.Item{
				ID:       fmt.Sprintf("2026-03-%02d", d),
				Label:    fmt.Sprintf("Mar %d", d),
				Disabled: d%7 == 1,
			})
		}
		return engine.Config{
			Name:      "stay",
			AriaLabel: "Choose your dates",
			Description: "## Range picker\n\nPick a start date, then an end date. Picking an " +
				"earlier end swaps the two. Sundays are fully booked.",
			Items: items,
		}, nil
	default:
		return engine.Config{}, fmt.Errorf("demo: unknown widget %q (want one of %v)", kind, Kinds)
	}
}
