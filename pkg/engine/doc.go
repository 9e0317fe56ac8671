// Package engine is the composition root of a composite widget. One Engine
// per widget instance assembles the selection model, navigation, activation
// policy, focus coordinator, announcement channel and controlled-value
// bridge from a Config, and exposes them through a Bubble Tea friendly API.
// Adapters receive the Engine explicitly, observe activity through an
// EventBus, and render from State and Accessibility without importing the
// lower-level packages for anything but types.
package engine
