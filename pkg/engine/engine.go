package engine

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/germanamz/rover/pkg/composite/activation"
	"github.com/germanamz/rover/pkg/composite/announce"
	"github.com/germanamz/rover/pkg/composite/controlled"
	"github.com/germanamz/rover/pkg/composite/focus"
	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/composite/navigation"
	"github.com/germanamz/rover/pkg/composite/selection"
)

// ClickMsg is a pointer activation of an item, produced by an adapter's hit
// testing.
type ClickMsg struct {
	Widget string
	ID     string
}

// BlurMsg reports that platform focus left an item. Inside is set when the
// new target is another item of the same widget.
type BlurMsg struct {
	Widget string
	Inside bool
}

// State is a snapshot of one widget's interaction state.
type State struct {
	ActiveIDs    []string
	FocusedIndex int
	FocusedID    string
	KeyboardMode bool
	Degraded     bool
	Destroyed    bool
	Control      controlled.Mode
	Announcement string
}

// Engine is the composition root for one widget instance. It wires the
// selection model, navigation, activation policy, focus coordinator,
// announcement channel and controlled-value bridge, and runs every
// transition synchronously inside Update. It is not safe for concurrent use.
type Engine struct {
	id       string
	name     string
	cfg      Config
	set      settings
	log      *slog.Logger
	events   *EventBus
	sel      *selection.Model
	bridge   *controlled.Bridge
	focus    *focus.Coordinator
	target   focus.Target
	ring     *focus.Ring
	policy   activation.Policy
	keys     navigation.KeyMap
	channel  *announce.Channel
	phrases  announce.Phrases
	keysSet  bool

	destroyed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithFocusTarget replaces the default focus.Ring with the adapter's own
// platform focus target.
func WithFocusTarget(t focus.Target) Option {
	return func(e *Engine) { e.target = t }
}

// WithPolicy overrides the activation policy derived from Config.Activation.
func WithPolicy(p activation.Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(km navigation.KeyMap) Option {
	return func(e *Engine) { e.keys, e.keysSet = km, true }
}

// WithEventBus shares an event bus between engines.
func WithEventBus(b *EventBus) Option {
	return func(e *Engine) { e.events = b }
}

// WithID fixes the instance id used for element ids and message routing.
func WithID(id string) Option {
	return func(e *Engine) { e.id = id }
}

// WithPhrases customizes announcement wording.
func WithPhrases(p announce.Phrases) Option {
	return func(e *Engine) { e.phrases = p }
}

// New creates an Engine from the given configuration. The widget is
// controlled when cfg.Value is non-nil and uncontrolled otherwise; that
// choice is fixed for the engine's lifetime.
func New(cfg Config, opts ...Option) (*Engine, error) {
	set, err := cfg.parse()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		name: cfg.Name,
		cfg:  cfg,
		set:  set,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.id == "" {
		e.id = uuid.NewString()
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	e.log = e.log.With("widget", e.label())
	if e.events == nil {
		e.events = NewEventBus()
	}
	if e.policy == nil {
		e.policy = activation.For(set.activation)
	}
	if !e.keysSet {
		e.keys = navigation.DefaultKeyMap(set.orientation, cfg.NumericShortcuts)
	}
	if e.target == nil {
		e.ring = focus.NewRing()
		e.ring.Mount(set.items.Len())
		e.target = e.ring
	}
	e.phrases = e.phrases.Fill()

	e.sel = selection.New(set.mode, set.items)
	e.focus = focus.New(e.id)
	e.channel = announce.New(e.id, set.delay, set.politeness)

	var initial controlled.Value
	if cfg.Value != nil {
		initial = controlled.ValueOf(cfg.Value...)
	}
	e.bridge = controlled.New(e.sel, initial, cfg.DefaultValue, cfg.OnChange)
	if e.bridge.Degraded() {
		e.log.Warn("controlled value references unknown or disabled items", "value", cfg.Value, "active", e.sel.Active())
	}

	return e, nil
}

// ID returns the instance id.
func (e *Engine) ID() string { return e.id }

// Events returns the engine's event bus.
func (e *Engine) Events() *EventBus { return e.events }

// KeyMap returns the active key bindings, for help rendering.
func (e *Engine) KeyMap() navigation.KeyMap { return e.keys }

// Items returns the current item list.
func (e *Engine) Items() item.List { return e.sel.Items() }

// Orientation returns the configured orientation.
func (e *Engine) Orientation() navigation.Orientation { return e.set.orientation }

// Circular reports whether navigation wraps.
func (e *Engine) Circular() bool { return e.cfg.Circular }

// FocusRing returns the default focus target, or nil when WithFocusTarget
// was used.
func (e *Engine) FocusRing() *focus.Ring { return e.ring }

// Description returns the caller-supplied longer explanation.
func (e *Engine) Description() string { return e.cfg.Description }

// Init auto-focuses the tab stop when configured.
func (e *Engine) Init() tea.Cmd {
	if !e.cfg.AutoFocus || e.destroyed {
		return nil
	}
	idx := e.tabStop()
	if e.focus.AutoFocus(idx) {
		e.publishFocus(navigation.Programmatic)
	}
	return e.focus.CommitCmd()
}

// Update routes a message to the matching operation. Messages addressed to
// other widgets are ignored.
func (e *Engine) Update(msg tea.Msg) tea.Cmd {
	if e.destroyed {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return e.Key(msg)
	case ClickMsg:
		if msg.Widget == e.id {
			return e.Click(msg.ID)
		}
	case BlurMsg:
		if msg.Widget == e.id {
			e.Blur(msg.Inside)
		}
	case focus.CommitMsg:
		if e.focus.Commit(msg, e.target) {
			e.log.Debug("focus committed", "index", e.focus.Index())
			return nil
		}
		retry, dropped := e.focus.Retry(msg)
		if dropped {
			e.log.Warn("focus target never rendered", "index", e.focus.Index())
		}
		return retry
	case announce.ClearMsg:
		e.channel.HandleClear(msg)
	}

	return nil
}

// Key maps a key press to an intent and applies it.
func (e *Engine) Key(msg tea.KeyMsg) tea.Cmd {
	if e.destroyed {
		return nil
	}
	in, ok := e.keys.Resolve(msg)
	if !ok {
		return nil
	}
	return e.Navigate(in, navigation.Keyboard)
}

// Navigate moves focus according to in. With nothing focused, Next and
// Previous land on the tab stop and other intents resolve from it. Under an
// automatic policy the newly focused item is also selected. A Confirm intent
// is handed to Confirm.
func (e *Engine) Navigate(in navigation.Intent, src navigation.Source) tea.Cmd {
	if e.destroyed {
		return nil
	}
	if in.Kind == navigation.KindConfirm {
		return e.Confirm()
	}

	items := e.sel.Items()
	cur := e.focus.Index()
	var out navigation.Outcome
	if stop := e.tabStop(); cur < 0 && stop >= 0 && (in.Kind == navigation.KindNext || in.Kind == navigation.KindPrevious) {
		// Entering the widget: the first step lands on the tab stop.
		out = navigation.Outcome{Index: stop, Moved: true, Target: -1}
	} else {
		if cur < 0 {
			cur = stop
		}
		out = navigation.Resolve(cur, in, navigation.Options{
			Circular:    e.cfg.Circular,
			Orientation: e.set.orientation,
			Items:       items,
		})
	}

	if out.Rejected {
		it, _ := items.At(out.Target)
		e.log.Debug("navigation target unavailable", "id", it.ID, "index", out.Target, "intent", in.String())
		return e.Announce(e.phrases.Unavailable(it.Title()))
	}
	if out.Index < 0 {
		return nil
	}

	var cmds []tea.Cmd
	if out.Index != e.focus.Index() || (src == navigation.Keyboard && !e.focus.KeyboardMode()) {
		if e.focus.Move(out.Index, src) {
			e.publishFocus(src)
		}
		cmds = append(cmds, e.focus.CommitCmd())
	}

	it, _ := items.At(out.Index)
	var announced tea.Cmd
	if e.policy.SelectOnFocus(src) {
		announced = e.change(it.ID, src, (*selection.Model).Select)
	}
	if announced == nil && out.Boundary {
		announced = e.Announce(e.phrases.Boundary(it.Title()))
	}

	return tea.Batch(append(cmds, announced)...)
}

// Confirm activates the focused item, or the tab stop when nothing is
// focused. In multi mode it toggles; in single mode it selects, or
// deselects the active item when Collapsible is set.
func (e *Engine) Confirm() tea.Cmd {
	if e.destroyed {
		return nil
	}
	idx := e.focus.Index()
	var cmds []tea.Cmd
	if idx < 0 {
		idx = e.tabStop()
		if idx < 0 {
			return nil
		}
		if e.focus.Move(idx, navigation.Keyboard) {
			e.publishFocus(navigation.Keyboard)
		}
		cmds = append(cmds, e.focus.CommitCmd())
	}

	it, _ := e.sel.Items().At(idx)
	return tea.Batch(append(cmds, e.activate(it.ID, navigation.Keyboard))...)
}

// Click focuses and activates id. Clicks on disabled items only announce
// that the item is unavailable.
func (e *Engine) Click(id string) tea.Cmd {
	if e.destroyed {
		return nil
	}
	items := e.sel.Items()
	idx := items.IndexOf(id)
	if idx < 0 {
		return nil
	}
	if !items.Enabled(idx) {
		it, _ := items.At(idx)
		e.log.Debug("click on disabled item", "id", id, "index", idx)
		return e.Announce(e.phrases.Unavailable(it.Title()))
	}

	if e.focus.Move(idx, navigation.Pointer) {
		e.publishFocus(navigation.Pointer)
	}
	return tea.Batch(e.focus.CommitCmd(), e.activate(id, navigation.Pointer))
}

// Focus moves focus to id programmatically, leaving keyboard mode as is.
// Unknown and disabled ids are ignored.
func (e *Engine) Focus(id string) tea.Cmd {
	return e.moveTo(id, navigation.Programmatic)
}

// Point moves focus to id the way a pointer press does, ending keyboard
// mode, without activating it. Adapters that handle their own clicks call
// it before applying the click.
func (e *Engine) Point(id string) tea.Cmd {
	return e.moveTo(id, navigation.Pointer)
}

func (e *Engine) moveTo(id string, src navigation.Source) tea.Cmd {
	if e.destroyed {
		return nil
	}
	idx := e.sel.Items().IndexOf(id)
	if !e.sel.Items().Enabled(idx) {
		return nil
	}
	if e.focus.Move(idx, src) {
		e.publishFocus(src)
	}
	return e.focus.CommitCmd()
}

// Blur handles platform focus leaving an item.
func (e *Engine) Blur(inside bool) {
	if e.destroyed {
		return
	}
	if e.focus.Blur(inside) {
		e.clearRing()
		e.publishFocus(navigation.Programmatic)
	}
}

// Select activates id programmatically. The activation policy is bypassed.
func (e *Engine) Select(id string) tea.Cmd {
	return e.change(id, navigation.Programmatic, (*selection.Model).Select)
}

// Deselect deactivates id programmatically.
func (e *Engine) Deselect(id string) tea.Cmd {
	return e.change(id, navigation.Programmatic, (*selection.Model).Deselect)
}

// Toggle flips id programmatically. Multi mode only.
func (e *Engine) Toggle(id string) tea.Cmd {
	return e.change(id, navigation.Programmatic, (*selection.Model).Toggle)
}

// SetActive proposes a whole new active set without announcing it. It
// reports whether the change was applied, which only happens in
// uncontrolled mode.
func (e *Engine) SetActive(ids []string) bool {
	if e.destroyed {
		return false
	}
	preview := e.sel.Clone()
	preview.Replace(ids)
	next := preview.Active()
	if slices.Equal(next, e.sel.Active()) {
		return false
	}
	return e.propose(next)
}

// Sync feeds the caller's current value for this update cycle. Controlled
// widgets must supply a value every cycle and uncontrolled widgets never;
// a mismatch returns controlled.ErrModeSwitch and leaves state untouched.
// The returned command announces the first newly active item.
func (e *Engine) Sync(v controlled.Value) (tea.Cmd, error) {
	if e.destroyed {
		return nil, nil
	}

	before := e.sel.Active()
	if err := e.bridge.Sync(v); err != nil {
		e.log.Warn("controlled mode switch ignored", "mode", e.bridge.Mode().String(), "error", err)
		e.publish(EventModeSwitch, err)
		return nil, fmt.Errorf("engine: sync: %w", err)
	}

	return e.afterReconcile(before), nil
}

// SetItems replaces the item list. Active ids that vanished or became
// disabled are pruned, controlled values are re-applied, and focus follows
// the focused item's id to its new position. The default Ring is mounted to
// the new length right away; see focus.Ring.
func (e *Engine) SetItems(items []item.Item) (tea.Cmd, error) {
	if e.destroyed {
		return nil, nil
	}
	list, err := item.NewList(items)
	if err != nil {
		return nil, fmt.Errorf("engine: set items: %w", err)
	}

	old := e.sel.Items()
	focusedID := ""
	if it, ok := old.At(e.focus.Index()); ok {
		focusedID = it.ID
	}

	before := e.sel.Active()
	if dropped := e.sel.SetItems(list); len(dropped) > 0 {
		e.log.Debug("pruned active items", "ids", dropped)
	}
	e.bridge.Refresh()
	if e.ring != nil {
		e.ring.Mount(list.Len())
	}

	var cmds []tea.Cmd
	switch idx := list.IndexOf(focusedID); {
	case focusedID == "":
	case idx >= 0 && list.Enabled(idx):
		if idx != e.focus.Index() {
			e.focus.Move(idx, navigation.Programmatic)
			e.publishFocus(navigation.Programmatic)
			cmds = append(cmds, e.focus.CommitCmd())
		}
	default:
		e.focus.Reset()
		e.clearRing()
		e.publishFocus(navigation.Programmatic)
	}

	return tea.Batch(append(cmds, e.afterReconcile(before))...), nil
}

// Announce publishes text on the live region and returns the command that
// clears it after the configured delay.
func (e *Engine) Announce(text string) tea.Cmd {
	if e.destroyed {
		return nil
	}
	cmd := e.channel.Announce(text)
	if cmd != nil {
		e.publish(EventAnnounced, AnnounceData{Text: text})
	}
	return cmd
}

// Destroy cancels the pending announcement timer and detaches pending focus
// effects. Every operation is a no-op afterwards.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.channel.Destroy()
	e.focus.Detach()
	e.publish(EventDestroyed, nil)
	e.log.Debug("widget destroyed")
}

// State returns a snapshot of the interaction state.
func (e *Engine) State() State {
	s := State{
		ActiveIDs:    e.sel.Active(),
		FocusedIndex: e.focus.Index(),
		KeyboardMode: e.focus.KeyboardMode(),
		Degraded:     e.bridge.Degraded(),
		Destroyed:    e.destroyed,
		Control:      e.bridge.Mode(),
		Announcement: e.channel.Message(),
	}
	if it, ok := e.sel.Items().At(s.FocusedIndex); ok {
		s.FocusedID = it.ID
	}
	return s
}

// activate applies an explicit activation (confirm or click).
func (e *Engine) activate(id string, src navigation.Source) tea.Cmd {
	op := (*selection.Model).Select
	switch {
	case e.sel.Mode() == selection.Multi:
		op = (*selection.Model).Toggle
	case e.cfg.Collapsible && e.sel.IsSelected(id):
		op = (*selection.Model).Deselect
	}
	return e.change(id, src, op)
}

// change previews op on a copy of the selection and proposes the result
// through the bridge. Only applied changes are announced.
func (e *Engine) change(id string, src navigation.Source, op func(*selection.Model, string) selection.Result) tea.Cmd {
	if e.destroyed {
		return nil
	}

	preview := e.sel.Clone()
	switch res := op(preview, id); res {
	case selection.Applied:
	case selection.Rejected:
		it, _ := e.sel.Items().Get(id)
		e.log.Debug("activation rejected", "id", id, "source", src.String())
		return e.Announce(e.phrases.Unavailable(it.Title()))
	case selection.Unsupported:
		e.log.Warn("operation unsupported in mode", "id", id, "mode", e.sel.Mode().String())
		return nil
	default:
		return nil
	}

	if !e.propose(preview.Active()) {
		return nil
	}
	return e.announceItem(id)
}

func (e *Engine) propose(next []string) bool {
	e.publish(EventChangeRequested, SelectionData{Active: next})
	if !e.bridge.Propose(next) {
		e.log.Debug("change proposed to controlling owner", "ids", next)
		return false
	}
	e.publish(EventSelectionChanged, SelectionData{Active: e.sel.Active()})
	return true
}

// afterReconcile reports the outcome of a bridge reconciliation and
// announces the first newly active item.
func (e *Engine) afterReconcile(before []string) tea.Cmd {
	after := e.sel.Active()
	if e.bridge.Degraded() {
		e.log.Warn("controlled value references unknown or disabled items", "active", after)
		e.publish(EventDegraded, SelectionData{Active: after})
	}
	if slices.Equal(before, after) {
		return nil
	}
	e.publish(EventSelectionChanged, SelectionData{Active: after})

	for _, id := range after {
		if !slices.Contains(before, id) {
			return e.announceItem(id)
		}
	}
	return nil
}

func (e *Engine) announceItem(id string) tea.Cmd {
	items := e.sel.Items()
	it, ok := items.Get(id)
	if !ok {
		return nil
	}
	pos, total := it.Index+1, items.Len()
	if e.sel.IsSelected(id) {
		return e.Announce(e.phrases.Activated(it.Title(), pos, total))
	}
	return e.Announce(e.phrases.Deactivated(it.Title(), pos, total))
}

// tabStop returns the index of the item reachable by the default tab
// order: the focused item, else the first active enabled item, else the
// first enabled item. -1 when nothing is enabled.
func (e *Engine) tabStop() int {
	items := e.sel.Items()
	if idx := e.focus.Index(); items.Enabled(idx) {
		return idx
	}
	for _, id := range e.sel.Active() {
		if idx := items.IndexOf(id); items.Enabled(idx) {
			return idx
		}
	}
	return items.FirstEnabled()
}

func (e *Engine) clearRing() {
	if e.ring != nil {
		e.ring.Clear()
	}
}

func (e *Engine) publishFocus(src navigation.Source) {
	data := FocusData{Index: e.focus.Index(), Source: src}
	if it, ok := e.sel.Items().At(data.Index); ok {
		data.ID = it.ID
	}
	e.publish(EventFocusChanged, data)
}

func (e *Engine) publish(kind EventKind, data any) {
	e.events.Publish(Event{
		Kind:      kind,
		Widget:    e.id,
		Timestamp: time.Now(),
		Data:      data,
	})
}

func (e *Engine) label() string {
	if e.name != "" {
		return e.name
	}
	return e.id
}
