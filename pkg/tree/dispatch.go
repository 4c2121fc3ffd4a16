package tree

// Interaction dispatcher: pure routing from primitive input events to
// exactly one engine action. The table below is the single source of truth
// for event precedence; it holds no state and reads only the event, the
// session's mode flags, and the shape of the addressed node. Events
// addressing a disabled node route to ActionNone without exception.

// EventKind identifies the primitive input class an event belongs to.
type EventKind int

const (
	// EventClick is a pointer press on a node row.
	EventClick EventKind = iota
	// EventCheckbox is a toggle of a node's own checkbox control.
	EventCheckbox
	// EventFocus reports that a node element received platform focus.
	EventFocus
	// EventKey is a keyboard navigation command; see KeyCommand.
	EventKey
)

// KeyCommand enumerates the directional and activation commands of the
// keyboard layer. The mapping from physical keys to commands belongs to the
// presentation layer.
type KeyCommand int

const (
	KeyNone KeyCommand = iota
	KeyNext
	KeyPrev
	KeyFirst
	KeyLast
	KeyExpand
	KeyCollapse
	KeyActivate
)

// Event is a primitive input event forwarded by the presentation layer.
// NodeID addresses click/checkbox/focus events; Key carries the command for
// key events. Key events act on the current focus target.
type Event struct {
	Kind   EventKind
	NodeID string
	Key    KeyCommand
}

// Action is the single routed effect of an event.
type Action int

const (
	ActionNone Action = iota
	ActionActivate
	ActionToggleChecked
	ActionSetFocus
	ActionMoveNext
	ActionMovePrev
	ActionJumpFirst
	ActionJumpLast
	ActionExpand
	ActionCollapse
)

// routeEntry is one row of the dispatch table. The first entry whose guard
// matches wins.
type routeEntry struct {
	guard  func(s *Session, ev Event) bool
	action Action
}

// routes returns the authoritative dispatch table, ordered highest priority
// first. Disabled-node suppression is the first row so no later rule can
// reach a disabled node.
func routes() []routeEntry {
	return []routeEntry{
		{
			// Any event addressed at a disabled or unknown node is dropped.
			guard: func(s *Session, ev Event) bool {
				if ev.Kind == EventKey {
					return false
				}
				n := s.model.Node(ev.NodeID)
				return n == nil || s.model.IsDisabled(ev.NodeID)
			},
			action: ActionNone,
		},
		{
			guard:  func(s *Session, ev Event) bool { return ev.Kind == EventFocus },
			action: ActionSetFocus,
		},
		{
			guard:  func(s *Session, ev Event) bool { return ev.Kind == EventCheckbox },
			action: ActionToggleChecked,
		},
		{
			guard:  func(s *Session, ev Event) bool { return ev.Kind == EventClick },
			action: ActionActivate,
		},
		{guard: keyIs(KeyNext), action: ActionMoveNext},
		{guard: keyIs(KeyPrev), action: ActionMovePrev},
		{guard: keyIs(KeyFirst), action: ActionJumpFirst},
		{guard: keyIs(KeyLast), action: ActionJumpLast},
		{guard: keyIs(KeyExpand), action: ActionExpand},
		{guard: keyIs(KeyCollapse), action: ActionCollapse},
		{guard: keyIs(KeyActivate), action: ActionActivate},
	}
}

func keyIs(k KeyCommand) func(*Session, Event) bool {
	return func(_ *Session, ev Event) bool {
		return ev.Kind == EventKey && ev.Key == k
	}
}

// Route resolves an event to its single action without applying it.
func (s *Session) Route(ev Event) Action {
	for _, r := range routes() {
		if r.guard(s, ev) {
			return r.action
		}
	}
	return ActionNone
}

// Handle routes an event and applies the resulting action. Key-driven
// activation acts on the focus target; addressed events act on their node.
func (s *Session) Handle(ev Event) {
	switch s.Route(ev) {
	case ActionSetFocus:
		s.SetFocus(ev.NodeID)
	case ActionToggleChecked:
		s.ToggleChecked(ev.NodeID)
	case ActionActivate:
		if ev.Kind == EventClick {
			s.activate(ev.NodeID)
		} else {
			s.Activate()
		}
	case ActionMoveNext:
		s.MoveNext()
	case ActionMovePrev:
		s.MovePrev()
	case ActionJumpFirst:
		s.JumpFirst()
	case ActionJumpLast:
		s.JumpLast()
	case ActionExpand:
		s.ExpandFocused()
	case ActionCollapse:
		s.CollapseFocused()
	}
}
