package tree

// Roving focus. The engine tracks a single focused id and derives from it
// the focus target: the one visible, enabled node reachable by a forward tab
// step. Directional commands scan the visible sequence and skip disabled
// ids; the presentation layer translates the logical target into platform
// focus. Disabled nodes never receive focus and never respond to commands.

// FocusedID returns the id last recorded as focused, or "" if none yet.
func (s *Session) FocusedID() string {
	return s.focused
}

// FocusTarget returns the focused id when it is currently visible and
// enabled, else the first visible enabled id, else "".
func (s *Session) FocusTarget() string {
	if s.focused != "" && !s.model.IsDisabled(s.focused) && s.model.visibleIndex(s.focused) >= 0 {
		return s.focused
	}
	for _, id := range s.model.visible {
		if !s.model.IsDisabled(id) {
			return id
		}
	}
	return ""
}

// SetFocus records a focus event from the presentation layer. Disabled and
// unknown ids are refused.
func (s *Session) SetFocus(id string) {
	if s.model.Node(id) == nil || s.model.IsDisabled(id) {
		return
	}
	s.focused = id
}

// MoveNext shifts focus to the next visible enabled id after the current
// target, staying put when no eligible id follows.
func (s *Session) MoveNext() {
	s.moveFocus(+1)
}

// MovePrev shifts focus to the previous visible enabled id before the
// current target, staying put when no eligible id precedes.
func (s *Session) MovePrev() {
	s.moveFocus(-1)
}

func (s *Session) moveFocus(step int) {
	target := s.FocusTarget()
	if target == "" {
		return
	}
	idx := s.model.visibleIndex(target)
	for i := idx + step; i >= 0 && i < len(s.model.visible); i += step {
		if !s.model.IsDisabled(s.model.visible[i]) {
			s.focused = s.model.visible[i]
			return
		}
	}
}

// JumpFirst focuses the first visible enabled id.
func (s *Session) JumpFirst() {
	for _, id := range s.model.visible {
		if !s.model.IsDisabled(id) {
			s.focused = id
			return
		}
	}
}

// JumpLast focuses the last visible enabled id.
func (s *Session) JumpLast() {
	for i := len(s.model.visible) - 1; i >= 0; i-- {
		if !s.model.IsDisabled(s.model.visible[i]) {
			s.focused = s.model.visible[i]
			return
		}
	}
}

// ExpandFocused expands the focus target when it is a collapsed parent.
// Focus is unchanged either way.
func (s *Session) ExpandFocused() {
	target := s.FocusTarget()
	if target == "" {
		return
	}
	if s.model.HasChildren(target) && !s.expanded[target] {
		s.ToggleExpand(target)
	}
}

// CollapseFocused collapses the focus target when it is an expanded parent;
// when it is collapsed or a leaf, focus moves to its parent instead, if it
// has an enabled one.
func (s *Session) CollapseFocused() {
	target := s.FocusTarget()
	if target == "" {
		return
	}
	if s.model.HasChildren(target) && s.expanded[target] {
		s.ToggleExpand(target)
		return
	}
	if parent, ok := s.model.Parent(target); ok && !s.model.IsDisabled(parent) {
		s.focused = parent
	}
}

// Activate performs primary activation on the focus target. In bulk-check
// mode a parent expands or collapses and a leaf toggles its own checked
// state; in navigation mode a parent both expands/collapses and is selected
// (selection permitting), and a leaf is selected.
func (s *Session) Activate() {
	target := s.FocusTarget()
	if target == "" {
		return
	}
	s.activate(target)
}

// activate applies primary-activation semantics to an enabled id.
func (s *Session) activate(id string) {
	if s.opts.BulkCheck {
		if s.model.HasChildren(id) {
			s.ToggleExpand(id)
		} else {
			s.ToggleChecked(id)
		}
		return
	}
	if s.model.HasChildren(id) {
		s.ToggleExpand(id)
	}
	s.Select(id)
}
