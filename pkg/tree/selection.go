package tree

// Select sets the single selected id, silently replacing any previous
// selection. When SelectionDisabled is set the call is a no-op, as is
// selecting an unknown id.
func (s *Session) Select(id string) {
	if s.opts.SelectionDisabled {
		return
	}
	if s.model.Node(id) == nil {
		return
	}
	s.commitSelected(id)
}

// ClearSelection drops the current selection, if any.
func (s *Session) ClearSelection() {
	s.commitSelected("")
}
