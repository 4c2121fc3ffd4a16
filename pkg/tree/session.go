package tree

import (
	"errors"
	"fmt"
)

// ErrMissingCallback is returned by NewSession when a state facet is marked
// controlled but no change callback was supplied to carry commits back to the
// caller. This is a caller-programming error, distinct from ordinary data
// conditions (unknown ids, vanished nodes) which are silent no-ops.
var ErrMissingCallback = errors.New("controlled state requires its change callback")

// ErrInvalidTree is returned by NewSession when the supplied forest fails
// validation (empty or duplicate ids).
var ErrInvalidTree = errors.New("invalid tree")

// Options configures a Session.
//
// Each of the three state facets (expansion, checked set, selection) can run
// uncontrolled (the session owns the committed value) or controlled (the
// caller owns it: the session only emits the would-be value through the
// callback and the caller pushes the committed value back via the setter).
// In both modes the corresponding callback fires exactly once per committed
// change, carrying the full new value rather than a delta.
type Options struct {
	// BulkCheck switches the interaction model from single selection to
	// checkbox toggling: primary-activate on a leaf toggles its checked
	// state instead of selecting it.
	BulkCheck bool

	// SelectionDisabled makes Select a no-op. Mutually exclusive with
	// selection as an interaction model; checkbox toggling still works.
	SelectionDisabled bool

	// ShowConnectorLines is a display-only flag passed through to renderers.
	// It has no effect on state.
	ShowConnectorLines bool

	// Initial (uncontrolled) or current committed (controlled) values.
	Expanded []string
	Checked  []string
	Selected string

	// Controlled-mode switches per facet.
	ControlledExpansion bool
	ControlledChecked   bool
	ControlledSelection bool

	// Change callbacks. Each receives the full new value in document
	// (pre-order) order.
	OnExpandedChange func(ids []string)
	OnCheckedChange  func(ids []string)
	OnNodeSelect     func(id string)
}

// Session is the single handle threading all tree-view state through the
// controllers: the derived Model, the expansion set, the checked set, the
// selected id, and the focused id. All operations are synchronous and run to
// completion before the next event; the session is not safe for concurrent
// use and is meant to live on a single event loop.
type Session struct {
	model    *Model
	opts     Options
	expanded map[string]bool
	checked  map[string]bool
	selected string
	focused  string
}

// NewSession builds a session over the given forest. The forest is validated
// and deep-copied; configuration errors fail fast here so every later
// operation can assume a well-formed model.
func NewSession(nodes []Node, opts Options) (*Session, error) {
	if err := Validate(nodes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}
	if opts.ControlledExpansion && opts.OnExpandedChange == nil {
		return nil, fmt.Errorf("expansion: %w", ErrMissingCallback)
	}
	if opts.ControlledChecked && opts.OnCheckedChange == nil {
		return nil, fmt.Errorf("checked set: %w", ErrMissingCallback)
	}
	if opts.ControlledSelection && opts.OnNodeSelect == nil {
		return nil, fmt.Errorf("selection: %w", ErrMissingCallback)
	}

	s := &Session{
		opts:     opts,
		expanded: idSet(opts.Expanded),
		checked:  idSet(opts.Checked),
		selected: opts.Selected,
	}
	s.model = NewModel(nodes, s.expanded)

	// Seed values may be internally inconsistent (a parent checked without
	// its leaves, ids that do not exist). Reconcile once so the invariant
	// holds from the first snapshot.
	s.pruneChecked()
	reconcile(s.model, s.checked)
	return s, nil
}

// Model exposes the derived lookup structures.
func (s *Session) Model() *Model {
	return s.model
}

// SetTree replaces the whole tree, rebuilding the lookup structures while
// carrying the expansion, checked, selection, and focus state across. Ids
// that no longer exist are dropped, and the checked set is re-reconciled
// against the new shape. Returns an error only for invalid input trees.
func (s *Session) SetTree(nodes []Node) error {
	if err := Validate(nodes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}
	s.model = NewModel(nodes, s.expanded)
	for id := range s.expanded {
		if s.model.Node(id) == nil {
			delete(s.expanded, id)
		}
	}
	if s.selected != "" && s.model.Node(s.selected) == nil {
		s.selected = ""
	}
	if s.focused != "" && s.model.Node(s.focused) == nil {
		s.focused = ""
	}
	s.pruneChecked()
	reconcile(s.model, s.checked)
	s.model.RecomputeVisible(s.expanded)
	return nil
}

// pruneChecked drops checked ids that are not present in the current tree.
func (s *Session) pruneChecked() {
	for id := range s.checked {
		if s.model.Node(id) == nil {
			delete(s.checked, id)
		}
	}
}

// BulkCheck reports whether checkbox toggling is the active interaction model.
func (s *Session) BulkCheck() bool {
	return s.opts.BulkCheck
}

// ShowConnectorLines reports the display-only connector flag.
func (s *Session) ShowConnectorLines() bool {
	return s.opts.ShowConnectorLines
}

// ExpandedIDs returns the committed expansion set in document order.
func (s *Session) ExpandedIDs() []string {
	return s.documentOrder(s.expanded)
}

// CheckedIDs returns the committed checked set in document order.
func (s *Session) CheckedIDs() []string {
	return s.documentOrder(s.checked)
}

// SelectedID returns the selected id, or "" when nothing is selected.
func (s *Session) SelectedID() string {
	return s.selected
}

// IsExpanded reports membership in the expansion set.
func (s *Session) IsExpanded(id string) bool {
	return s.expanded[id]
}

// IsChecked reports membership in the checked set.
func (s *Session) IsChecked(id string) bool {
	return s.checked[id]
}

// SetExpanded replaces the committed expansion set. This is the write path
// for controlled mode; it does not fire OnExpandedChange.
func (s *Session) SetExpanded(ids []string) {
	s.expanded = idSet(ids)
	s.model.RecomputeVisible(s.expanded)
}

// SetChecked replaces the committed checked set and reconciles it. This is
// the write path for controlled mode; it does not fire OnCheckedChange.
func (s *Session) SetChecked(ids []string) {
	s.checked = idSet(ids)
	s.pruneChecked()
	reconcile(s.model, s.checked)
}

// SetSelected replaces the committed selection. This is the write path for
// controlled mode; it does not fire OnNodeSelect.
func (s *Session) SetSelected(id string) {
	s.selected = id
}

// commitExpanded routes a new expansion set to its owner. Controlled mode
// commits through the callback only; uncontrolled mode stores it and then
// notifies. Never both, and never for a set equal to the committed one.
func (s *Session) commitExpanded(next map[string]bool) {
	if sameSet(s.expanded, next) {
		return
	}
	if s.opts.ControlledExpansion {
		s.opts.OnExpandedChange(orderedIDs(s.model, next))
		return
	}
	s.expanded = next
	s.model.RecomputeVisible(s.expanded)
	if s.opts.OnExpandedChange != nil {
		s.opts.OnExpandedChange(orderedIDs(s.model, next))
	}
}

// commitChecked routes a new checked set to its owner, mirroring
// commitExpanded. A mutation that reconciled back to the current value is
// not a state change and fires nothing.
func (s *Session) commitChecked(next map[string]bool) {
	if sameSet(s.checked, next) {
		return
	}
	if s.opts.ControlledChecked {
		s.opts.OnCheckedChange(orderedIDs(s.model, next))
		return
	}
	s.checked = next
	if s.opts.OnCheckedChange != nil {
		s.opts.OnCheckedChange(orderedIDs(s.model, next))
	}
}

// commitSelected routes a new selection to its owner. Re-selecting the
// committed id is not a state change and fires nothing.
func (s *Session) commitSelected(id string) {
	if id == s.selected {
		return
	}
	if s.opts.ControlledSelection {
		s.opts.OnNodeSelect(id)
		return
	}
	s.selected = id
	if s.opts.OnNodeSelect != nil {
		s.opts.OnNodeSelect(id)
	}
}

// Row is the per-node snapshot handed to renderers. The renderer paints
// icon/label/badge from this plus the node's own display data and forwards
// raw input back through Handle.
type Row struct {
	ID            string
	Name          string
	Depth         int
	HasChildren   bool
	Expanded      bool
	Selected      bool
	Checked       bool
	Indeterminate bool
	Disabled      bool
	Loading       bool
	FocusTarget   bool

	// Node points into the model's internal copy of the tree so renderers
	// can reach the Data payload without another copy per row. It is
	// read-only: writing through it corrupts the derived lookups. Mutating
	// the tree means handing a new node slice to SetTree.
	Node *Node
}

// Rows returns the current visible snapshot in navigation order. Exactly one
// row has FocusTarget set whenever any visible node is enabled.
func (s *Session) Rows() []Row {
	target := s.FocusTarget()
	rows := make([]Row, 0, len(s.model.visible))
	for _, id := range s.model.visible {
		n := s.model.Node(id)
		rows = append(rows, Row{
			ID:            id,
			Name:          n.Name,
			Depth:         s.model.Depth(id),
			HasChildren:   len(n.Children) > 0,
			Expanded:      s.expanded[id],
			Selected:      id == s.selected,
			Checked:       s.checked[id],
			Indeterminate: s.Indeterminate(id),
			Disabled:      s.model.IsDisabled(id),
			Loading:       n.Loading,
			FocusTarget:   id == target,
			Node:          n,
		})
	}
	return rows
}

// idSet converts an id slice to a membership set.
func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// copySet duplicates a membership set before mutation so the committed value
// is never edited in place.
func copySet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for id := range set {
		out[id] = true
	}
	return out
}

// sameSet reports whether two membership sets are equal.
func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}

// orderedIDs projects a membership set onto the tree's document order so
// emitted values are deterministic. Ids unknown to the model are dropped.
func orderedIDs(m *Model, set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for _, id := range m.preorder {
		if set[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Session) documentOrder(set map[string]bool) []string {
	return orderedIDs(s.model, set)
}
