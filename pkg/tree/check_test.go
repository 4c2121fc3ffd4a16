package tree

import (
	"reflect"
	"testing"
)

func twoLeafForest() []Node {
	return []Node{
		{ID: "root", Name: "Root", Children: []Node{
			{ID: "leafA", Name: "Leaf A"},
			{ID: "leafB", Name: "Leaf B"},
		}},
	}
}

// TestToggleCheckedParent verifies toggling a parent checks the whole
// subtree and the parent itself.
func TestToggleCheckedParent(t *testing.T) {
	s, err := NewSession(twoLeafForest(), Options{BulkCheck: true})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	s.ToggleChecked("root")
	want := []string{"root", "leafA", "leafB"}
	if got := s.CheckedIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("CheckedIDs = %v, want %v", got, want)
	}

	// Toggling again clears the subtree.
	s.ToggleChecked("root")
	if got := s.CheckedIDs(); len(got) != 0 {
		t.Errorf("CheckedIDs after second toggle = %v, want empty", got)
	}
}

// TestToggleCheckedLeafMakesParentIndeterminate verifies checking one of two
// leaves leaves the parent unchecked but indeterminate.
func TestToggleCheckedLeafMakesParentIndeterminate(t *testing.T) {
	s, err := NewSession(twoLeafForest(), Options{BulkCheck: true})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	s.ToggleChecked("leafA")
	if got := s.CheckedIDs(); !reflect.DeepEqual(got, []string{"leafA"}) {
		t.Errorf("CheckedIDs = %v, want [leafA]", got)
	}
	if !s.Indeterminate("root") {
		t.Error("root should be indeterminate with one of two leaves checked")
	}
	if s.IsChecked("root") {
		t.Error("root must not be checked with only one leaf checked")
	}

	// Checking the second leaf completes the parent.
	s.ToggleChecked("leafB")
	if !s.IsChecked("root") {
		t.Error("root should be checked once every leaf is")
	}
	if s.Indeterminate("root") {
		t.Error("root cannot be indeterminate while fully checked")
	}
}

// TestCheckedGroupUnaffectedByCollapse verifies propagation works on the
// full tree regardless of expansion: checking a leaf while its ancestor is
// collapsed still produces the right parent state once expanded.
func TestCheckedGroupUnaffectedByCollapse(t *testing.T) {
	s, err := NewSession(twoLeafForest(), Options{BulkCheck: true})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	// root starts collapsed; report a group change for its children anyway.
	s.SetCheckedGroup("root", []string{"leafA"})
	if got := s.CheckedIDs(); !reflect.DeepEqual(got, []string{"leafA"}) {
		t.Errorf("CheckedIDs = %v, want [leafA]", got)
	}

	s.ToggleExpand("root")
	if got := s.CheckedIDs(); !reflect.DeepEqual(got, []string{"leafA"}) {
		t.Errorf("CheckedIDs after expand = %v, want [leafA]", got)
	}
	if !s.Indeterminate("root") {
		t.Error("root should be indeterminate after expand")
	}
}

// TestSetCheckedGroupReplacesMembership verifies the group call removes the
// previous descendant membership wholesale before re-adding.
func TestSetCheckedGroupReplacesMembership(t *testing.T) {
	s := newTestSession(t, Options{BulkCheck: true})

	s.ToggleChecked("docs") // docs, readme, license
	s.SetCheckedGroup("docs", []string{"license"})

	if got := s.CheckedIDs(); !reflect.DeepEqual(got, []string{"license"}) {
		t.Errorf("CheckedIDs = %v, want [license]", got)
	}
	if !s.Indeterminate("docs") {
		t.Error("docs should be indeterminate")
	}
}

// TestSetCheckedGroupIgnoresOutsiders verifies ids outside the parent's
// subtree cannot sneak into the checked set through a group report.
func TestSetCheckedGroupIgnoresOutsiders(t *testing.T) {
	s := newTestSession(t, Options{BulkCheck: true})

	s.SetCheckedGroup("docs", []string{"readme", "util", "ghost"})
	if got := s.CheckedIDs(); !reflect.DeepEqual(got, []string{"readme"}) {
		t.Errorf("CheckedIDs = %v, want [readme]", got)
	}
}

// TestReconcilePropagatesUpward verifies grandparents reflect corrected
// parent state: checking every leaf under src checks core, src, and nothing
// above (docs leaves are unchecked so root stays out).
func TestReconcilePropagatesUpward(t *testing.T) {
	s := newTestSession(t, Options{BulkCheck: true})

	for _, id := range []string{"engine", "legacy", "util", "assets"} {
		s.ToggleChecked(id)
	}

	for _, id := range []string{"core", "src"} {
		if !s.IsChecked(id) {
			t.Errorf("%s should be checked once all its leaves are", id)
		}
	}
	if s.IsChecked("root") {
		t.Error("root must not be checked while docs leaves are unchecked")
	}
	if !s.Indeterminate("root") {
		t.Error("root should be indeterminate")
	}
}

// TestZeroLeafParentNeverChecked verifies a parent with an empty children
// list is not auto-checked by reconciliation.
func TestZeroLeafParentNeverChecked(t *testing.T) {
	nodes := []Node{
		{ID: "top", Children: []Node{
			{ID: "hollow", Children: []Node{}},
			{ID: "leaf"},
		}},
	}
	s, err := NewSession(nodes, Options{BulkCheck: true})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	s.ToggleChecked("leaf")
	if s.IsChecked("hollow") {
		t.Error("zero-leaf parent must never be auto-checked")
	}
	if s.Indeterminate("hollow") {
		t.Error("zero-leaf parent cannot be indeterminate")
	}
	// hollow contributes no leaves, so top's only leaf descendant is "leaf"
	// and checking it completes top.
	if !s.IsChecked("top") {
		t.Error("top should be checked: its single leaf descendant is checked")
	}

	// Even a direct toggle cannot check a zero-leaf parent: reconciliation
	// strips it straight back out, so no state change is committed.
	s.ToggleChecked("hollow")
	if s.IsChecked("hollow") {
		t.Error("direct toggle must not leave a zero-leaf parent checked")
	}
}

// TestDisabledParticipatesInPropagation verifies toggling an ancestor
// recurses into disabled subtrees unconditionally.
func TestDisabledParticipatesInPropagation(t *testing.T) {
	s := newTestSession(t, Options{BulkCheck: true})

	s.ToggleChecked("core")
	if !s.IsChecked("legacy") {
		t.Error("disabled leaf should be checked by an ancestor toggle")
	}
	s.ToggleChecked("core")
	if s.IsChecked("legacy") {
		t.Error("disabled leaf should be uncheckable by an ancestor toggle")
	}
}

// TestToggleCheckedUnknownID verifies unknown ids are tolerated silently.
func TestToggleCheckedUnknownID(t *testing.T) {
	s := newTestSession(t, Options{BulkCheck: true})
	s.ToggleChecked("ghost")
	if got := s.CheckedIDs(); len(got) != 0 {
		t.Errorf("CheckedIDs = %v, want empty", got)
	}
}

// TestSeedCheckedIsReconciled verifies inconsistent seed values are repaired
// at construction: a parent seeded without its leaves is dropped.
func TestSeedCheckedIsReconciled(t *testing.T) {
	s, err := NewSession(twoLeafForest(), Options{Checked: []string{"root"}})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.IsChecked("root") {
		t.Error("seeded parent without its leaves must be dropped by reconciliation")
	}

	s2, err := NewSession(twoLeafForest(), Options{Checked: []string{"leafA", "leafB"}})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !s2.IsChecked("root") {
		t.Error("seeding every leaf should check the parent")
	}
}

// TestIndeterminateIsDerivedOnly verifies leaves are never indeterminate and
// the fact is not reflected in the checked set.
func TestIndeterminateIsDerivedOnly(t *testing.T) {
	s := newTestSession(t, Options{BulkCheck: true})
	s.ToggleChecked("readme")

	if s.Indeterminate("readme") {
		t.Error("a leaf can never be indeterminate")
	}
	for _, id := range s.CheckedIDs() {
		if id == "docs" || id == "root" {
			t.Errorf("indeterminate ancestor %s must not be stored as checked", id)
		}
	}
}
