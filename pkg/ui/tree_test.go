package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/treekit/pkg/tree"
)

func newTreeTestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(nil))
}

func testNodes() []tree.Node {
	return []tree.Node{
		{ID: "root", Name: "Root", Children: []tree.Node{
			{ID: "docs", Name: "Documentation", Children: []tree.Node{
				{ID: "readme", Name: "Readme"},
				{ID: "license", Name: "License"},
			}},
			{ID: "src", Name: "Source"},
		}},
	}
}

func newTestView(t *testing.T, opts tree.Options) TreeView {
	t.Helper()
	s, err := tree.NewSession(testNodes(), opts)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	v := NewTreeView(s, newTreeTestTheme())
	v.SetSize(80, 20)
	return v
}

// TestViewShowsVisibleRows verifies only expanded branches appear in the output
func TestViewShowsVisibleRows(t *testing.T) {
	v := newTestView(t, tree.Options{Expanded: []string{"root"}})

	out := v.View()
	for _, want := range []string{"Root", "Documentation", "Source"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Readme") {
		t.Errorf("view shows child of collapsed node:\n%s", out)
	}
}

// TestViewExpandIndicators verifies parents get arrows and leaves get dots
func TestViewExpandIndicators(t *testing.T) {
	v := newTestView(t, tree.Options{Expanded: []string{"root"}})

	out := v.View()
	if !strings.Contains(out, "▾") {
		t.Errorf("expanded parent should render ▾:\n%s", out)
	}
	if !strings.Contains(out, "▸") {
		t.Errorf("collapsed parent should render ▸:\n%s", out)
	}
	if !strings.Contains(out, "•") {
		t.Errorf("leaf should render •:\n%s", out)
	}
}

// TestViewCheckboxGlyphs verifies the tri-state markers in bulk mode
func TestViewCheckboxGlyphs(t *testing.T) {
	v := newTestView(t, tree.Options{BulkCheck: true, Expanded: []string{"root", "docs"}})
	v.Session().ToggleChecked("readme")

	out := v.View()
	if !strings.Contains(out, "[x]") {
		t.Errorf("checked leaf should render [x]:\n%s", out)
	}
	if !strings.Contains(out, "[~]") {
		t.Errorf("partially checked parent should render [~]:\n%s", out)
	}
	if !strings.Contains(out, "[ ]") {
		t.Errorf("unchecked node should render [ ]:\n%s", out)
	}
}

// TestViewNoCheckboxesInNavMode verifies nav mode renders no boxes at all
func TestViewNoCheckboxesInNavMode(t *testing.T) {
	v := newTestView(t, tree.Options{Expanded: []string{"root"}})

	out := v.View()
	if strings.Contains(out, "[ ]") || strings.Contains(out, "[x]") {
		t.Errorf("nav mode should not render checkboxes:\n%s", out)
	}
}

// TestViewConnectorLines verifies branch prefixes and the display toggle
func TestViewConnectorLines(t *testing.T) {
	v := newTestView(t, tree.Options{ShowConnectorLines: true, Expanded: []string{"root", "docs"}})

	out := v.View()
	if !strings.Contains(out, "├── ") {
		t.Errorf("middle child should have ├── prefix:\n%s", out)
	}
	if !strings.Contains(out, "└── ") {
		t.Errorf("last child should have └── prefix:\n%s", out)
	}
	if !strings.Contains(out, "│   ") {
		t.Errorf("continuation under a non-last parent should draw │:\n%s", out)
	}

	v.ToggleConnectors()
	out = v.View()
	if strings.Contains(out, "├── ") || strings.Contains(out, "└── ") {
		t.Errorf("connector toggle off should remove branch glyphs:\n%s", out)
	}
}

// TestViewEmptyState verifies an empty tree renders the placeholder
func TestViewEmptyState(t *testing.T) {
	s, err := tree.NewSession(nil, tree.Options{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	v := NewTreeView(s, newTreeTestTheme())
	v.SetSize(80, 20)

	out := v.View()
	if !strings.Contains(out, "No nodes to display") {
		t.Errorf("empty tree should render placeholder:\n%s", out)
	}
}

// TestViewTruncatesLongNames verifies wide names are shortened to fit
func TestViewTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 200)
	s, err := tree.NewSession([]tree.Node{{ID: "n", Name: long}}, tree.Options{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	v := NewTreeView(s, newTreeTestTheme())
	v.SetSize(40, 20)

	out := v.View()
	if strings.Contains(out, long) {
		t.Errorf("long name should be truncated:\n%s", out)
	}
	if !strings.Contains(out, "…") {
		t.Errorf("truncated name should end with ellipsis:\n%s", out)
	}
}

// TestLastSiblings verifies the flat-snapshot sibling analysis used for
// connector prefixes
func TestLastSiblings(t *testing.T) {
	rows := []tree.Row{
		{ID: "root", Depth: 0},
		{ID: "docs", Depth: 1},
		{ID: "readme", Depth: 2},
		{ID: "license", Depth: 2},
		{ID: "src", Depth: 1},
	}
	got := lastSiblings(rows)
	want := []bool{true, false, false, true, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lastSiblings[%d] (%s) = %v, want %v", i, rows[i].ID, got[i], want[i])
		}
	}
}

// TestScrollKeepsFocusVisible verifies the window follows the focus target
// in a tree taller than the view
func TestScrollKeepsFocusVisible(t *testing.T) {
	var nodes []tree.Node
	for i := 0; i < 30; i++ {
		nodes = append(nodes, tree.Node{ID: string(rune('a'+i%26)) + string(rune('0'+i/26)), Name: "Node"})
	}
	s, err := tree.NewSession(nodes, tree.Options{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	v := NewTreeView(s, newTreeTestTheme())
	v.SetSize(40, 5)

	for i := 0; i < 29; i++ {
		s.MoveNext()
	}
	v.View()
	start, end := v.visibleRange(30)
	if end != 30 {
		t.Errorf("window should end at the last row, got [%d, %d)", start, end)
	}
	if end-start > 5 {
		t.Errorf("window larger than view height: [%d, %d)", start, end)
	}
}
