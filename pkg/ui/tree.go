package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/treekit/pkg/tree"
)

// TreeView renders the engine's visible row snapshot as a scrolling list.
// All state lives in the session; the view only owns presentation concerns:
// dimensions, scroll offset, and the connector-line toggle.
type TreeView struct {
	session    *tree.Session
	theme      Theme
	width      int
	height     int
	offset     int // index of first rendered row
	connectors bool
}

// NewTreeView creates a view over the given session. The connector-line
// toggle starts from the session's display flag.
func NewTreeView(session *tree.Session, theme Theme) TreeView {
	return TreeView{
		session:    session,
		theme:      theme,
		connectors: session.ShowConnectorLines(),
	}
}

// Session returns the underlying engine session.
func (v *TreeView) Session() *tree.Session {
	return v.session
}

// SetSize updates the available dimensions.
func (v *TreeView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// ToggleConnectors flips the connector-line display.
func (v *TreeView) ToggleConnectors() {
	v.connectors = !v.connectors
}

// View renders the visible rows, keeping the focus target inside the
// scroll window.
func (v *TreeView) View() string {
	rows := v.session.Rows()
	if len(rows) == 0 {
		return v.renderEmptyState()
	}

	v.scrollToFocus(rows)
	start, end := v.visibleRange(len(rows))

	last := lastSiblings(rows)
	trail := make([]bool, 0, 8)
	var sb strings.Builder
	for i, row := range rows {
		// The trail must advance for every row, rendered or not, so the
		// connector columns stay correct across the scroll window.
		if len(trail) > row.Depth {
			trail = trail[:row.Depth]
		}
		prefix := v.rowPrefix(row, trail, last[i])
		trail = append(trail, !last[i])

		if i < start || i >= end {
			continue
		}
		sb.WriteString(v.renderRow(row, prefix))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderEmptyState renders the view when the tree has no nodes.
func (v *TreeView) renderEmptyState() string {
	r := v.theme.Renderer
	title := r.NewStyle().Foreground(v.theme.Primary).Bold(true)
	muted := r.NewStyle().Foreground(v.theme.Muted)

	var sb strings.Builder
	sb.WriteString(title.Render("Tree"))
	sb.WriteString("\n\n")
	sb.WriteString(muted.Render("No nodes to display."))
	return sb.String()
}

// renderRow renders a single row: prefix, expand indicator, checkbox in
// bulk mode, name, and loading hint, with focus/selection/disabled styling
// applied on top.
func (v *TreeView) renderRow(row tree.Row, prefix string) string {
	r := v.theme.Renderer
	var sb strings.Builder

	prefixStyle := r.NewStyle().Foreground(v.theme.Muted)
	sb.WriteString(prefixStyle.Render(prefix))

	indicatorStyle := r.NewStyle().Foreground(v.theme.Secondary)
	sb.WriteString(indicatorStyle.Render(expandIndicator(row)))
	sb.WriteString(" ")

	if v.session.BulkCheck() {
		boxStyle := r.NewStyle().Foreground(v.theme.Highlight)
		sb.WriteString(boxStyle.Render(checkboxGlyph(row)))
		sb.WriteString(" ")
	}

	name := row.Name
	maxName := v.width - lipgloss.Width(prefix) - 8
	if maxName < 12 {
		maxName = 12
	}
	if runewidth.StringWidth(name) > maxName {
		name = runewidth.Truncate(name, maxName, "…")
	}
	sb.WriteString(name)

	if row.Loading {
		sb.WriteString(" ")
		sb.WriteString(r.NewStyle().Foreground(v.theme.Muted).Render("(loading…)"))
	}

	line := sb.String()
	switch {
	case row.Disabled:
		return v.theme.Disabled.Render(line)
	case row.FocusTarget:
		return v.theme.Focused.Render(line)
	case row.Selected:
		return v.theme.Selected.Render(line)
	default:
		return line
	}
}

// rowPrefix builds the indentation for a row. With connectors enabled the
// ancestor trail draws vertical lines; otherwise plain spaces.
func (v *TreeView) rowPrefix(row tree.Row, trail []bool, isLast bool) string {
	if row.Depth == 0 {
		return ""
	}
	if !v.connectors {
		return strings.Repeat("  ", row.Depth)
	}
	var sb strings.Builder
	for d := 0; d < row.Depth-1; d++ {
		if d < len(trail) && trail[d] {
			sb.WriteString("│   ")
		} else {
			sb.WriteString("    ")
		}
	}
	if isLast {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("├── ")
	}
	return sb.String()
}

// expandIndicator returns the marker for a row's expand state.
func expandIndicator(row tree.Row) string {
	if !row.HasChildren {
		return "•"
	}
	if row.Expanded {
		return "▾"
	}
	return "▸"
}

// checkboxGlyph returns the tri-state checkbox marker.
func checkboxGlyph(row tree.Row) string {
	switch {
	case row.Checked:
		return "[x]"
	case row.Indeterminate:
		return "[~]"
	default:
		return "[ ]"
	}
}

// lastSiblings computes, for each row of the flat snapshot, whether it is
// the last visible child of its parent: no later row shares its depth
// before one at a shallower depth.
func lastSiblings(rows []tree.Row) []bool {
	last := make([]bool, len(rows))
	for i, row := range rows {
		last[i] = true
		for j := i + 1; j < len(rows); j++ {
			if rows[j].Depth < row.Depth {
				break
			}
			if rows[j].Depth == row.Depth {
				last[i] = false
				break
			}
		}
	}
	return last
}

// scrollToFocus moves the window so the focus target stays visible.
func (v *TreeView) scrollToFocus(rows []tree.Row) {
	focusIdx := -1
	for i, row := range rows {
		if row.FocusTarget {
			focusIdx = i
			break
		}
	}
	if focusIdx < 0 {
		return
	}
	h := v.height
	if h <= 0 {
		h = 20
	}
	if focusIdx < v.offset {
		v.offset = focusIdx
	}
	if focusIdx >= v.offset+h {
		v.offset = focusIdx - h + 1
	}
}

// visibleRange returns the [start, end) window of rows to render.
func (v *TreeView) visibleRange(total int) (start, end int) {
	if total == 0 {
		return 0, 0
	}
	h := v.height
	if h <= 0 {
		h = 20
	}
	start = v.offset
	end = start + h
	if end > total {
		end = total
		start = end - h
		if start < 0 {
			start = 0
		}
	}
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	return start, end
}
