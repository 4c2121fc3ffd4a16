// Package ui provides the terminal front end for treekit: a tree-view
// widget rendering the engine's row snapshots, and an application model
// wiring it to a detail pane and status bar.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the adaptive colors and shared styles used by the tree view
// and the surrounding chrome. Styles are created through the renderer so
// output degrades gracefully on dumb terminals.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor

	Focused  lipgloss.Style // the roving focus target row
	Selected lipgloss.Style // the selected row when not focused
	Disabled lipgloss.Style
}

// DefaultTheme returns the stock theme for the given renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"},
		Secondary: lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#ECB22E"},
		Muted:     lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"},
		Highlight: lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00B3E3"},
		Danger:    lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"},
	}
	t.Focused = r.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(t.Primary).
		Bold(true)
	t.Selected = r.NewStyle().
		Foreground(t.Highlight).
		Bold(true)
	t.Disabled = r.NewStyle().
		Foreground(t.Muted).
		Faint(true)
	return t
}
