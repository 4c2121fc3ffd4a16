package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/treekit/pkg/tree"
)

// SplitViewThreshold is the terminal width above which the detail pane is
// shown next to the tree.
const SplitViewThreshold = 100

// ReloadMsg replaces the tree with freshly loaded nodes. Sent by the file
// watcher when the source file changes.
type ReloadMsg struct {
	Nodes []tree.Node
	Err   error
}

// StatusMsg shows a transient message in the footer.
type StatusMsg struct {
	Text string
}

// App is the top-level bubbletea model. It owns the tree view, the detail
// pane, and the footer, and translates key presses into engine events.
type App struct {
	session  *tree.Session
	treeView TreeView
	theme    Theme

	viewport viewport.Model
	renderer *glamour.TermRenderer

	width       int
	height      int
	ready       bool
	isSplitView bool
	status      string
	lastErr     error
}

// NewApp builds the application model around a configured session.
func NewApp(session *tree.Session) App {
	theme := DefaultTheme(lipgloss.DefaultRenderer())

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return App{
		session:  session,
		treeView: NewTreeView(session, theme),
		theme:    theme,
		renderer: r,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case ReloadMsg:
		if msg.Err != nil {
			a.lastErr = msg.Err
			a.status = fmt.Sprintf("reload failed: %v", msg.Err)
			return a, nil
		}
		if err := a.session.SetTree(msg.Nodes); err != nil {
			a.lastErr = err
			a.status = fmt.Sprintf("reload rejected: %v", err)
			return a, nil
		}
		a.lastErr = nil
		a.status = "tree reloaded"
		a.updateViewportContent()

	case StatusMsg:
		a.status = msg.Text

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "j", "down":
			a.handleKey(tree.KeyNext)
		case "k", "up":
			a.handleKey(tree.KeyPrev)
		case "g", "home":
			a.handleKey(tree.KeyFirst)
		case "G", "end":
			a.handleKey(tree.KeyLast)
		case "l", "right":
			a.handleKey(tree.KeyExpand)
		case "h", "left":
			a.handleKey(tree.KeyCollapse)
		case "enter", " ":
			a.handleKey(tree.KeyActivate)
		case "c":
			a.treeView.ToggleConnectors()
		case "y":
			a.yankFocused()
		case "pgdown", "pgup", "ctrl+d", "ctrl+u":
			a.viewport, cmd = a.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
		a.updateViewportContent()

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.isSplitView = msg.Width > SplitViewThreshold
		a.ready = true

		footerHeight := 1
		availableHeight := msg.Height - footerHeight

		if a.isSplitView {
			treeWidth := int(float64(msg.Width) * 0.5)
			detailWidth := msg.Width - treeWidth - 4
			a.treeView.SetSize(treeWidth, availableHeight-2)
			a.viewport = viewport.New(detailWidth, availableHeight-2)
			a.renderer, _ = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(a.viewport.Width),
			)
		} else {
			a.treeView.SetSize(msg.Width, availableHeight)
			a.viewport = viewport.New(msg.Width, availableHeight-2)
		}
		a.updateViewportContent()
	}

	return a, tea.Batch(cmds...)
}

// handleKey forwards a navigation command to the engine dispatcher.
func (a *App) handleKey(key tree.KeyCommand) {
	a.session.Handle(tree.Event{
		Kind:   tree.EventKey,
		NodeID: a.session.FocusTarget(),
		Key:    key,
	})
}

// yankFocused copies the focused node id to the system clipboard.
func (a *App) yankFocused() {
	id := a.session.FocusTarget()
	if id == "" {
		return
	}
	if err := clipboard.WriteAll(id); err != nil {
		a.status = fmt.Sprintf("clipboard: %v", err)
		return
	}
	a.status = fmt.Sprintf("copied %s", id)
}

// updateViewportContent renders the focused node's detail as markdown.
func (a *App) updateViewportContent() {
	if !a.isSplitView || a.renderer == nil {
		return
	}
	id := a.session.FocusTarget()
	if id == "" {
		a.viewport.SetContent("No node focused")
		return
	}
	node := a.session.Model().Node(id)
	if node == nil {
		a.viewport.SetContent("No node focused")
		return
	}

	md := detailMarkdown(node, a.session)
	rendered, err := a.renderer.Render(md)
	if err != nil {
		a.viewport.SetContent(fmt.Sprintf("Error rendering markdown: %v", err))
		return
	}
	a.viewport.SetContent(rendered)
}

// detailMarkdown builds the markdown body for the detail pane.
func detailMarkdown(node *tree.Node, s *tree.Session) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", node.Name)
	fmt.Fprintf(&sb, "**ID:** `%s`\n\n", node.ID)

	if node.Disabled {
		sb.WriteString("_Disabled_\n\n")
	}
	if len(node.Children) > 0 {
		fmt.Fprintf(&sb, "**Children:** %d\n\n", len(node.Children))
	}
	if s.BulkCheck() {
		switch {
		case s.IsChecked(node.ID):
			sb.WriteString("**Checked:** yes\n\n")
		case s.Indeterminate(node.ID):
			sb.WriteString("**Checked:** partially\n\n")
		default:
			sb.WriteString("**Checked:** no\n\n")
		}
	}
	if text, ok := node.Data.(string); ok && text != "" {
		sb.WriteString("---\n\n")
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (a App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	var body string
	if a.isSplitView {
		treeStyle := a.theme.Renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(a.theme.Primary)
		detailStyle := a.theme.Renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(a.theme.Muted)

		treePane := treeStyle.Width(a.width/2 - 2).Height(a.height - 3).Render(a.treeView.View())
		detailPane := detailStyle.Width(a.viewport.Width).Height(a.height - 3).Render(a.viewport.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, treePane, detailPane)
	} else {
		body = a.treeView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderFooter())
}

// renderFooter draws the one-line status bar.
func (a *App) renderFooter() string {
	r := a.theme.Renderer
	modeStyle := r.NewStyle().Background(a.theme.Primary).Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).Bold(true).Padding(0, 1)
	helpStyle := r.NewStyle().Foreground(a.theme.Muted).Padding(0, 1)
	statusStyle := r.NewStyle().Foreground(a.theme.Secondary).Padding(0, 1)
	errStyle := r.NewStyle().Foreground(a.theme.Danger).Padding(0, 1)

	mode := "NAV"
	if a.session.BulkCheck() {
		mode = "BULK"
	}

	keys := "j/k: move • h/l: collapse/expand • enter: activate • y: yank • c: lines • q: quit"

	var sections []string
	sections = append(sections, modeStyle.Render(mode))
	if a.lastErr != nil {
		sections = append(sections, errStyle.Render(a.status))
	} else if a.status != "" {
		sections = append(sections, statusStyle.Render(a.status))
	}
	sections = append(sections, helpStyle.Render(keys))

	return lipgloss.JoinHorizontal(lipgloss.Center, sections...)
}
