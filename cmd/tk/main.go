package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/treekit/pkg/loader"
	"github.com/Dicklesworthstone/treekit/pkg/tree"
	"github.com/Dicklesworthstone/treekit/pkg/ui"
	"github.com/Dicklesworthstone/treekit/pkg/watcher"
)

const version = "0.1.0"

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	file := flag.String("file", "", "Tree file to load (.json, .yaml, .yml)")
	bulk := flag.Bool("bulk", false, "Bulk-check mode: leaves get tri-state checkboxes")
	noSelect := flag.Bool("no-select", false, "Disable node selection")
	connectors := flag.Bool("connectors", false, "Draw connector lines between siblings")
	watch := flag.Bool("watch", false, "Reload the tree when the file changes")
	expandAll := flag.Bool("expand-all", false, "Start with every branch expanded")
	flag.Parse()

	if *help {
		fmt.Println("Usage: tk [options]")
		fmt.Println("\nAn interactive tree explorer for the terminal.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("tk %s\n", version)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tk requires an interactive terminal")
		os.Exit(1)
	}

	nodes, err := loadNodes(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := tree.Options{
		BulkCheck:          *bulk,
		SelectionDisabled:  *noSelect,
		ShowConnectorLines: *connectors,
	}
	if *expandAll {
		opts.Expanded = allParentIDs(nodes)
	}

	session, err := tree.NewSession(nodes, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(ui.NewApp(session), tea.WithAltScreen())

	if *watch {
		if *file == "" {
			fmt.Fprintln(os.Stderr, "Error: -watch requires -file")
			os.Exit(1)
		}
		w, err := watcher.New(*file, func() {
			reloaded, err := loader.Load(*file)
			p.Send(ui.ReloadMsg{Nodes: reloaded, Err: err})
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := w.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadNodes reads the tree file, or falls back to a built-in sample forest
// when no file is given.
func loadNodes(path string) ([]tree.Node, error) {
	if path != "" {
		return loader.Load(path)
	}
	return sampleNodes(), nil
}

// allParentIDs collects every node id that has children.
func allParentIDs(nodes []tree.Node) []string {
	var ids []string
	var walk func(ns []tree.Node)
	walk = func(ns []tree.Node) {
		for i := range ns {
			if len(ns[i].Children) > 0 {
				ids = append(ids, ns[i].ID)
			}
			walk(ns[i].Children)
		}
	}
	walk(nodes)
	return ids
}

// sampleNodes is the demo forest shown when no -file is given.
func sampleNodes() []tree.Node {
	md := func(lines ...string) string { return strings.Join(lines, "\n") }
	return []tree.Node{
		{ID: "project", Name: "Project", Children: []tree.Node{
			{ID: "docs", Name: "Documentation", Children: []tree.Node{
				{ID: "readme", Name: "README", Data: md(
					"Getting started guide.",
					"",
					"Use `-file` to load your own tree.",
				)},
				{ID: "changelog", Name: "CHANGELOG", Data: "Release history."},
			}},
			{ID: "src", Name: "Source", Children: []tree.Node{
				{ID: "engine", Name: "Engine", Children: []tree.Node{
					{ID: "parser", Name: "Parser"},
					{ID: "renderer", Name: "Renderer"},
					{ID: "legacy", Name: "Legacy shim", Disabled: true},
				}},
				{ID: "util", Name: "Utilities"},
			}},
			{ID: "assets", Name: "Assets", Disabled: true, Children: []tree.Node{
				{ID: "logo", Name: "Logo"},
			}},
		}},
	}
}
