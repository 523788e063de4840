// Package fancy renders the CLI's config and route trees with lipgloss.
package fancy

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	// RootStyle marks the top node of a tree.
	RootStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	// RouteStyle marks a served "METHOD /path" entry.
	RouteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	// ErrorStyle marks the "Error:" prefix printed before a failed command exits.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	section = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true)
	edge    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	key     = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	value   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// Tree returns an empty tree with rounded, dimmed branches.
func Tree() *tree.Tree {
	return tree.New().Enumerator(tree.RoundedEnumerator).EnumeratorStyle(edge)
}

// BranchNode starts a section such as "HTTP" or "Response headers". A
// non-empty count, e.g. "(2)", is shown muted after the title.
func BranchNode(title, count string) *tree.Tree {
	label := section.Render(title)
	if count != "" {
		label += " " + muted.Render(count)
	}
	return Tree().Root(label)
}

// KeyValue renders a "key: value" leaf.
func KeyValue(k string, v any) string {
	return key.Render(k+":") + " " + value.Render(fmt.Sprint(v))
}
