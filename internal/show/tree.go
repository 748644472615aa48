package show

import (
	"github.com/QuesmaOrg/git-time-extractor/internal/report"
	"github.com/QuesmaOrg/git-time-extractor/internal/worklog"
)

// Tree represents the hierarchical tree of nodes
type Tree struct {
	Roots        []Node // One node per day
	TotalDays    int
	TotalCommits int
	TotalMinutes float64
}

// BuildTree builds a day -> commit tree from an aggregated worklog
func BuildTree(w *worklog.Worklog, weeks report.WeekNumbering) *Tree {
	days := w.Days()
	tree := &Tree{
		TotalDays:    len(days),
		TotalCommits: w.TotalCommits(),
		TotalMinutes: w.TotalMinutes(),
	}

	// A single day is shown expanded
	expand := len(days) == 1

	for _, s := range days {
		week := s.Date.WeekNumber()
		if weeks == report.WeekISO {
			week = s.Date.ISOWeek()
		}

		dayNode := NewDayNode(s, week, 0)
		for _, e := range s.Entries {
			dayNode.children = append(dayNode.children, NewCommitNode(e, 1))
		}
		dayNode.SetExpanded(expand)
		tree.Roots = append(tree.Roots, dayNode)
	}

	return tree
}

// FlattenVisible returns all currently visible nodes in display order
func (t *Tree) FlattenVisible() []Node {
	var result []Node
	for _, root := range t.Roots {
		result = flattenNode(root, result)
	}
	return result
}

func flattenNode(n Node, result []Node) []Node {
	result = append(result, n)

	if n.IsExpandable() && n.IsExpanded() {
		for _, child := range n.Children() {
			result = flattenNode(child, result)
		}
	}

	return result
}

// ToggleExpand toggles the expansion state of the node at the given index
func (t *Tree) ToggleExpand(visible []Node, index int) {
	if index < 0 || index >= len(visible) {
		return
	}
	n := visible[index]
	if n.IsExpandable() {
		n.SetExpanded(!n.IsExpanded())
	}
}

// Expand expands the node at the given index
func (t *Tree) Expand(visible []Node, index int) {
	if index < 0 || index >= len(visible) {
		return
	}
	n := visible[index]
	if n.IsExpandable() && !n.IsExpanded() {
		n.SetExpanded(true)
	}
}

// Collapse collapses the node at the given index, or its parent day
// when the cursor is on a commit
func (t *Tree) Collapse(visible []Node, index int) int {
	if index < 0 || index >= len(visible) {
		return index
	}
	n := visible[index]
	if n.IsExpandable() && n.IsExpanded() {
		n.SetExpanded(false)
		return index
	}
	if n.Type() == NodeTypeCommit {
		for i := index - 1; i >= 0; i-- {
			if visible[i].Type() == NodeTypeDay {
				visible[i].SetExpanded(false)
				return i
			}
		}
	}
	return index
}

// ExpandAll expands every day
func (t *Tree) ExpandAll() {
	for _, root := range t.Roots {
		if root.IsExpandable() {
			root.SetExpanded(true)
		}
	}
}

// CollapseAll collapses every day
func (t *Tree) CollapseAll() {
	for _, root := range t.Roots {
		root.SetExpanded(false)
	}
}
