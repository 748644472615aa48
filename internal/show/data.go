package show

import (
	"fmt"
	"strings"
	"time"

	"github.com/QuesmaOrg/git-time-extractor/internal/display"
	"github.com/QuesmaOrg/git-time-extractor/internal/report"
	"github.com/QuesmaOrg/git-time-extractor/internal/worklog"
)

// NodeType represents the type of node in the tree
type NodeType int

const (
	NodeTypeDay NodeType = iota
	NodeTypeCommit
)

// Node represents a node in the tree hierarchy
type Node interface {
	Type() NodeType
	Label() string      // Short label for the tree view
	Depth() int         // Indentation level
	IsExpandable() bool // Can this node be expanded?
	IsExpanded() bool   // Is this node currently expanded?
	SetExpanded(bool)   // Set expansion state
	Children() []Node   // Child nodes (nil for leaves)
	Time() time.Time    // Time for display
}

// BaseNode provides common fields for all node types
type BaseNode struct {
	depth    int
	expanded bool
	children []Node
}

func (b *BaseNode) Depth() int         { return b.depth }
func (b *BaseNode) IsExpanded() bool   { return b.expanded }
func (b *BaseNode) SetExpanded(e bool) { b.expanded = e }
func (b *BaseNode) Children() []Node   { return b.children }

// DayNode represents one report row
type DayNode struct {
	BaseNode
	Summary *worklog.DailySummary
	Week    int
}

func NewDayNode(s *worklog.DailySummary, week int, depth int) *DayNode {
	return &DayNode{
		BaseNode: BaseNode{depth: depth},
		Summary:  s,
		Week:     week,
	}
}

func (d *DayNode) Type() NodeType     { return NodeTypeDay }
func (d *DayNode) IsExpandable() bool { return len(d.children) > 0 }
func (d *DayNode) Time() time.Time    { return d.Summary.Date.Time() }

func (d *DayNode) Label() string {
	s := d.Summary
	return fmt.Sprintf("%s  %s  %s  %s",
		s.Date.Format("01/02/2006"),
		display.Pluralize(s.CommitCount, "commit"),
		display.FormatMinutes(s.Minutes),
		s.AuthorName)
}

// Detail renders the day for the detail panel
func (d *DayNode) Detail() string {
	s := d.Summary
	var sb strings.Builder
	fmt.Fprintf(&sb, "Date: %s (week %d)\n", s.Date.Format("Monday, 01/02/2006"), d.Week)
	fmt.Fprintf(&sb, "Person: %s <%s>\n", s.AuthorName, s.AuthorEmail)
	fmt.Fprintf(&sb, "Commits: %d\n", s.CommitCount)
	fmt.Fprintf(&sb, "Estimate: %s (%s hours)\n", display.FormatMinutes(s.Minutes), report.FormatHours(s.Minutes))
	if tickets := s.Tickets(); len(tickets) > 0 {
		fmt.Fprintf(&sb, "Tickets: %s\n", formatTickets(tickets))
	}
	return sb.String()
}

// CommitNode represents a single commit within a day
type CommitNode struct {
	BaseNode
	Entry worklog.Entry
}

func NewCommitNode(e worklog.Entry, depth int) *CommitNode {
	return &CommitNode{
		BaseNode: BaseNode{depth: depth},
		Entry:    e,
	}
}

func (c *CommitNode) Type() NodeType     { return NodeTypeCommit }
func (c *CommitNode) IsExpandable() bool { return false }
func (c *CommitNode) Time() time.Time    { return c.Entry.Commit.AuthorDate }

func (c *CommitNode) Label() string {
	return fmt.Sprintf("%s +%s %s",
		c.Time().Format("15:04"),
		display.FormatMinutes(c.Entry.Minutes),
		display.TruncateText(display.Subject(c.Entry.Commit.Message), 50))
}

// ShortHash returns the abbreviated commit hash, if known
func (c *CommitNode) ShortHash() string {
	h := c.Entry.Commit.Hash
	return h[:min(7, len(h))]
}

// Detail renders the commit for the detail panel
func (c *CommitNode) Detail() string {
	cm := c.Entry.Commit
	var sb strings.Builder
	if h := c.ShortHash(); h != "" {
		fmt.Fprintf(&sb, "Commit: %s\n", h)
	}
	fmt.Fprintf(&sb, "Author: %s <%s>\n", cm.AuthorName, cm.AuthorEmail)
	fmt.Fprintf(&sb, "Time: %s\n", cm.AuthorDate.Format("2006-01-02 15:04:05 -0700"))
	fmt.Fprintf(&sb, "Estimate: %s\n", display.FormatMinutes(c.Entry.Minutes))
	if len(c.Entry.Tickets) > 0 {
		fmt.Fprintf(&sb, "Tickets: %s\n", formatTickets(c.Entry.Tickets))
	}
	sb.WriteString("\nMessage:\n")
	sb.WriteString(cm.Message)
	return sb.String()
}

func formatTickets(ids []worklog.TicketID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "#" + id.String()
	}
	return strings.Join(parts, ", ")
}
