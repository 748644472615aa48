// Package show displays an aggregated worklog in the terminal.
package show

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/QuesmaOrg/git-time-extractor/internal/display"
	"github.com/QuesmaOrg/git-time-extractor/internal/report"
)

const notesWidth = 60

// ShowWorklog prints the tree as a plain table, one row per day.
// With full set, each day's commits are listed below the table.
func ShowWorklog(w io.Writer, tree *Tree, full bool) error {
	if len(tree.Roots) == 0 {
		_, err := fmt.Fprintln(w, "No commits to display")
		return err
	}

	var rows [][]string
	for _, root := range tree.Roots {
		day := root.(*DayNode)
		s := day.Summary
		rows = append(rows, []string{
			s.Date.Format("01/02/2006"),
			strconv.Itoa(s.CommitCount),
			display.FormatMinutes(s.Minutes),
			report.FormatHours(s.Minutes),
			s.AuthorName,
			formatTickets(s.Tickets()),
			display.TruncateText(s.MessageLog(), notesWidth),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Commits", "Time", "Hours", "Person", "Tickets", "Notes").
		Rows(rows...)

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s, %s, %s hours\n",
		display.Pluralize(tree.TotalDays, "day"),
		display.Pluralize(tree.TotalCommits, "commit"),
		report.FormatHours(tree.TotalMinutes)); err != nil {
		return err
	}

	if !full {
		return nil
	}

	for _, root := range tree.Roots {
		day := root.(*DayNode)
		if _, err := fmt.Fprintf(w, "\n%s\n", day.Label()); err != nil {
			return err
		}
		for _, child := range day.Children() {
			c := child.(*CommitNode)
			if _, err := fmt.Fprintf(w, "  %s %s\n", c.ShortHash(), c.Label()); err != nil {
				return err
			}
		}
	}
	return nil
}
