package worklog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitAt(ts time.Time, name, message string) Commit {
	return Commit{
		AuthorName:  name,
		AuthorEmail: name + "@example.com",
		AuthorDate:  ts,
		Message:     message,
	}
}

func TestAggregate_SingleDay(t *testing.T) {
	commits := []Commit{
		commitAt(at(9, 0), "alice", "[#1] start"),
		commitAt(at(9, 10), "alice", "progress"),
		commitAt(at(13, 0), "alice", "[#1] [#2] done"),
	}

	w := Aggregate(commits, DefaultEstimator())
	days := w.Days()
	require.Len(t, days, 1)

	day := days[0]
	assert.Equal(t, Date{2024, time.March, 12}, day.Date)
	assert.Equal(t, 3, day.CommitCount)
	assert.Equal(t, 70.0, day.Minutes)
	assert.Equal(t, []TicketID{"1", "2"}, day.Tickets())
	assert.Equal(t, 2, day.TicketCount())
	assert.Equal(t, "[#1] start --- progress --- [#1] [#2] done", day.MessageLog())
	require.Len(t, day.Entries, 3)
	assert.Equal(t, []float64{30, 10, 30}, []float64{day.Entries[0].Minutes, day.Entries[1].Minutes, day.Entries[2].Minutes})
}

func TestAggregate_LastAuthorWins(t *testing.T) {
	commits := []Commit{
		commitAt(at(9, 0), "alice", "one"),
		commitAt(at(9, 30), "bob", "two"),
	}

	day := Aggregate(commits, DefaultEstimator()).Days()[0]
	assert.Equal(t, "bob", day.AuthorName)
	assert.Equal(t, "bob@example.com", day.AuthorEmail)
}

func TestAggregate_DaysSortedAndComplete(t *testing.T) {
	commits := []Commit{
		commitAt(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), "alice", "a"),
		commitAt(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), "alice", "b"),
		commitAt(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), "alice", "c"),
		commitAt(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), "alice", "d"),
	}

	w := Aggregate(commits, DefaultEstimator())
	days := w.Days()
	require.Len(t, days, 3)
	assert.Equal(t, 3, w.Len())

	var dates []string
	total := 0
	for _, d := range days {
		dates = append(dates, d.Date.String())
		total += d.CommitCount
	}
	assert.Equal(t, []string{"2023-12-31", "2024-01-01", "2024-01-02"}, dates)
	assert.Equal(t, len(commits), total)
	assert.Equal(t, len(commits), w.TotalCommits())

	// c lands before b in wall time, so it is clamped to the default
	jan1, ok := w.Day(Date{2024, time.January, 1})
	require.True(t, ok)
	assert.Equal(t, 30.0, jan1.Minutes)
}

func TestAggregate_DateUsesCommitZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2024-03-12 23:30 UTC is already the 13th in Tokyo
	commits := []Commit{
		commitAt(time.Date(2024, 3, 13, 8, 30, 0, 0, tokyo), "alice", "late"),
	}

	days := Aggregate(commits, DefaultEstimator()).Days()
	require.Len(t, days, 1)
	assert.Equal(t, Date{2024, time.March, 13}, days[0].Date)
}

func TestAggregate_Empty(t *testing.T) {
	w := Aggregate(nil, DefaultEstimator())
	assert.Empty(t, w.Days())
	assert.Zero(t, w.TotalCommits())
	assert.Zero(t, w.TotalMinutes())
}

func TestDailySummary_AddTicketsIdempotent(t *testing.T) {
	day := newDailySummary(Date{2024, time.March, 12})
	day.AddTickets("42")
	day.AddTickets("42")
	assert.Equal(t, 1, day.TicketCount())
	assert.Equal(t, []TicketID{"42"}, day.Tickets())
}

func TestChronological(t *testing.T) {
	newestFirst := []Commit{
		commitAt(at(11, 0), "alice", "c"),
		commitAt(at(10, 0), "alice", "b"),
		commitAt(at(9, 0), "alice", "a"),
	}

	got := Chronological(newestFirst)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Message)
	assert.Equal(t, "c", got[2].Message)
	assert.Equal(t, "c", newestFirst[0].Message, "input must not be reordered")
	assert.Empty(t, Chronological(nil))
}
