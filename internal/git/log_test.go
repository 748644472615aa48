package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(hash, name, email, date, body string) string {
	return hash + fieldSep + name + fieldSep + email + fieldSep + date + fieldSep + body + recordSep + "\n"
}

func TestParseLog(t *testing.T) {
	out := record("bbb", "Bob", "bob@example.com", "2024-03-12T13:00:00+02:00", "[#1] [#2] done\n\nLonger body\nwith lines\n") +
		record("aaa", "Alice", "alice@example.com", "2024-03-12T09:00:00-05:00", "[#1] start\n")

	commits, err := parseLog([]byte(out))
	require.NoError(t, err)
	require.Len(t, commits, 2)

	assert.Equal(t, "bbb", commits[0].Hash)
	assert.Equal(t, "Bob", commits[0].AuthorName)
	assert.Equal(t, "bob@example.com", commits[0].AuthorEmail)
	assert.Equal(t, "[#1] [#2] done\n\nLonger body\nwith lines", commits[0].Message)

	_, offset := commits[0].AuthorDate.Zone()
	assert.Equal(t, 2*3600, offset, "author zone is preserved")
	assert.True(t, commits[1].AuthorDate.Equal(time.Date(2024, 3, 12, 14, 0, 0, 0, time.UTC)))
}

func TestParseLog_Empty(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"no output", ""},
		{"only newline", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commits, err := parseLog([]byte(tt.out))
			require.NoError(t, err)
			assert.Empty(t, commits)
		})
	}
}

func TestParseLog_Malformed(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"missing fields", "abc" + fieldSep + "Alice" + recordSep},
		{"bad date", record("abc", "Alice", "a@example.com", "yesterday", "msg")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLog([]byte(tt.out))
			assert.Error(t, err)
		})
	}
}

func TestNewSource(t *testing.T) {
	logger := testLogger()

	s, err := NewSource("", ".", logger)
	require.NoError(t, err)
	assert.Equal(t, SourceGit, s.Name())

	s, err = NewSource(SourceGoGit, ".", logger)
	require.NoError(t, err)
	assert.Equal(t, SourceGoGit, s.Name())

	_, err = NewSource("svn", ".", logger)
	assert.Error(t, err)
}
