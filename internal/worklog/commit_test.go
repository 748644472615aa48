package worklog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_WeekNumber(t *testing.T) {
	tests := []struct {
		date     Date
		expected int
	}{
		{Date{2024, time.January, 1}, 1},    // Monday
		{Date{2023, time.January, 1}, 0},    // Sunday, before the first Monday
		{Date{2023, time.January, 2}, 1},    // first Monday
		{Date{2024, time.March, 12}, 11},    // Tuesday
		{Date{2022, time.January, 1}, 0},    // Saturday
		{Date{2021, time.December, 31}, 52}, // Friday
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.date.WeekNumber())
		})
	}
}

func TestDate_ISOWeek(t *testing.T) {
	assert.Equal(t, 52, Date{2023, time.January, 1}.ISOWeek())
	assert.Equal(t, 1, Date{2024, time.January, 1}.ISOWeek())
}

func TestDate_Compare(t *testing.T) {
	a := Date{2024, time.January, 31}
	b := Date{2024, time.February, 1}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestDate_Format(t *testing.T) {
	d := Date{2024, time.March, 5}
	assert.Equal(t, "03/05/2024", d.Format("01/02/2006"))
	assert.Equal(t, "2024-03-05", d.String())
}
