package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ts фиксированная дата теста: 2025-03-29, время UTC
func ts(day, hour, min int) time.Time {
	return time.Date(2025, 3, day, hour, min, 0, 0, time.UTC)
}

func iv(startDay, startHour, startMin, endHour, endMin int) Interval {
	return NewInterval(ts(startDay, startHour, startMin), ts(startDay, endHour, endMin))
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    iv(29, 11, 30, 12, 0),
			b:    iv(29, 11, 20, 11, 40),
			want: true,
		},
		{
			name: "touching at start is not overlap",
			a:    iv(29, 11, 30, 12, 0),
			b:    iv(29, 11, 0, 11, 30),
			want: false,
		},
		{
			name: "touching at end is not overlap",
			a:    iv(29, 11, 30, 12, 0),
			b:    iv(29, 12, 0, 12, 30),
			want: false,
		},
		{
			name: "identical intervals overlap",
			a:    iv(29, 11, 30, 12, 0),
			b:    iv(29, 11, 30, 12, 0),
			want: true,
		},
		{
			name: "contained interval overlaps",
			a:    iv(29, 11, 0, 13, 0),
			b:    iv(29, 11, 30, 12, 0),
			want: true,
		},
		{
			name: "disjoint intervals",
			a:    iv(29, 9, 0, 10, 0),
			b:    iv(29, 14, 0, 15, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	outer := iv(29, 10, 0, 12, 0)

	assert.True(t, outer.Contains(iv(29, 10, 30, 11, 30)))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(iv(29, 9, 30, 11, 0)))
	assert.False(t, outer.Contains(iv(29, 11, 0, 12, 30)))
}

func TestIntervalAdjacentWithin(t *testing.T) {
	tolerance := time.Minute

	a := iv(29, 10, 0, 10, 30)

	assert.True(t, a.AdjacentWithin(iv(29, 10, 30, 11, 0), tolerance), "back-to-back")
	assert.True(t, a.AdjacentWithin(iv(29, 10, 31, 11, 0), tolerance), "gap of exactly one minute")
	assert.False(t, a.AdjacentWithin(iv(29, 10, 32, 11, 0), tolerance), "gap of two minutes")
	assert.False(t, a.AdjacentWithin(iv(29, 10, 15, 11, 0), tolerance), "overlapping is not adjacent")
}

func TestIntervalEqualAndMinutes(t *testing.T) {
	a := iv(29, 10, 0, 10, 50)

	assert.True(t, a.Equal(iv(29, 10, 0, 10, 50)))
	assert.False(t, a.Equal(iv(29, 10, 0, 11, 0)))
	assert.Equal(t, 50, a.Minutes())
	assert.Equal(t, 0, NewInterval(ts(29, 10, 0), ts(29, 10, 0)).Minutes())
}
