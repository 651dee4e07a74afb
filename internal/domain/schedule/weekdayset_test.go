package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdaySetFromInts(t *testing.T) {
	s, err := WeekdaySetFromInts([]int{1, 3, 5})
	require.NoError(t, err)
	assert.True(t, s.Has(time.Monday))
	assert.True(t, s.Has(time.Wednesday))
	assert.True(t, s.Has(time.Friday))
	assert.False(t, s.Has(time.Sunday))
	assert.Equal(t, []int{1, 3, 5}, s.Ints())

	_, err = WeekdaySetFromInts([]int{7})
	assert.Error(t, err)
	_, err = WeekdaySetFromInts([]int{-1})
	assert.Error(t, err)
}

func TestWeekdaySet_Operations(t *testing.T) {
	s := NewWeekdaySet(time.Monday, time.Tuesday)

	assert.Equal(t, 2, s.Count())
	assert.False(t, s.IsEmpty())
	assert.True(t, WeekdaySet(0).IsEmpty())

	withFri := s.With(time.Friday)
	assert.True(t, withFri.Has(time.Friday))
	assert.False(t, s.Has(time.Friday), "With must not mutate the receiver")

	assert.Equal(t, NewWeekdaySet(time.Monday), s.Intersect(MonWedFri))
	assert.True(t, MondayToFriday.ContainsAll(MonWedFri))
	assert.False(t, MonWedFri.ContainsAll(MondayToFriday))
}

func TestWeekdaySet_String(t *testing.T) {
	assert.Equal(t, "Mon,Wed,Fri", MonWedFri.String())
	assert.Equal(t, "none", WeekdaySet(0).String())
}
