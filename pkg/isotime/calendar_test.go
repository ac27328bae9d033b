package isotime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/isotime/pkg/isotime"
)

func TestStdCalendar(t *testing.T) {
	cal := isotime.StdCalendar{}

	t.Run("parses canonical timestamps", func(t *testing.T) {
		got, err := cal.ParseBasicDateTime("20141101T053000+050000")
		require.NoError(t, err)

		want := time.Date(2014, time.November, 1, 0, 30, 0, 0, time.UTC)
		assert.True(t, got.Equal(want))

		got, err = cal.ParseBasicDateTime("20141101T053000Z")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2014, time.November, 1, 5, 30, 0, 0, time.UTC)))
	})

	t.Run("parses canonical dates", func(t *testing.T) {
		got, err := cal.ParseBasicDate("20141101")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2014, time.November, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("rejects non-canonical input", func(t *testing.T) {
		_, err := cal.ParseBasicDateTime("2014-11-01T05:30:00Z")
		assert.ErrorIs(t, err, isotime.ErrUnparsableInstant)

		_, err = cal.ParseBasicDate("2014-11-01")
		assert.ErrorIs(t, err, isotime.ErrUnparsableInstant)
	})

	t.Run("arithmetic is calendar-correct", func(t *testing.T) {
		newYearsEve := time.Date(2014, time.December, 31, 0, 0, 0, 0, time.UTC)
		assert.True(t, cal.AddDays(newYearsEve, 1).Equal(time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)))

		start := time.Date(2014, time.November, 1, 5, 30, 0, 0, time.UTC)
		assert.True(t, cal.AddYears(start, 2).Equal(time.Date(2016, time.November, 1, 5, 30, 0, 0, time.UTC)))
		assert.True(t, cal.AddMonths(start, 3).Equal(time.Date(2015, time.February, 1, 5, 30, 0, 0, time.UTC)))
		assert.True(t, cal.AddHours(start, 20).Equal(time.Date(2014, time.November, 2, 1, 30, 0, 0, time.UTC)))
	})

	t.Run("reports the year of an instant", func(t *testing.T) {
		assert.Equal(t, 2014, cal.Year(time.Date(2014, time.June, 1, 0, 0, 0, 0, time.UTC)))
	})
}
