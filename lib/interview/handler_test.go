package interviewhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func slot(day string, start, end string) (time.Time, time.Time) {
	from, _ := time.Parse("02.01.2006 15:04", day+" "+start)
	to, _ := time.Parse("02.01.2006 15:04", day+" "+end)
	return from, to
}

func TestOverlaps(t *testing.T) {
	t.Run(`пересекающиеся слоты`, func(t *testing.T) {
		aStart, aEnd := slot("15.03.2026", "09:00", "10:00")
		bStart, bEnd := slot("15.03.2026", "09:30", "10:30")
		require.True(t, Overlaps(aStart, aEnd, bStart, bEnd))
		require.True(t, Overlaps(bStart, bEnd, aStart, aEnd))
	})

	t.Run(`вложенный слот`, func(t *testing.T) {
		aStart, aEnd := slot("15.03.2026", "09:00", "12:00")
		bStart, bEnd := slot("15.03.2026", "10:00", "11:00")
		require.True(t, Overlaps(aStart, aEnd, bStart, bEnd))
	})

	t.Run(`смежные слоты не пересекаются`, func(t *testing.T) {
		aStart, aEnd := slot("15.03.2026", "09:00", "10:00")
		bStart, bEnd := slot("15.03.2026", "10:00", "11:00")
		require.False(t, Overlaps(aStart, aEnd, bStart, bEnd))
		require.False(t, Overlaps(bStart, bEnd, aStart, aEnd))
	})

	t.Run(`разные дни`, func(t *testing.T) {
		aStart, aEnd := slot("15.03.2026", "09:00", "10:00")
		bStart, bEnd := slot("16.03.2026", "09:00", "10:00")
		require.False(t, Overlaps(aStart, aEnd, bStart, bEnd))
	})
}
