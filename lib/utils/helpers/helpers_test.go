package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"jobTitle":   "job_title",
		"JobTitle":   "job_title",
		"aiScore":    "ai_score",
		"status":     "status",
		"appliedAt":  "applied_at",
		"salary_to":  "salary_to",
		"HTMLReport": "html_report",
	}
	for in, want := range cases {
		require.Equal(t, want, ToSnakeCase(in), in)
	}
}

func TestParseDate(t *testing.T) {
	t.Run("корректная дата", func(t *testing.T) {
		got, err := ParseDate("09.03.2026")
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), got)
	})
	t.Run("ISO формат не принимается", func(t *testing.T) {
		_, err := ParseDate("2026-03-09")
		require.Error(t, err)
	})
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	require.Equal(t, 9, got.Hour())
	require.Equal(t, 30, got.Minute())

	_, err = ParseTimeOfDay("9-30")
	require.Error(t, err)
}

func TestDayOf(t *testing.T) {
	in := time.Date(2026, 3, 9, 18, 45, 12, 99, time.UTC)
	require.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), DayOf(in))
}
