package jobhandler

import (
	"testing"

	"hr-pipeline-backend/models"

	"github.com/stretchr/testify/require"
)

func TestCountersFromStatuses(t *testing.T) {
	t.Run(`накопительные счётчики`, func(t *testing.T) {
		counters := CountersFromStatuses(map[models.CandidateStatus]int{
			models.CandidateStatusPending:      4,
			models.CandidateStatusScreening:    3,
			models.CandidateStatusInterviewing: 2,
			models.CandidateStatusOffered:      1,
			models.CandidateStatusHired:        1,
			models.CandidateStatusRejected:     2,
		})
		require.Equal(t, 13, counters.Applicants)
		require.Equal(t, 4, counters.Interviewing) // interviewing + offered + hired
		require.Equal(t, 2, counters.Offers)       // offered + hired
		require.Equal(t, 1, counters.Hires)
	})

	t.Run(`монотонность счётчиков`, func(t *testing.T) {
		counters := CountersFromStatuses(map[models.CandidateStatus]int{
			models.CandidateStatusHired:    5,
			models.CandidateStatusRejected: 3,
		})
		require.LessOrEqual(t, counters.Hires, counters.Offers)
		require.LessOrEqual(t, counters.Offers, counters.Interviewing)
		require.LessOrEqual(t, counters.Interviewing, counters.Applicants)
	})

	t.Run(`пустое распределение`, func(t *testing.T) {
		counters := CountersFromStatuses(nil)
		require.Equal(t, 0, counters.Applicants)
		require.Equal(t, 0, counters.Hires)
	})
}
