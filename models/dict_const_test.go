package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJobStatus(t *testing.T) {
	t.Run(`допустимые переходы`, func(t *testing.T) {
		require.True(t, JobStatusDraft.CanTransition(JobStatusActive))
		require.True(t, JobStatusDraft.CanTransition(JobStatusClosed))
		require.True(t, JobStatusActive.CanTransition(JobStatusPaused))
		require.True(t, JobStatusActive.CanTransition(JobStatusClosed))
		require.True(t, JobStatusPaused.CanTransition(JobStatusActive))
		require.True(t, JobStatusPaused.CanTransition(JobStatusClosed))
	})

	t.Run(`недопустимые переходы`, func(t *testing.T) {
		require.False(t, JobStatusDraft.CanTransition(JobStatusPaused))
		require.False(t, JobStatusActive.CanTransition(JobStatusDraft))
		require.False(t, JobStatusPaused.CanTransition(JobStatusDraft))
		require.False(t, JobStatusClosed.CanTransition(JobStatusActive))
		require.False(t, JobStatusClosed.CanTransition(JobStatusDraft))
	})

	t.Run(`закрытая вакансия терминальна`, func(t *testing.T) {
		require.True(t, JobStatusClosed.IsTerminal())
		require.False(t, JobStatusActive.IsTerminal())
	})
}

func TestCandidateStatus(t *testing.T) {
	t.Run(`движение только на следующий этап`, func(t *testing.T) {
		require.True(t, CandidateStatusPending.CanTransition(CandidateStatusScreening))
		require.True(t, CandidateStatusScreening.CanTransition(CandidateStatusInterviewing))
		require.True(t, CandidateStatusInterviewing.CanTransition(CandidateStatusOffered))
		require.True(t, CandidateStatusOffered.CanTransition(CandidateStatusHired))

		require.False(t, CandidateStatusPending.CanTransition(CandidateStatusInterviewing))
		require.False(t, CandidateStatusPending.CanTransition(CandidateStatusHired))
		require.False(t, CandidateStatusScreening.CanTransition(CandidateStatusPending))
		require.False(t, CandidateStatusOffered.CanTransition(CandidateStatusInterviewing))
	})

	t.Run(`отказ возможен с любого нетерминального этапа`, func(t *testing.T) {
		require.True(t, CandidateStatusPending.CanTransition(CandidateStatusRejected))
		require.True(t, CandidateStatusScreening.CanTransition(CandidateStatusRejected))
		require.True(t, CandidateStatusInterviewing.CanTransition(CandidateStatusRejected))
		require.True(t, CandidateStatusOffered.CanTransition(CandidateStatusRejected))
	})

	t.Run(`терминальные статусы`, func(t *testing.T) {
		require.True(t, CandidateStatusHired.IsTerminal())
		require.True(t, CandidateStatusRejected.IsTerminal())
		require.False(t, CandidateStatusHired.CanTransition(CandidateStatusScreening))
		require.False(t, CandidateStatusHired.CanTransition(CandidateStatusRejected))
		require.False(t, CandidateStatusRejected.CanTransition(CandidateStatusPending))
	})

	t.Run(`достижение этапов воронки`, func(t *testing.T) {
		require.True(t, CandidateStatusHired.ReachedStage(CandidateStatusPending))
		require.True(t, CandidateStatusHired.ReachedStage(CandidateStatusHired))
		require.True(t, CandidateStatusInterviewing.ReachedStage(CandidateStatusScreening))
		require.False(t, CandidateStatusScreening.ReachedStage(CandidateStatusInterviewing))
		// отклонённый учитывается только на первом этапе
		require.True(t, CandidateStatusRejected.ReachedStage(CandidateStatusPending))
		require.False(t, CandidateStatusRejected.ReachedStage(CandidateStatusScreening))
	})
}

func TestInterviewStatus(t *testing.T) {
	t.Run(`блокировка слота`, func(t *testing.T) {
		require.True(t, InterviewStatusScheduled.BlocksSlot())
		require.True(t, InterviewStatusInProgress.BlocksSlot())
		require.False(t, InterviewStatusCompleted.BlocksSlot())
		require.False(t, InterviewStatusCancelled.BlocksSlot())
	})
}
