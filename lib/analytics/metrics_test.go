package analytics

import (
	"testing"
	"time"

	"hr-pipeline-backend/models"
	analyticsapimodels "hr-pipeline-backend/models/api/analytics"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/stretchr/testify/require"
)

func candidate(status models.CandidateStatus, source string, score int, applied string) dbmodels.Candidate {
	appliedAt, _ := time.Parse("02.01.2006", applied)
	return dbmodels.Candidate{
		Status:    status,
		Source:    source,
		AIScore:   score,
		AppliedAt: appliedAt,
	}
}

func TestBuildFunnel(t *testing.T) {
	t.Run(`каждый статус учитывается на достигнутых этапах`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			candidate(models.CandidateStatusPending, "", 50, "01.02.2026"),
			candidate(models.CandidateStatusScreening, "", 60, "02.02.2026"),
			candidate(models.CandidateStatusInterviewing, "", 70, "03.02.2026"),
			candidate(models.CandidateStatusOffered, "", 80, "04.02.2026"),
			candidate(models.CandidateStatusHired, "", 90, "05.02.2026"),
			candidate(models.CandidateStatusRejected, "", 40, "06.02.2026"),
		}
		report := BuildFunnel(list, DefaultStages, 1)
		require.Len(t, report.Stages, 5)
		require.Equal(t, "applied", report.Stages[0].Stage)
		require.Equal(t, 6, report.Stages[0].Count)
		require.Equal(t, 4, report.Stages[1].Count) // screening и дальше + hired
		require.Equal(t, 3, report.Stages[2].Count)
		require.Equal(t, 2, report.Stages[3].Count)
		require.Equal(t, 1, report.Stages[4].Count)
		require.Equal(t, 100.0, report.Stages[0].Rate)
		require.Equal(t, 16.7, report.Stages[4].Rate)
		require.Empty(t, report.Warning)
	})

	t.Run(`счётчики не возрастают`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			candidate(models.CandidateStatusHired, "", 90, "01.02.2026"),
		}
		report := BuildFunnel(list, DefaultStages, 1)
		prev := report.Stages[0].Count
		for _, stage := range report.Stages[1:] {
			require.LessOrEqual(t, stage.Count, prev)
			prev = stage.Count
		}
	})

	t.Run(`нарушение монотонности попадает в предупреждение`, func(t *testing.T) {
		// воронка с перепутанным порядком этапов: поздний этап раньше раннего
		stages := []StageDef{
			{Name: "hired", Reached: models.CandidateStatusHired},
			{Name: "applied", Reached: models.CandidateStatusPending},
		}
		list := []dbmodels.Candidate{
			candidate(models.CandidateStatusPending, "", 50, "01.02.2026"),
			candidate(models.CandidateStatusPending, "", 55, "02.02.2026"),
			candidate(models.CandidateStatusPending, "", 60, "03.02.2026"),
			candidate(models.CandidateStatusHired, "", 90, "04.02.2026"),
		}
		report := BuildFunnel(list, stages, 1)
		require.Equal(t, 1, report.Stages[0].Count)
		require.Equal(t, 4, report.Stages[1].Count)
		require.NotEmpty(t, report.Warning)
		require.Contains(t, report.Warning, "applied")
	})

	t.Run(`пустой снимок`, func(t *testing.T) {
		report := BuildFunnel(nil, DefaultStages, 1)
		require.Len(t, report.Stages, 5)
		for _, stage := range report.Stages {
			require.Equal(t, 0, stage.Count)
			require.Equal(t, 0.0, stage.Rate)
		}
	})
}

func TestBuildDepartments(t *testing.T) {
	t.Run(`выполнение плана с ограничением отображения`, func(t *testing.T) {
		eng := &dbmodels.Job{Department: "Engineering"}
		list := []dbmodels.Candidate{
			{Status: models.CandidateStatusHired, Job: eng},
			{Status: models.CandidateStatusHired, Job: eng},
			{Status: models.CandidateStatusHired, Job: eng},
			{Status: models.CandidateStatusOffered, Job: eng},
		}
		plans := []dbmodels.DepartmentPlan{
			{Department: "Engineering", Target: 2},
			{Department: "Design", Target: 4},
		}
		result := BuildDepartments(list, plans, 1)
		require.Len(t, result, 2)
		require.Equal(t, 3, result[0].Completed)
		require.Equal(t, 150.0, result[0].RawRate)
		require.Equal(t, 100.0, result[0].Rate) // перевыполнение ограничено
		require.Equal(t, 0, result[1].Completed)
		require.Equal(t, 0.0, result[1].Rate)
	})

	t.Run(`нулевой план не делит на ноль`, func(t *testing.T) {
		plans := []dbmodels.DepartmentPlan{{Department: "Sales", Target: 0}}
		result := BuildDepartments(nil, plans, 1)
		require.Len(t, result, 1)
		require.Equal(t, 0.0, result[0].Rate)
	})
}

func TestBuildSources(t *testing.T) {
	t.Run(`доли и порядок`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			candidate(models.CandidateStatusPending, "hh", 0, "01.02.2026"),
			candidate(models.CandidateStatusPending, "hh", 0, "01.02.2026"),
			candidate(models.CandidateStatusPending, "referral", 0, "01.02.2026"),
			candidate(models.CandidateStatusPending, "", 0, "01.02.2026"),
		}
		result := BuildSources(list, 1)
		require.Len(t, result, 3)
		require.Equal(t, "hh", result[0].Source)
		require.Equal(t, 2, result[0].Count)
		require.Equal(t, 50.0, result[0].Rate)
		// при равных количествах порядок по имени
		require.Equal(t, "referral", result[1].Source)
		require.Equal(t, "не указан", result[2].Source)

		total := 0.0
		for _, row := range result {
			total += row.Rate
		}
		require.InDelta(t, 100.0, total, 0.2)
	})
}

func TestBuildTrend(t *testing.T) {
	t.Run(`группировка по месяцам в хронологическом порядке`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			candidate(models.CandidateStatusPending, "", 80, "15.02.2026"),
			candidate(models.CandidateStatusPending, "", 60, "20.02.2026"),
			candidate(models.CandidateStatusPending, "", 90, "03.01.2026"),
		}
		result := BuildTrend(list, analyticsapimodels.BucketMonth, 1)
		require.Len(t, result, 2)
		require.Equal(t, "01.01.2026", result[0].Bucket)
		require.Equal(t, 1, result[0].Count)
		require.Equal(t, 90.0, result[0].AvgScore)
		require.Equal(t, "01.02.2026", result[1].Bucket)
		require.Equal(t, 2, result[1].Count)
		require.Equal(t, 70.0, result[1].AvgScore)
	})

	t.Run(`кандидаты без даты отклика пропускаются`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			{Status: models.CandidateStatusPending, AIScore: 50},
		}
		result := BuildTrend(list, analyticsapimodels.BucketDay, 1)
		require.Empty(t, result)
	})

	t.Run(`недельная группировка начинается с понедельника`, func(t *testing.T) {
		// 15.03.2026 - воскресенье, начало его недели 09.03.2026
		start := BucketStart(time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC), analyticsapimodels.BucketWeek)
		require.Equal(t, "09.03.2026", start.Format("02.01.2006"))
	})
}

func TestFilterPeriod(t *testing.T) {
	t.Run(`границы периода`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			candidate(models.CandidateStatusPending, "", 0, "31.01.2026"),
			candidate(models.CandidateStatusPending, "", 0, "01.02.2026"),
			candidate(models.CandidateStatusPending, "", 0, "28.02.2026"),
			candidate(models.CandidateStatusPending, "", 0, "01.03.2026"),
		}
		from, _ := time.Parse("02.01.2006", "01.02.2026")
		to, _ := time.Parse("02.01.2006", "01.03.2026")
		result := FilterPeriod(list, from, to)
		require.Len(t, result, 2)
	})

	t.Run(`открытый период возвращает всё`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			candidate(models.CandidateStatusPending, "", 0, "01.02.2026"),
		}
		require.Len(t, FilterPeriod(list, time.Time{}, time.Time{}), 1)
	})
}

func TestBuildStats(t *testing.T) {
	t.Run(`сводка`, func(t *testing.T) {
		jobs := []dbmodels.Job{
			{Status: models.JobStatusActive},
			{Status: models.JobStatusDraft},
		}
		candidates := []dbmodels.Candidate{
			candidate(models.CandidateStatusPending, "", 80, "01.02.2026"),
			candidate(models.CandidateStatusScreening, "", 60, "01.02.2026"),
			candidate(models.CandidateStatusInterviewing, "", 70, "01.02.2026"),
		}
		referrals := []dbmodels.Referral{
			{Status: models.ReferralStatusHired},
			{Status: models.ReferralStatusPending},
		}
		interviews := []dbmodels.Interview{
			{Status: models.InterviewStatusScheduled},
			{Status: models.InterviewStatusCompleted},
			{Status: models.InterviewStatusCancelled},
		}
		stats := BuildStats(jobs, candidates, referrals, interviews, 1)
		require.Equal(t, 2, stats.TotalJobs)
		require.Equal(t, 1, stats.ActiveJobs)
		require.Equal(t, 3, stats.TotalCandidates)
		require.Equal(t, 2, stats.PendingCandidates)
		require.Equal(t, 1, stats.InterviewingCandidates)
		require.Equal(t, 70.0, stats.AvgAIScore)
		require.Equal(t, 1, stats.SuccessfulReferrals)
		require.Equal(t, 1, stats.ScheduledInterviews)
		require.Equal(t, 1, stats.CompletedInterviews)
	})
}
