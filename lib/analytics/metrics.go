package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"hr-pipeline-backend/lib/utils/helpers"
	"hr-pipeline-backend/models"
	analyticsapimodels "hr-pipeline-backend/models/api/analytics"
	dbmodels "hr-pipeline-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// Чистые вычисления метрик над снимком коллекций.
// Пересчитываются на каждый запрос, промежуточные агрегаты не хранятся.

// StageDef - этап воронки: имя и статус, достижение которого учитывается
type StageDef struct {
	Name    string
	Reached models.CandidateStatus
}

// DefaultStages - этапы воронки по умолчанию, в порядке прохождения
var DefaultStages = []StageDef{
	{Name: "applied", Reached: models.CandidateStatusPending},
	{Name: "screened", Reached: models.CandidateStatusScreening},
	{Name: "interviewed", Reached: models.CandidateStatusInterviewing},
	{Name: "offered", Reached: models.CandidateStatusOffered},
	{Name: "hired", Reached: models.CandidateStatusHired},
}

func roundTo(value float64, precision int) float64 {
	factor := math.Pow10(precision)
	return math.Round(value*factor) / factor
}

// BuildFunnel считает воронку по упорядоченным этапам. Конверсия каждого
// этапа считается от первого. Со снимком, полученным только легальными
// переходами, счётчики не возрастают; нарушение монотонности - признак
// рассинхронизации данных, оно логируется и попадает в отчёт
// предупреждением, но не ошибкой.
func BuildFunnel(list []dbmodels.Candidate, stages []StageDef, precision int) analyticsapimodels.FunnelReport {
	report := analyticsapimodels.FunnelReport{
		Stages: make([]analyticsapimodels.FunnelStage, 0, len(stages)),
	}
	for _, stage := range stages {
		count := 0
		for _, rec := range list {
			if rec.Status.ReachedStage(stage.Reached) {
				count++
			}
		}
		report.Stages = append(report.Stages, analyticsapimodels.FunnelStage{
			Stage: stage.Name,
			Count: count,
		})
	}
	if len(report.Stages) == 0 {
		return report
	}
	first := report.Stages[0].Count
	prev := first
	for idx := range report.Stages {
		if first > 0 {
			report.Stages[idx].Rate = roundTo(float64(report.Stages[idx].Count)/float64(first)*100, precision)
		}
		if report.Stages[idx].Count > prev {
			report.Warning = fmt.Sprintf("счётчик этапа %q больше предыдущего", report.Stages[idx].Stage)
			log.WithField("stage", report.Stages[idx].Stage).
				Warn("нарушена монотонность воронки, данные рассинхронизированы")
		}
		prev = report.Stages[idx].Count
	}
	return report
}

// BuildDepartments - выполнение плана найма по подразделениям.
// Отображаемое значение ограничено 0-100, сырое сохраняется для трендов.
func BuildDepartments(list []dbmodels.Candidate, plans []dbmodels.DepartmentPlan, precision int) []analyticsapimodels.DepartmentRate {
	hired := map[string]int{}
	for _, rec := range list {
		if rec.Status != models.CandidateStatusHired || rec.Job == nil {
			continue
		}
		hired[rec.Job.Department]++
	}
	result := make([]analyticsapimodels.DepartmentRate, 0, len(plans))
	for _, plan := range plans {
		row := analyticsapimodels.DepartmentRate{
			Department: plan.Department,
			Target:     plan.Target,
			Completed:  hired[plan.Department],
		}
		if plan.Target > 0 {
			row.RawRate = roundTo(float64(row.Completed)/float64(plan.Target)*100, precision)
			row.Rate = row.RawRate
			if row.Rate > 100 {
				row.Rate = 100
			}
			if row.Rate < 0 {
				row.Rate = 0
			}
		}
		result = append(result, row)
	}
	return result
}

// BuildSources - распределение кандидатов по источникам, доли от общего
// числа; сумма долей равна 100 с точностью до округления
func BuildSources(list []dbmodels.Candidate, precision int) []analyticsapimodels.SourceShare {
	counts := map[string]int{}
	for _, rec := range list {
		source := rec.Source
		if source == "" {
			source = "не указан"
		}
		counts[source]++
	}
	result := make([]analyticsapimodels.SourceShare, 0, len(counts))
	for source, count := range counts {
		row := analyticsapimodels.SourceShare{
			Source: source,
			Count:  count,
		}
		if len(list) > 0 {
			row.Rate = roundTo(float64(count)/float64(len(list))*100, precision)
		}
		result = append(result, row)
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].Count != result[b].Count {
			return result[a].Count > result[b].Count
		}
		return result[a].Source < result[b].Source
	})
	return result
}

// BucketStart - начало интервала, в который попадает отметка времени
func BucketStart(t time.Time, bucket analyticsapimodels.TimeBucket) time.Time {
	day := helpers.DayOf(t)
	switch bucket {
	case analyticsapimodels.BucketDay:
		return day
	case analyticsapimodels.BucketWeek:
		// неделя начинается с понедельника
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return day.AddDate(0, 0, 1-weekday)
	default:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	}
}

// BuildTrend группирует кандидатов по интервалам времени подачи отклика
// и считает количество и среднюю оценку соответствия. Результат
// упорядочен хронологически и полностью пересчитывается на каждый вызов.
// Кандидаты с нулевой датой отклика пропускаются.
func BuildTrend(list []dbmodels.Candidate, bucket analyticsapimodels.TimeBucket, precision int) []analyticsapimodels.TrendPoint {
	type acc struct {
		count int
		score int
	}
	buckets := map[time.Time]*acc{}
	for _, rec := range list {
		if rec.AppliedAt.IsZero() {
			continue
		}
		key := BucketStart(rec.AppliedAt, bucket)
		if buckets[key] == nil {
			buckets[key] = &acc{}
		}
		buckets[key].count++
		buckets[key].score += rec.AIScore
	}
	keys := make([]time.Time, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool {
		return keys[a].Before(keys[b])
	})
	result := make([]analyticsapimodels.TrendPoint, 0, len(keys))
	for _, key := range keys {
		point := analyticsapimodels.TrendPoint{
			Bucket: key.Format("02.01.2006"),
			Count:  buckets[key].count,
		}
		if buckets[key].count > 0 {
			point.AvgScore = roundTo(float64(buckets[key].score)/float64(buckets[key].count), precision)
		}
		result = append(result, point)
	}
	return result
}

// BuildStats - сводка для дашборда
func BuildStats(jobs []dbmodels.Job, candidates []dbmodels.Candidate, referrals []dbmodels.Referral,
	interviews []dbmodels.Interview, precision int) analyticsapimodels.StatsView {
	stats := analyticsapimodels.StatsView{
		TotalJobs:       len(jobs),
		TotalCandidates: len(candidates),
		TotalReferrals:  len(referrals),
	}
	for _, rec := range jobs {
		if rec.Status == models.JobStatusActive {
			stats.ActiveJobs++
		}
	}
	scoreSum := 0
	for _, rec := range candidates {
		switch rec.Status {
		case models.CandidateStatusPending, models.CandidateStatusScreening:
			stats.PendingCandidates++
		case models.CandidateStatusInterviewing:
			stats.InterviewingCandidates++
		}
		scoreSum += rec.AIScore
	}
	if len(candidates) > 0 {
		stats.AvgAIScore = roundTo(float64(scoreSum)/float64(len(candidates)), precision)
	}
	for _, rec := range referrals {
		if rec.Status == models.ReferralStatusHired {
			stats.SuccessfulReferrals++
		}
	}
	for _, rec := range interviews {
		switch rec.Status {
		case models.InterviewStatusScheduled:
			stats.ScheduledInterviews++
		case models.InterviewStatusCompleted:
			stats.CompletedInterviews++
		}
	}
	return stats
}

// FilterPeriod оставляет кандидатов, подавших отклик в заданном периоде.
// Нулевые границы означают открытый период.
func FilterPeriod(list []dbmodels.Candidate, from, to time.Time) []dbmodels.Candidate {
	if from.IsZero() && to.IsZero() {
		return list
	}
	result := make([]dbmodels.Candidate, 0, len(list))
	for _, rec := range list {
		if !from.IsZero() && rec.AppliedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !rec.AppliedAt.Before(to) {
			continue
		}
		result = append(result, rec)
	}
	return result
}
