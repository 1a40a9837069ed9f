package analyticsapimodels

import (
	"time"

	"hr-pipeline-backend/lib/utils/helpers"
	"hr-pipeline-backend/models"

	"github.com/pkg/errors"
)

type TimeBucket string

const (
	BucketDay   TimeBucket = "day"
	BucketWeek  TimeBucket = "week"
	BucketMonth TimeBucket = "month"
)

func (b TimeBucket) IsValid() bool {
	return b == BucketDay || b == BucketWeek || b == BucketMonth
}

// AnalyticsFilter - период и шаг группировки; пустой период означает "за всё время"
type AnalyticsFilter struct {
	From   string     `json:"from"`   // Начало периода ДД.ММ.ГГГГ
	To     string     `json:"to"`     // Конец периода ДД.ММ.ГГГГ, включительно
	Bucket TimeBucket `json:"bucket"` // Шаг группировки day/week/month
}

func (f AnalyticsFilter) Validate() error {
	if _, _, err := f.GetPeriod(); err != nil {
		return err
	}
	if f.Bucket != "" && !f.Bucket.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный шаг группировки")
	}
	return nil
}

func (f AnalyticsFilter) GetPeriod() (from, to time.Time, err error) {
	if f.From != "" {
		from, err = helpers.ParseDate(f.From)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(models.ErrValidation, "некорректный формат начала периода")
		}
	}
	if f.To != "" {
		to, err = helpers.ParseDate(f.To)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(models.ErrValidation, "некорректный формат конца периода")
		}
		to = to.AddDate(0, 0, 1) // включительно
	}
	return from, to, nil
}

func (f AnalyticsFilter) GetBucket() TimeBucket {
	if f.Bucket == "" {
		return BucketMonth
	}
	return f.Bucket
}

type FunnelStage struct {
	Stage string  `json:"stage"` // Название этапа
	Count int     `json:"count"` // Кандидатов, достигших этапа
	Rate  float64 `json:"rate"`  // Конверсия от первого этапа, %
}

type FunnelReport struct {
	Stages []FunnelStage `json:"stages"`
	// заполняется при нарушении монотонности счётчиков,
	// признак рассинхронизации данных, не ошибка запроса
	Warning string `json:"warning,omitempty"`
}

type DepartmentRate struct {
	Department string  `json:"department"`
	Target     int     `json:"target"`    // План найма
	Completed  int     `json:"completed"` // Нанято за период
	Rate       float64 `json:"rate"`      // Выполнение плана, %, для отображения ограничено 0-100
	RawRate    float64 `json:"raw_rate"`  // Неограниченное значение для трендов
}

type SourceShare struct {
	Source string  `json:"source"`
	Count  int     `json:"count"`
	Rate   float64 `json:"rate"` // Доля от общего числа кандидатов, %
}

type TrendPoint struct {
	Bucket   string  `json:"bucket"` // Начало интервала ДД.ММ.ГГГГ
	Count    int     `json:"count"`
	AvgScore float64 `json:"avg_score"` // Средняя оценка соответствия
}

// StatsView - сводка для дашборда
type StatsView struct {
	TotalJobs              int     `json:"total_jobs"`
	ActiveJobs             int     `json:"active_jobs"`
	TotalCandidates        int     `json:"total_candidates"`
	PendingCandidates      int     `json:"pending_candidates"` // pending + screening
	InterviewingCandidates int     `json:"interviewing_candidates"`
	AvgAIScore             float64 `json:"avg_ai_score"`
	TotalReferrals         int     `json:"total_referrals"`
	SuccessfulReferrals    int     `json:"successful_referrals"`
	ScheduledInterviews    int     `json:"scheduled_interviews"`
	CompletedInterviews    int     `json:"completed_interviews"`
}
