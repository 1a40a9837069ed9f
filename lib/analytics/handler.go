package analytics

import (
	"bytes"

	"hr-pipeline-backend/config"
	"hr-pipeline-backend/db"
	planstore "hr-pipeline-backend/lib/analytics/plan-store"
	candidatestore "hr-pipeline-backend/lib/candidate/store"
	pdfexport "hr-pipeline-backend/lib/export/pdf"
	xlsexport "hr-pipeline-backend/lib/export/xls"
	interviewstore "hr-pipeline-backend/lib/interview/store"
	jobstore "hr-pipeline-backend/lib/job/store"
	referralstore "hr-pipeline-backend/lib/referral/store"
	initchecker "hr-pipeline-backend/lib/utils/init-checker"
	analyticsapimodels "hr-pipeline-backend/models/api/analytics"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Funnel(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.FunnelReport, error)
	Departments(filter analyticsapimodels.AnalyticsFilter) ([]analyticsapimodels.DepartmentRate, error)
	Sources(filter analyticsapimodels.AnalyticsFilter) ([]analyticsapimodels.SourceShare, error)
	Trend(filter analyticsapimodels.AnalyticsFilter) ([]analyticsapimodels.TrendPoint, error)
	Stats() (analyticsapimodels.StatsView, error)
	SourcesExportToXls(filter analyticsapimodels.AnalyticsFilter) (*bytes.Buffer, error)
	FunnelReportToPdf(filter analyticsapimodels.AnalyticsFilter) ([]byte, error)
	PlanList() ([]dbmodels.DepartmentPlan, error)
	PlanUpsert(rec dbmodels.DepartmentPlan) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		candidateStore: candidatestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
		referralStore:  referralstore.NewInstance(db.DB),
		interviewStore: interviewstore.NewInstance(db.DB),
		planStore:      planstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"xlsExport", xlsexport.Instance,
	)
	Instance = instance
}

type impl struct {
	candidateStore candidatestore.Provider
	jobStore       jobstore.Provider
	referralStore  referralstore.Provider
	interviewStore interviewstore.Provider
	planStore      planstore.Provider
}

func (i impl) precision() int {
	return config.Conf.Analytics.Precision
}

// candidates возвращает срез кандидатов за период из фильтра
func (i impl) candidates(filter analyticsapimodels.AnalyticsFilter) ([]dbmodels.Candidate, error) {
	from, to, err := filter.GetPeriod()
	if err != nil {
		return nil, err
	}
	list, err := i.candidateStore.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка кандидатов")
	}
	return FilterPeriod(list, from, to), nil
}

func (i impl) Funnel(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.FunnelReport, error) {
	list, err := i.candidates(filter)
	if err != nil {
		return analyticsapimodels.FunnelReport{}, err
	}
	return BuildFunnel(list, DefaultStages, i.precision()), nil
}

func (i impl) Departments(filter analyticsapimodels.AnalyticsFilter) ([]analyticsapimodels.DepartmentRate, error) {
	list, err := i.candidates(filter)
	if err != nil {
		return nil, err
	}
	plans, err := i.planStore.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения планов найма")
	}
	return BuildDepartments(list, plans, i.precision()), nil
}

func (i impl) Sources(filter analyticsapimodels.AnalyticsFilter) ([]analyticsapimodels.SourceShare, error) {
	list, err := i.candidates(filter)
	if err != nil {
		return nil, err
	}
	return BuildSources(list, i.precision()), nil
}

func (i impl) Trend(filter analyticsapimodels.AnalyticsFilter) ([]analyticsapimodels.TrendPoint, error) {
	list, err := i.candidates(filter)
	if err != nil {
		return nil, err
	}
	return BuildTrend(list, filter.GetBucket(), i.precision()), nil
}

func (i impl) Stats() (analyticsapimodels.StatsView, error) {
	jobs, err := i.jobStore.List()
	if err != nil {
		return analyticsapimodels.StatsView{}, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	candidates, err := i.candidateStore.List()
	if err != nil {
		return analyticsapimodels.StatsView{}, errors.Wrap(err, "ошибка получения списка кандидатов")
	}
	referrals, err := i.referralStore.List()
	if err != nil {
		return analyticsapimodels.StatsView{}, errors.Wrap(err, "ошибка получения списка рекомендаций")
	}
	interviews, err := i.interviewStore.List()
	if err != nil {
		return analyticsapimodels.StatsView{}, errors.Wrap(err, "ошибка получения списка интервью")
	}
	return BuildStats(jobs, candidates, referrals, interviews, i.precision()), nil
}

func (i impl) SourcesExportToXls(filter analyticsapimodels.AnalyticsFilter) (*bytes.Buffer, error) {
	data, err := i.Sources(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportSources(data)
}

func (i impl) FunnelReportToPdf(filter analyticsapimodels.AnalyticsFilter) ([]byte, error) {
	report, err := i.Funnel(filter)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateFunnelReport(report)
}

func (i impl) PlanList() ([]dbmodels.DepartmentPlan, error) {
	return i.planStore.List()
}

func (i impl) PlanUpsert(rec dbmodels.DepartmentPlan) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return i.planStore.Upsert(rec)
}
