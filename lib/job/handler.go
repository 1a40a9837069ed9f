package jobhandler

import (
	"context"
	"time"

	"hr-pipeline-backend/db"
	candidatestore "hr-pipeline-backend/lib/candidate/store"
	"hr-pipeline-backend/lib/filter"
	jobstore "hr-pipeline-backend/lib/job/store"
	statuslog "hr-pipeline-backend/lib/status-log"
	"hr-pipeline-backend/lib/utils/lock"
	"hr-pipeline-backend/models"
	jobapimodels "hr-pipeline-backend/models/api/job"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data jobapimodels.JobData) (id string, err error)
	Update(id string, data jobapimodels.JobData) error
	GetByID(id string) (jobapimodels.JobView, error)
	Delete(id string) error
	List(jobFilter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	StatusChange(id string, status models.JobStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          jobstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store          jobstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) getLogger(jobID string) *log.Entry {
	return log.WithField("job_id", jobID)
}

func (i impl) Create(data jobapimodels.JobData) (string, error) {
	deadline, err := data.GetDeadline()
	if err != nil {
		return "", err
	}
	rec := dbmodels.Job{
		Title:          data.Title,
		Department:     data.Department,
		Location:       data.Location,
		Description:    data.Description,
		Requirements:   data.Requirements,
		SalaryFrom:     data.SalaryFrom,
		SalaryTo:       data.SalaryTo,
		EmploymentType: data.EmploymentType,
		Status:         models.JobStatusDraft, // вакансия всегда создаётся черновиком
		RecruiterID:    data.RecruiterID,
		Deadline:       deadline,
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания вакансии")
	}
	i.getLogger(id).Info("создана вакансия")
	return id, nil
}

func (i impl) Update(id string, data jobapimodels.JobData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return models.ErrNotFound
	}
	deadline, err := data.GetDeadline()
	if err != nil {
		return err
	}
	merged := *rec
	merged.Title = data.Title
	merged.Department = data.Department
	merged.Location = data.Location
	merged.Description = data.Description
	merged.Requirements = data.Requirements
	merged.SalaryFrom = data.SalaryFrom
	merged.SalaryTo = data.SalaryTo
	merged.EmploymentType = data.EmploymentType
	merged.RecruiterID = data.RecruiterID
	merged.Deadline = deadline
	if err := merged.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":           merged.Title,
		"department":      merged.Department,
		"location":        merged.Location,
		"description":     merged.Description,
		"requirements":    merged.Requirements,
		"salary_from":     merged.SalaryFrom,
		"salary_to":       merged.SalaryTo,
		"employment_type": merged.EmploymentType,
		"recruiter_id":    merged.RecruiterID,
		"deadline":        merged.Deadline,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return errors.Wrap(err, "ошибка изменения вакансии")
	}
	return nil
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return jobapimodels.JobView{}, models.ErrNotFound
	}
	counters, err := i.counters(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	return jobapimodels.Convert(*rec, counters), nil
}

// Delete удаляет вакансию; кандидаты не удаляются каскадно,
// осиротевшая ссылка сохраняется ради аудита
func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return errors.Wrap(err, "ошибка удаления вакансии")
	}
	i.getLogger(id).Info("удалена вакансия")
	return nil
}

func (i impl) List(jobFilter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	filtered := filter.Apply(list, jobFilter.ToSpec(), jobapimodels.FilterRecord)
	rowCount := int64(len(filtered))

	page, limit := jobFilter.GetPage()
	offset := (page - 1) * limit
	if offset > len(filtered) {
		return []jobapimodels.JobView{}, rowCount, nil
	}
	tail := offset + limit
	if tail > len(filtered) {
		tail = len(filtered)
	}
	result := make([]jobapimodels.JobView, 0, tail-offset)
	for _, rec := range filtered[offset:tail] {
		counters, err := i.counters(rec.ID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, jobapimodels.Convert(rec, counters))
	}
	return result, rowCount, nil
}

func (i impl) StatusChange(id string, status models.JobStatus) error {
	logger := i.getLogger(id).WithField("status", status)
	ok, err := lock.WithDelay(context.Background(), "job:"+id, 5*time.Second, func() error {
		return db.DB.Transaction(func(tx *gorm.DB) error {
			store := jobstore.NewInstance(tx)
			rec, err := store.GetByID(id)
			if err != nil {
				return errors.Wrap(err, "ошибка получения вакансии")
			}
			if rec == nil {
				return models.ErrNotFound
			}
			if rec.Status == status {
				return nil
			}
			if !rec.Status.CanTransition(status) {
				return errors.Wrapf(models.ErrInvalidTransition, "переход %v -> %v", rec.Status, status)
			}
			updMap := map[string]interface{}{
				"status": status,
			}
			if err = store.Update(id, updMap); err != nil {
				return errors.Wrap(err, "ошибка обновления статуса вакансии")
			}
			statuslog.NewTxHandler(tx).Save(models.EntityTypeJob, id, string(rec.Status), string(status))
			return nil
		})
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("вакансия занята другой операцией")
	}
	logger.Info("обновлён статус вакансии")
	return nil
}

// counters пересчитывает счётчики вакансии по статусам кандидатов
func (i impl) counters(jobID string) (dbmodels.JobCounters, error) {
	counts, err := i.candidateStore.CountStatuses(jobID)
	if err != nil {
		return dbmodels.JobCounters{}, errors.Wrap(err, "ошибка подсчёта кандидатов вакансии")
	}
	return CountersFromStatuses(counts), nil
}

// CountersFromStatuses выводит накопительные счётчики воронки вакансии
// из распределения кандидатов по статусам. Счётчики по построению
// неотрицательны и монотонны: hires <= offers <= interviews <= applicants.
func CountersFromStatuses(counts map[models.CandidateStatus]int) dbmodels.JobCounters {
	result := dbmodels.JobCounters{}
	for status, count := range counts {
		result.Applicants += count
		if status.ReachedStage(models.CandidateStatusInterviewing) {
			result.Interviewing += count
		}
		if status.ReachedStage(models.CandidateStatusOffered) {
			result.Offers += count
		}
		if status == models.CandidateStatusHired {
			result.Hires += count
		}
	}
	return result
}
