package candidatehandler

import (
	"bytes"
	"context"
	"time"

	"hr-pipeline-backend/db"
	candidatestore "hr-pipeline-backend/lib/candidate/store"
	xlsexport "hr-pipeline-backend/lib/export/xls"
	"hr-pipeline-backend/lib/filter"
	jobstore "hr-pipeline-backend/lib/job/store"
	statuslog "hr-pipeline-backend/lib/status-log"
	"hr-pipeline-backend/lib/utils/lock"
	"hr-pipeline-backend/models"
	candidateapimodels "hr-pipeline-backend/models/api/candidate"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData) (id string, err error)
	Update(id string, data candidateapimodels.CandidateUpdate) error
	GetByID(id string) (candidateapimodels.CandidateView, error)
	Delete(id string) error
	List(candidateFilter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	StatusChange(id string, status models.CandidateStatus) error
	ExportToXls(candidateFilter candidateapimodels.CandidateFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    candidatestore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    candidatestore.Provider
	jobStore jobstore.Provider
}

func (i impl) getLogger(candidateID string) *log.Entry {
	return log.WithField("candidate_id", candidateID)
}

func (i impl) Create(data candidateapimodels.CandidateData) (string, error) {
	job, err := i.jobStore.GetByID(data.JobID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil {
		return "", errors.Wrap(models.ErrValidation, "указанная вакансия не существует")
	}
	appliedAt, err := data.GetAppliedAt()
	if err != nil {
		return "", err
	}
	rec := dbmodels.Candidate{
		JobID:      data.JobID,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Status:     models.CandidateStatusPending, // кандидат всегда начинает с pending
		AIScore:    candidateapimodels.ClampScore(data.AIScore),
		Skills:     data.Skills,
		Experience: data.Experience,
		Education:  data.Education,
		Source:     data.Source,
		Notes:      data.Notes,
		AppliedAt:  appliedAt,
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания кандидата")
	}
	i.getLogger(id).WithField("job_id", data.JobID).Info("создан кандидат")
	return id, nil
}

func (i impl) Update(id string, data candidateapimodels.CandidateUpdate) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения кандидата")
	}
	if rec == nil {
		return models.ErrNotFound
	}
	updMap, err := data.ToUpdMap()
	if err != nil {
		return err
	}
	// пустое обновление допустимо и лишь освежает updated_at
	err = i.store.Update(id, updMap)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return errors.Wrap(err, "ошибка изменения кандидата")
	}
	return nil
}

func (i impl) GetByID(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, errors.Wrap(err, "ошибка получения кандидата")
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, models.ErrNotFound
	}
	return candidateapimodels.Convert(*rec), nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return errors.Wrap(err, "ошибка удаления кандидата")
	}
	i.getLogger(id).Info("удалён кандидат")
	return nil
}

func (i impl) List(candidateFilter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, int64, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка кандидатов")
	}
	filtered := filter.Apply(list, candidateFilter.ToSpec(), candidateapimodels.FilterRecord)
	rowCount := int64(len(filtered))

	page, limit := candidateFilter.GetPage()
	offset := (page - 1) * limit
	if offset > len(filtered) {
		return []candidateapimodels.CandidateView{}, rowCount, nil
	}
	tail := offset + limit
	if tail > len(filtered) {
		tail = len(filtered)
	}
	result := make([]candidateapimodels.CandidateView, 0, tail-offset)
	for _, rec := range filtered[offset:tail] {
		result = append(result, candidateapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ExportToXls(candidateFilter candidateapimodels.CandidateFilter) (*bytes.Buffer, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка кандидатов")
	}
	filtered := filter.Apply(list, candidateFilter.ToSpec(), candidateapimodels.FilterRecord)
	return xlsexport.Instance.ExportCandidateList(filtered)
}

func (i impl) StatusChange(id string, status models.CandidateStatus) error {
	logger := i.getLogger(id).WithField("status", status)
	ok, err := lock.WithDelay(context.Background(), "candidate:"+id, 5*time.Second, func() error {
		return db.DB.Transaction(func(tx *gorm.DB) error {
			store := candidatestore.NewInstance(tx)
			rec, err := store.GetByID(id)
			if err != nil {
				return errors.Wrap(err, "ошибка получения кандидата")
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
				return errors.Wrap(err, "ошибка обновления статуса кандидата")
			}
			statuslog.NewTxHandler(tx).Save(models.EntityTypeCandidate, id, string(rec.Status), string(status))
			return nil
		})
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("кандидат занят другой операцией")
	}
	logger.Info("обновлён статус кандидата")
	return nil
}
