package referralhandler

import (
	"time"

	"hr-pipeline-backend/db"
	candidatestore "hr-pipeline-backend/lib/candidate/store"
	referralstore "hr-pipeline-backend/lib/referral/store"
	"hr-pipeline-backend/models"
	referralapimodels "hr-pipeline-backend/models/api/referral"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Рекомендации сотрудников. Статус ведётся отдельно от статуса кандидата:
// выплата вознаграждения фиксируется по рекомендации, а не по воронке.

type Provider interface {
	Create(data referralapimodels.ReferralData) (id string, err error)
	GetByID(id string) (referralapimodels.ReferralView, error)
	List() ([]referralapimodels.ReferralView, error)
	StatusChange(id string, status models.ReferralStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          referralstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store          referralstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Create(data referralapimodels.ReferralData) (string, error) {
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения кандидата")
	}
	if candidate == nil {
		return "", errors.Wrap(models.ErrValidation, "указанный кандидат не существует")
	}
	jobID := data.JobID
	if jobID == "" {
		jobID = candidate.JobID
	}
	rec := dbmodels.Referral{
		ReferrerID:   data.ReferrerID,
		ReferrerName: data.ReferrerName,
		CandidateID:  data.CandidateID,
		JobID:        jobID,
		Status:       models.ReferralStatusPending,
		Reward:       data.Reward,
		Notes:        data.Notes,
		SubmittedAt:  time.Now(),
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания рекомендации")
	}
	log.WithField("referral_id", id).
		WithField("candidate_id", data.CandidateID).
		Info("создана рекомендация")
	return id, nil
}

func (i impl) GetByID(id string) (referralapimodels.ReferralView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return referralapimodels.ReferralView{}, errors.Wrap(err, "ошибка получения рекомендации")
	}
	if rec == nil {
		return referralapimodels.ReferralView{}, models.ErrNotFound
	}
	return referralapimodels.Convert(*rec), nil
}

func (i impl) List() ([]referralapimodels.ReferralView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка рекомендаций")
	}
	result := make([]referralapimodels.ReferralView, 0, len(list))
	for _, rec := range list {
		result = append(result, referralapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) StatusChange(id string, status models.ReferralStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения рекомендации")
	}
	if rec == nil {
		return models.ErrNotFound
	}
	if rec.Status == status {
		return nil
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return errors.Wrap(err, "ошибка обновления статуса рекомендации")
	}
	log.WithField("referral_id", id).
		WithField("status", status).
		Info("обновлён статус рекомендации")
	return nil
}
