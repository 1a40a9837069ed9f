package dbmodels

import (
	"time"

	"hr-pipeline-backend/models"

	"github.com/pkg/errors"
)

// Referral - рекомендация кандидата сотрудником, учитывается отдельно
// от воронки ради выплаты вознаграждения
type Referral struct {
	BaseModel
	ReferrerID   string                `gorm:"type:varchar(36);index"`
	ReferrerName string                `gorm:"type:varchar(255)"`
	CandidateID  string                `gorm:"type:varchar(36);index"`
	Candidate    *Candidate            `gorm:"foreignKey:CandidateID"`
	JobID        string                `gorm:"type:varchar(36)"`
	Job          *Job                  `gorm:"foreignKey:JobID"`
	Status       models.ReferralStatus `gorm:"type:varchar(50);index"`
	Reward       int
	Notes        string
	SubmittedAt  time.Time
}

func (r Referral) Validate() error {
	if r.ReferrerID == "" {
		return errors.Wrap(models.ErrValidation, "не указан рекомендатель")
	}
	if r.CandidateID == "" {
		return errors.Wrap(models.ErrValidation, "не указан кандидат")
	}
	if r.Reward < 0 {
		return errors.Wrap(models.ErrValidation, "вознаграждение не может быть отрицательным")
	}
	if !r.Status.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный статус рекомендации")
	}
	return nil
}
