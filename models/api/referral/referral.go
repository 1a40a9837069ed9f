package referralapimodels

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
)

type ReferralData struct {
	ReferrerID   string `json:"referrer_id"`   // Табельный идентификатор сотрудника
	ReferrerName string `json:"referrer_name"` // Имя сотрудника
	CandidateID  string `json:"candidate_id"`  // Рекомендованный кандидат
	JobID        string `json:"job_id"`        // Вакансия
	Reward       int    `json:"reward"`        // Вознаграждение за найм
	Notes        string `json:"notes"`         // Заметки
}

func (r ReferralData) Validate() error {
	if r.ReferrerID == "" {
		return errors.Wrap(models.ErrValidation, "не указан рекомендатель")
	}
	if r.CandidateID == "" {
		return errors.Wrap(models.ErrValidation, "не указан кандидат")
	}
	if r.Reward < 0 {
		return errors.Wrap(models.ErrValidation, "вознаграждение не может быть отрицательным")
	}
	return nil
}

type ReferralView struct {
	ReferralData
	ID            string                `json:"id"`
	CandidateName string                `json:"candidate_name"`
	JobTitle      string                `json:"job_title"`
	Status        models.ReferralStatus `json:"status"`
	SubmittedAt   string                `json:"submitted_at"`
}

func Convert(rec dbmodels.Referral) ReferralView {
	view := ReferralView{
		ReferralData: ReferralData{
			ReferrerID:   rec.ReferrerID,
			ReferrerName: rec.ReferrerName,
			CandidateID:  rec.CandidateID,
			JobID:        rec.JobID,
			Reward:       rec.Reward,
			Notes:        rec.Notes,
		},
		ID:          rec.ID,
		Status:      rec.Status,
		SubmittedAt: rec.SubmittedAt.Format("02.01.2006"),
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.Name
	}
	if rec.Job != nil {
		view.JobTitle = rec.Job.Title
	}
	return view
}

type StatusChange struct {
	Status models.ReferralStatus `json:"status"` // Новый статус рекомендации
}

func (s StatusChange) Validate() error {
	if !s.Status.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный статус рекомендации")
	}
	return nil
}
