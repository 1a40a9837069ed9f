package candidateapimodels

import (
	"time"

	"hr-pipeline-backend/lib/filter"
	"hr-pipeline-backend/lib/utils/helpers"
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type CandidateData struct {
	JobID      string   `json:"job_id"`     // Идентификатор вакансии
	Name       string   `json:"name"`       // ФИО кандидата
	Email      string   `json:"email"`      // Емайл
	Phone      string   `json:"phone"`      // Телефон
	AIScore    int      `json:"ai_score"`   // Оценка соответствия 0-100
	Skills     []string `json:"skills"`     // Навыки
	Experience string   `json:"experience"` // Опыт, свободный текст
	Education  string   `json:"education"`  // Образование, свободный текст
	Source     string   `json:"source"`     // Источник кандидата
	Notes      string   `json:"notes"`      // Заметки
	AppliedAt  string   `json:"applied_at"` // Дата отклика ДД.ММ.ГГГГ, по умолчанию сегодня
}

func (c CandidateData) Validate() error {
	if c.Name == "" {
		return errors.Wrap(models.ErrValidation, "не указано имя кандидата")
	}
	if c.JobID == "" {
		return errors.Wrap(models.ErrValidation, "не указана вакансия")
	}
	if _, err := c.GetAppliedAt(); err != nil {
		return err
	}
	return nil
}

func (c CandidateData) GetAppliedAt() (time.Time, error) {
	if c.AppliedAt == "" {
		return time.Now(), nil
	}
	appliedAt, err := helpers.ParseDate(c.AppliedAt)
	if err != nil {
		return time.Time{}, errors.Wrap(models.ErrValidation, "некорректный формат даты отклика")
	}
	return appliedAt, nil
}

// ClampScore приводит оценку соответствия к диапазону 0-100
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

type CandidateView struct {
	CandidateData
	ID        string                 `json:"id"`
	JobTitle  string                 `json:"job_title"` // Название вакансии, денормализовано
	Status    models.CandidateStatus `json:"status"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

func Convert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		CandidateData: CandidateData{
			JobID:      rec.JobID,
			Name:       rec.Name,
			Email:      rec.Email,
			Phone:      rec.Phone,
			AIScore:    rec.AIScore,
			Skills:     rec.Skills,
			Experience: rec.Experience,
			Education:  rec.Education,
			Source:     rec.Source,
			Notes:      rec.Notes,
			AppliedAt:  rec.AppliedAt.Format("02.01.2006"),
		},
		ID:        rec.ID,
		JobTitle:  rec.JobName(),
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt.Format("02.01.2006"),
		UpdatedAt: rec.UpdatedAt.Format("02.01.2006"),
	}
}

type CandidateFilter struct {
	apimodels.Pagination
	Search   string `json:"search"`    // Подстрока по имени/емайлу
	Status   string `json:"status"`    // Точное совпадение статуса
	JobID    string `json:"job_id"`    // Кандидаты вакансии
	JobTitle string `json:"job_title"` // Точное совпадение названия вакансии
	Source   string `json:"source"`    // Источник кандидата
}

func (f CandidateFilter) ToSpec() filter.Spec {
	return filter.Spec{
		Search: f.Search,
		Fields: map[string]string{
			"status":    f.Status,
			"job_id":    f.JobID,
			"job_title": f.JobTitle,
			"source":    f.Source,
		},
	}
}

func FilterRecord(rec dbmodels.Candidate) filter.Record {
	return filter.Record{
		Fields: map[string]string{
			"status":    string(rec.Status),
			"job_id":    rec.JobID,
			"job_title": rec.JobName(),
			"source":    rec.Source,
		},
		Searchable: []string{rec.Name, rec.Email, rec.JobName()},
	}
}

// CandidateUpdate - частичное обновление: записываются только
// присланные поля, статус меняется отдельным переходом
type CandidateUpdate struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	AIScore    *int      `json:"ai_score"`
	Skills     *[]string `json:"skills"`
	Experience *string   `json:"experience"`
	Education  *string   `json:"education"`
	Source     *string   `json:"source"`
	Notes      *string   `json:"notes"`
}

func (u CandidateUpdate) ToUpdMap() (map[string]interface{}, error) {
	updMap := map[string]interface{}{}
	if u.Name != nil {
		if *u.Name == "" {
			return nil, errors.Wrap(models.ErrValidation, "не указано имя кандидата")
		}
		updMap["name"] = *u.Name
	}
	if u.Email != nil {
		updMap["email"] = *u.Email
	}
	if u.Phone != nil {
		updMap["phone"] = *u.Phone
	}
	if u.AIScore != nil {
		updMap["ai_score"] = ClampScore(*u.AIScore)
	}
	if u.Skills != nil {
		updMap["skills"] = pq.StringArray(*u.Skills)
	}
	if u.Experience != nil {
		updMap["experience"] = *u.Experience
	}
	if u.Education != nil {
		updMap["education"] = *u.Education
	}
	if u.Source != nil {
		updMap["source"] = *u.Source
	}
	if u.Notes != nil {
		updMap["notes"] = *u.Notes
	}
	return updMap, nil
}

type StatusChange struct {
	Status models.CandidateStatus `json:"status"` // Новый статус кандидата
}

func (s StatusChange) Validate() error {
	if !s.Status.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный статус кандидата")
	}
	return nil
}
