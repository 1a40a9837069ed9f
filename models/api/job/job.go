package jobapimodels

import (
	"time"

	"hr-pipeline-backend/lib/filter"
	"hr-pipeline-backend/lib/utils/helpers"
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
)

type JobData struct {
	Title          string                `json:"title"`           // Название вакансии
	Department     string                `json:"department"`      // Подразделение
	Location       string                `json:"location"`        // Локация
	Description    string                `json:"description"`     // Описание
	Requirements   string                `json:"requirements"`    // Требования
	SalaryFrom     int                   `json:"salary_from"`     // Нижняя граница вилки
	SalaryTo       int                   `json:"salary_to"`       // Верхняя граница вилки
	EmploymentType models.EmploymentType `json:"employment_type"` // Тип занятости
	RecruiterID    string                `json:"recruiter_id"`    // Идентификатор рекрутера
	Deadline       string                `json:"deadline"`        // Срок приёма откликов ДД.ММ.ГГГГ, необязателен
}

func (j JobData) Validate() error {
	if j.Title == "" {
		return errors.Wrap(models.ErrValidation, "не указано название вакансии")
	}
	if _, err := j.GetDeadline(); err != nil {
		return err
	}
	return nil
}

func (j JobData) GetDeadline() (*time.Time, error) {
	if j.Deadline == "" {
		return nil, nil
	}
	deadline, err := helpers.ParseDate(j.Deadline)
	if err != nil {
		return nil, errors.Wrap(models.ErrValidation, "некорректный формат срока приёма откликов")
	}
	return &deadline, nil
}

type JobView struct {
	JobData
	ID        string               `json:"id"`
	Status    models.JobStatus     `json:"status"`
	Counters  dbmodels.JobCounters `json:"counters"` // всегда пересчитаны по кандидатам
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

func Convert(rec dbmodels.Job, counters dbmodels.JobCounters) JobView {
	view := JobView{
		JobData: JobData{
			Title:          rec.Title,
			Department:     rec.Department,
			Location:       rec.Location,
			Description:    rec.Description,
			Requirements:   rec.Requirements,
			SalaryFrom:     rec.SalaryFrom,
			SalaryTo:       rec.SalaryTo,
			EmploymentType: rec.EmploymentType,
			RecruiterID:    rec.RecruiterID,
		},
		ID:        rec.ID,
		Status:    rec.Status,
		Counters:  counters,
		CreatedAt: rec.CreatedAt.Format("02.01.2006"),
		UpdatedAt: rec.UpdatedAt.Format("02.01.2006"),
	}
	if rec.Deadline != nil {
		view.Deadline = rec.Deadline.Format("02.01.2006")
	}
	return view
}

type JobFilter struct {
	apimodels.Pagination
	Search     string `json:"search"`     // Подстрока по названию/подразделению/локации
	Department string `json:"department"` // Точное совпадение подразделения
	Status     string `json:"status"`     // Точное совпадение статуса
}

func (f JobFilter) ToSpec() filter.Spec {
	return filter.Spec{
		Search: f.Search,
		Fields: map[string]string{
			"department": f.Department,
			"status":     f.Status,
		},
	}
}

// FilterRecord - проекция вакансии для фильтрации
func FilterRecord(rec dbmodels.Job) filter.Record {
	return filter.Record{
		Fields: map[string]string{
			"department":      rec.Department,
			"status":          string(rec.Status),
			"location":        rec.Location,
			"employment_type": string(rec.EmploymentType),
		},
		Searchable: []string{rec.Title, rec.Department, rec.Location},
	}
}

type StatusChange struct {
	Status models.JobStatus `json:"status"` // Новый статус вакансии
}

func (s StatusChange) Validate() error {
	if !s.Status.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный статус вакансии")
	}
	return nil
}
