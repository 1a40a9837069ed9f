package dbmodels

import (
	"time"

	"hr-pipeline-backend/models"

	"github.com/pkg/errors"
)

type Job struct {
	BaseModel
	Title          string `gorm:"type:varchar(255);index"`
	Department     string `gorm:"type:varchar(255);index"`
	Location       string `gorm:"type:varchar(255)"`
	Description    string
	Requirements   string
	SalaryFrom     int
	SalaryTo       int
	EmploymentType models.EmploymentType `gorm:"type:varchar(50)"`
	Status         models.JobStatus      `gorm:"type:varchar(50);index"`
	RecruiterID    string                `gorm:"type:varchar(36)"`
	Deadline       *time.Time            // срок приёма откликов, необязателен
}

// Validate проверяет инварианты вакансии перед записью
func (j Job) Validate() error {
	if j.Title == "" {
		return errors.Wrap(models.ErrValidation, "не указано название вакансии")
	}
	if j.SalaryFrom < 0 || j.SalaryTo < 0 {
		return errors.Wrap(models.ErrValidation, "зарплатная вилка не может быть отрицательной")
	}
	if j.SalaryTo != 0 && j.SalaryFrom > j.SalaryTo {
		return errors.Wrap(models.ErrValidation, "нижняя граница вилки больше верхней")
	}
	if j.EmploymentType != "" && !j.EmploymentType.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный тип занятости")
	}
	if !j.Status.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный статус вакансии")
	}
	return nil
}

// JobCounters - счётчики по вакансии, всегда пересчитываются по кандидатам
type JobCounters struct {
	Applicants   int `json:"applicants"`
	Interviewing int `json:"interviewing"`
	Offers       int `json:"offers"`
	Hires        int `json:"hires"`
}
