package dbmodels

import (
	"time"

	"hr-pipeline-backend/models"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Candidate struct {
	BaseModel
	JobID      string                 `gorm:"type:varchar(36);index"`
	Job        *Job                   `gorm:"foreignKey:JobID"`
	Name       string                 `gorm:"type:varchar(255)"`
	Email      string                 `gorm:"type:varchar(255)"`
	Phone      string                 `gorm:"type:varchar(255)"`
	Status     models.CandidateStatus `gorm:"type:varchar(50);index"`
	AIScore    int                    // оценка соответствия вакансии 0-100
	Skills     pq.StringArray         `gorm:"type:text[]"`
	Experience string
	Education  string
	Source     string `gorm:"type:varchar(255);index"`
	Notes      string
	AppliedAt  time.Time `gorm:"index"`
}

func (c Candidate) Validate() error {
	if c.Name == "" {
		return errors.Wrap(models.ErrValidation, "не указано имя кандидата")
	}
	if c.JobID == "" {
		return errors.Wrap(models.ErrValidation, "не указана вакансия")
	}
	if c.AIScore < 0 || c.AIScore > 100 {
		return errors.Wrap(models.ErrValidation, "оценка соответствия вне диапазона 0-100")
	}
	if !c.Status.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный статус кандидата")
	}
	return nil
}

// JobName - название вакансии кандидата, "вакансия неизвестна" если она удалена
func (c Candidate) JobName() string {
	if c.Job == nil {
		return "вакансия неизвестна"
	}
	return c.Job.Title
}
