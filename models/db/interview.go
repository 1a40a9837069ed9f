package dbmodels

import (
	"time"

	"hr-pipeline-backend/models"

	"github.com/pkg/errors"
)

type Interview struct {
	BaseModel
	CandidateID   string     `gorm:"type:varchar(36);index"`
	Candidate     *Candidate `gorm:"foreignKey:CandidateID"`
	InterviewerID string     `gorm:"type:varchar(36);index"`
	// дата интервью с нулевым временем, границы слота отдельными отметками
	Date     time.Time `gorm:"index"`
	StartsAt time.Time
	EndsAt   time.Time
	Kind     models.InterviewKind   `gorm:"type:varchar(50)"`
	Round    int                    // номер раунда, с 1
	Status   models.InterviewStatus `gorm:"type:varchar(50);index"`
	// адрес или ссылка на конференцию, по типу интервью
	Place       string       `gorm:"type:varchar(512)"`
	Evaluations []Evaluation `gorm:"foreignKey:InterviewID"`
}

func (i Interview) Validate() error {
	if i.CandidateID == "" {
		return errors.Wrap(models.ErrValidation, "не указан кандидат")
	}
	if i.InterviewerID == "" {
		return errors.Wrap(models.ErrValidation, "не указан интервьюер")
	}
	if !i.StartsAt.Before(i.EndsAt) {
		return errors.Wrap(models.ErrValidation, "начало интервью должно быть раньше окончания")
	}
	if i.Round < 1 {
		return errors.Wrap(models.ErrValidation, "номер раунда должен быть не меньше 1")
	}
	if !i.Kind.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный формат интервью")
	}
	return nil
}

// LastEvaluation - актуальная версия оценки, оценки не перезаписываются
func (i Interview) LastEvaluation() *Evaluation {
	var last *Evaluation
	for idx := range i.Evaluations {
		if last == nil || i.Evaluations[idx].Version > last.Version {
			last = &i.Evaluations[idx]
		}
	}
	return last
}

// Evaluation - оценка по итогам интервью, append-only:
// правка после завершения добавляет новую версию, история сохраняется
type Evaluation struct {
	BaseModel
	InterviewID   string `gorm:"type:varchar(36);index"`
	Version       int
	Technical     int
	Communication int
	Teamwork      int
	Overall       int
	Feedback      string
	Result        models.EvaluationResult `gorm:"type:varchar(50)"`
}

func (e Evaluation) Validate() error {
	for _, rating := range []int{e.Technical, e.Communication, e.Teamwork, e.Overall} {
		if rating < 1 || rating > 5 {
			return errors.Wrap(models.ErrValidation, "оценки должны быть в диапазоне 1-5")
		}
	}
	if !e.Result.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный результат интервью")
	}
	return nil
}
