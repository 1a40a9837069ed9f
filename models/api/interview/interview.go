package interviewapimodels

import (
	"time"

	"hr-pipeline-backend/lib/filter"
	"hr-pipeline-backend/lib/utils/helpers"
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
)

type InterviewData struct {
	CandidateID   string               `json:"candidate_id"`   // Идентификатор кандидата
	InterviewerID string               `json:"interviewer_id"` // Идентификатор интервьюера
	Date          string               `json:"date"`           // Дата интервью ДД.ММ.ГГГГ
	StartTime     string               `json:"start_time"`     // Начало слота ЧЧ:ММ
	EndTime       string               `json:"end_time"`       // Окончание слота ЧЧ:ММ
	Kind          models.InterviewKind `json:"kind"`           // Формат: online/offline
	Round         int                  `json:"round"`          // Номер раунда, с 1
	Place         string               `json:"place"`          // Адрес или ссылка на конференцию
}

func (d InterviewData) Validate() error {
	if d.CandidateID == "" {
		return errors.Wrap(models.ErrValidation, "не указан кандидат")
	}
	if d.InterviewerID == "" {
		return errors.Wrap(models.ErrValidation, "не указан интервьюер")
	}
	if _, _, err := d.GetSlot(); err != nil {
		return err
	}
	if d.Round < 1 {
		return errors.Wrap(models.ErrValidation, "номер раунда должен быть не меньше 1")
	}
	if !d.Kind.IsValid() {
		return errors.Wrap(models.ErrValidation, "неизвестный формат интервью")
	}
	return nil
}

// GetSlot возвращает границы слота как отметки времени на дате интервью
func (d InterviewData) GetSlot() (startsAt, endsAt time.Time, err error) {
	date, err := helpers.ParseDate(d.Date)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(models.ErrValidation, "некорректный формат даты интервью")
	}
	start, err := helpers.ParseTimeOfDay(d.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(models.ErrValidation, "некорректный формат времени начала")
	}
	end, err := helpers.ParseTimeOfDay(d.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(models.ErrValidation, "некорректный формат времени окончания")
	}
	startsAt = date.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute)
	endsAt = date.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute)
	if !startsAt.Before(endsAt) {
		return time.Time{}, time.Time{}, errors.Wrap(models.ErrValidation, "начало интервью должно быть раньше окончания")
	}
	return startsAt, endsAt, nil
}

type EvaluationData struct {
	Technical     int                     `json:"technical"`     // Техническая подготовка 1-5
	Communication int                     `json:"communication"` // Коммуникация 1-5
	Teamwork      int                     `json:"teamwork"`      // Работа в команде 1-5
	Overall       int                     `json:"overall"`       // Общая оценка 1-5
	Feedback      string                  `json:"feedback"`      // Отзыв интервьюера
	Result        models.EvaluationResult `json:"result"`        // Итог: pass/reject/pending
}

func (e EvaluationData) Validate() error {
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

type EvaluationView struct {
	EvaluationData
	Version   int    `json:"version"`
	CreatedAt string `json:"created_at"`
}

type InterviewView struct {
	InterviewData
	ID            string                 `json:"id"`
	CandidateName string                 `json:"candidate_name"`
	Status        models.InterviewStatus `json:"status"`
	Evaluation    *EvaluationView        `json:"evaluation,omitempty"` // актуальная версия оценки
}

func Convert(rec dbmodels.Interview) InterviewView {
	view := InterviewView{
		InterviewData: InterviewData{
			CandidateID:   rec.CandidateID,
			InterviewerID: rec.InterviewerID,
			Date:          rec.Date.Format("02.01.2006"),
			StartTime:     rec.StartsAt.Format("15:04"),
			EndTime:       rec.EndsAt.Format("15:04"),
			Kind:          rec.Kind,
			Round:         rec.Round,
			Place:         rec.Place,
		},
		ID:     rec.ID,
		Status: rec.Status,
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.Name
	}
	if eval := rec.LastEvaluation(); eval != nil {
		view.Evaluation = &EvaluationView{
			EvaluationData: EvaluationData{
				Technical:     eval.Technical,
				Communication: eval.Communication,
				Teamwork:      eval.Teamwork,
				Overall:       eval.Overall,
				Feedback:      eval.Feedback,
				Result:        eval.Result,
			},
			Version:   eval.Version,
			CreatedAt: eval.CreatedAt.Format("02.01.2006"),
		}
	}
	return view
}

type InterviewFilter struct {
	apimodels.Pagination
	CandidateID   string `json:"candidate_id"`   // Интервью кандидата
	InterviewerID string `json:"interviewer_id"` // Интервью интервьюера
	Status        string `json:"status"`         // Точное совпадение статуса
	Date          string `json:"date"`           // Интервью на дату ДД.ММ.ГГГГ
}

func (f InterviewFilter) ToSpec() filter.Spec {
	return filter.Spec{
		Fields: map[string]string{
			"candidate_id":   f.CandidateID,
			"interviewer_id": f.InterviewerID,
			"status":         f.Status,
			"date":           f.Date,
		},
	}
}

func FilterRecord(rec dbmodels.Interview) filter.Record {
	return filter.Record{
		Fields: map[string]string{
			"candidate_id":   rec.CandidateID,
			"interviewer_id": rec.InterviewerID,
			"status":         string(rec.Status),
			"date":           rec.Date.Format("02.01.2006"),
		},
	}
}

// CalendarDay - производная проекция календаря: интервью, сгруппированные по дате
type CalendarDay struct {
	Date       string          `json:"date"`
	Interviews []InterviewView `json:"interviews"`
}
