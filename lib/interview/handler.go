package interviewhandler

import (
	"context"
	"sort"
	"time"

	"hr-pipeline-backend/db"
	candidatestore "hr-pipeline-backend/lib/candidate/store"
	"hr-pipeline-backend/lib/filter"
	interviewstore "hr-pipeline-backend/lib/interview/store"
	"hr-pipeline-backend/lib/utils/helpers"
	"hr-pipeline-backend/lib/utils/lock"
	"hr-pipeline-backend/models"
	interviewapimodels "hr-pipeline-backend/models/api/interview"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data interviewapimodels.InterviewData) (id string, err error)
	GetByID(id string) (interviewapimodels.InterviewView, error)
	List(interviewFilter interviewapimodels.InterviewFilter) (list []interviewapimodels.InterviewView, rowCount int64, err error)
	Cancel(id string) error
	Complete(id string, evaluation interviewapimodels.EvaluationData) error
	Evaluate(id string, evaluation interviewapimodels.EvaluationData) error
	Calendar() ([]interviewapimodels.CalendarDay, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          interviewstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store          interviewstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) getLogger(interviewID string) *log.Entry {
	return log.WithField("interview_id", interviewID)
}

// Overlaps - пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Слоты, соприкасающиеся границами, пересечением не считаются.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Create создаёт интервью. Проверка занятости слота интервьюера и вставка
// выполняются в одной транзакции, чтобы два конкурирующих запроса не были
// приняты на пересекающиеся интервалы.
func (i impl) Create(data interviewapimodels.InterviewData) (id string, err error) {
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения кандидата")
	}
	if candidate == nil {
		return "", errors.Wrap(models.ErrValidation, "указанный кандидат не существует")
	}
	startsAt, endsAt, err := data.GetSlot()
	if err != nil {
		return "", err
	}
	rec := dbmodels.Interview{
		CandidateID:   data.CandidateID,
		InterviewerID: data.InterviewerID,
		Date:          helpers.DayOf(startsAt),
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		Kind:          data.Kind,
		Round:         data.Round,
		Status:        models.InterviewStatusScheduled,
		Place:         data.Place,
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}

	ok, err := lock.WithDelay(context.Background(), "interviewer:"+data.InterviewerID, 5*time.Second, func() error {
		return db.DB.Transaction(func(tx *gorm.DB) error {
			store := interviewstore.NewInstance(tx)
			busy, err := store.ListBlocking(rec.InterviewerID, rec.Date)
			if err != nil {
				return errors.Wrap(err, "ошибка получения занятых слотов интервьюера")
			}
			for _, other := range busy {
				if Overlaps(rec.StartsAt, rec.EndsAt, other.StartsAt, other.EndsAt) {
					return errors.Wrapf(models.ErrSchedulingConflict,
						"слот %v-%v занят интервью %v", other.StartsAt.Format("15:04"), other.EndsAt.Format("15:04"), other.ID)
				}
			}
			id, err = store.Create(rec)
			if err != nil {
				return errors.Wrap(err, "ошибка создания интервью")
			}
			return nil
		})
	})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("календарь интервьюера занят другой операцией")
	}
	i.getLogger(id).
		WithField("candidate_id", data.CandidateID).
		WithField("interviewer_id", data.InterviewerID).
		Info("назначено интервью")
	return id, nil
}

func (i impl) GetByID(id string) (interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return interviewapimodels.InterviewView{}, errors.Wrap(err, "ошибка получения интервью")
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, models.ErrNotFound
	}
	return interviewapimodels.Convert(*rec), nil
}

func (i impl) List(interviewFilter interviewapimodels.InterviewFilter) ([]interviewapimodels.InterviewView, int64, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка интервью")
	}
	filtered := filter.Apply(list, interviewFilter.ToSpec(), interviewapimodels.FilterRecord)
	rowCount := int64(len(filtered))

	page, limit := interviewFilter.GetPage()
	offset := (page - 1) * limit
	if offset > len(filtered) {
		return []interviewapimodels.InterviewView{}, rowCount, nil
	}
	tail := offset + limit
	if tail > len(filtered) {
		tail = len(filtered)
	}
	result := make([]interviewapimodels.InterviewView, 0, tail-offset)
	for _, rec := range filtered[offset:tail] {
		result = append(result, interviewapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

// Cancel отменяет назначенное интервью; завершённое отменить нельзя.
// Проверка статуса и запись идут в одной транзакции под блокировкой,
// конкурирующее завершение не может вклиниться между ними.
func (i impl) Cancel(id string) error {
	ok, err := lock.WithDelay(context.Background(), "interview:"+id, 5*time.Second, func() error {
		return db.DB.Transaction(func(tx *gorm.DB) error {
			store := interviewstore.NewInstance(tx)
			rec, err := store.GetByID(id)
			if err != nil {
				return errors.Wrap(err, "ошибка получения интервью")
			}
			if rec == nil {
				return models.ErrNotFound
			}
			if rec.Status == models.InterviewStatusCancelled {
				return nil
			}
			if rec.Status == models.InterviewStatusCompleted {
				return errors.Wrap(models.ErrInvalidTransition, "завершённое интервью нельзя отменить")
			}
			updMap := map[string]interface{}{
				"status": models.InterviewStatusCancelled,
			}
			if err = store.Update(id, updMap); err != nil {
				return errors.Wrap(err, "ошибка отмены интервью")
			}
			return nil
		})
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("интервью занято другой операцией")
	}
	i.getLogger(id).Info("интервью отменено")
	return nil
}

// Complete завершает интервью. Оценка обязательна и записывается
// в той же транзакции: интервью не может стать completed без неё.
func (i impl) Complete(id string, evaluation interviewapimodels.EvaluationData) error {
	if err := evaluation.Validate(); err != nil {
		return err
	}
	ok, err := lock.WithDelay(context.Background(), "interview:"+id, 5*time.Second, func() error {
		return db.DB.Transaction(func(tx *gorm.DB) error {
			store := interviewstore.NewInstance(tx)
			rec, err := store.GetByID(id)
			if err != nil {
				return errors.Wrap(err, "ошибка получения интервью")
			}
			if rec == nil {
				return models.ErrNotFound
			}
			if rec.Status.IsTerminal() {
				return errors.Wrapf(models.ErrInvalidTransition, "интервью уже в статусе %v", rec.Status)
			}
			updMap := map[string]interface{}{
				"status": models.InterviewStatusCompleted,
			}
			if err = store.Update(id, updMap); err != nil {
				return errors.Wrap(err, "ошибка завершения интервью")
			}
			return i.appendEvaluation(store, id, evaluation)
		})
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("интервью занято другой операцией")
	}
	i.getLogger(id).Info("интервью завершено с оценкой")
	return nil
}

// Evaluate добавляет новую версию оценки завершённого интервью.
// Прежние версии не перезаписываются, история интервью сохраняется.
func (i impl) Evaluate(id string, evaluation interviewapimodels.EvaluationData) error {
	if err := evaluation.Validate(); err != nil {
		return err
	}
	ok, err := lock.WithDelay(context.Background(), "interview:"+id, 5*time.Second, func() error {
		return db.DB.Transaction(func(tx *gorm.DB) error {
			store := interviewstore.NewInstance(tx)
			rec, err := store.GetByID(id)
			if err != nil {
				return errors.Wrap(err, "ошибка получения интервью")
			}
			if rec == nil {
				return models.ErrNotFound
			}
			if rec.Status != models.InterviewStatusCompleted {
				return errors.Wrap(models.ErrInvalidTransition, "оценка возможна только по завершённому интервью")
			}
			return i.appendEvaluation(store, id, evaluation)
		})
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("интервью занято другой операцией")
	}
	i.getLogger(id).Info("добавлена версия оценки интервью")
	return nil
}

func (i impl) appendEvaluation(store interviewstore.Provider, interviewID string, evaluation interviewapimodels.EvaluationData) error {
	version, err := store.LastEvaluationVersion(interviewID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения версии оценки")
	}
	rec := dbmodels.Evaluation{
		InterviewID:   interviewID,
		Version:       version + 1,
		Technical:     evaluation.Technical,
		Communication: evaluation.Communication,
		Teamwork:      evaluation.Teamwork,
		Overall:       evaluation.Overall,
		Feedback:      evaluation.Feedback,
		Result:        evaluation.Result,
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if _, err := store.CreateEvaluation(rec); err != nil {
		return errors.Wrap(err, "ошибка сохранения оценки")
	}
	return nil
}

// Calendar - производная проекция: интервью, сгруппированные по дате.
// Отдельного хранилища у календаря нет, он собирается из снимка коллекции.
func (i impl) Calendar() ([]interviewapimodels.CalendarDay, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка интервью")
	}
	byDate := map[string][]interviewapimodels.InterviewView{}
	for _, rec := range list {
		key := rec.Date.Format("02.01.2006")
		byDate[key] = append(byDate[key], interviewapimodels.Convert(rec))
	}
	days := make([]interviewapimodels.CalendarDay, 0, len(byDate))
	for date, interviews := range byDate {
		days = append(days, interviewapimodels.CalendarDay{
			Date:       date,
			Interviews: interviews,
		})
	}
	sort.Slice(days, func(a, b int) bool {
		dayA, _ := helpers.ParseDate(days[a].Date)
		dayB, _ := helpers.ParseDate(days[b].Date)
		return dayA.Before(dayB)
	})
	return days, nil
}
