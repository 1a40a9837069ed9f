package interviewstore

import (
	"time"

	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (rec *dbmodels.Interview, err error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.Interview, err error)
	ListBlocking(interviewerID string, date time.Time) (list []dbmodels.Interview, err error)
	CreateEvaluation(rec dbmodels.Evaluation) (id string, err error)
	LastEvaluationVersion(interviewID string) (version int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Preload("Candidate").
		Preload("Evaluations").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	updMap["updated_at"] = gorm.Expr("now()")
	tx := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (i impl) List() (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(dbmodels.Interview{}).
		Order("starts_at").
		Preload("Candidate").
		Preload("Evaluations").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListBlocking - интервью интервьюера на дату, занимающие слот
// (scheduled и in-progress). Вызывается внутри транзакции создания,
// чтобы проверка пересечения и вставка были атомарны.
func (i impl) ListBlocking(interviewerID string, date time.Time) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(dbmodels.Interview{}).
		Where("interviewer_id = ?", interviewerID).
		Where("date = ?", date).
		Where("status in ?", []models.InterviewStatus{models.InterviewStatusScheduled, models.InterviewStatusInProgress}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateEvaluation(rec dbmodels.Evaluation) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) LastEvaluationVersion(interviewID string) (version int, err error) {
	var last int
	err = i.db.
		Model(dbmodels.Evaluation{}).
		Select("coalesce(max(version), 0)").
		Where("interview_id = ?", interviewID).
		Scan(&last).
		Error
	if err != nil {
		return 0, err
	}
	return last, nil
}
