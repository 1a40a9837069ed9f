package candidatestore

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Candidate, err error)
	CountStatuses(jobID string) (counts map[models.CandidateStatus]int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Preload("Job").
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
		Model(&dbmodels.Candidate{}).
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

// Delete удаляет кандидата; связанные интервью и рекомендации
// сохраняются с осиротевшей ссылкой ради истории
func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Candidate{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List возвращает снимок коллекции в порядке подачи откликов
func (i impl) List() (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Model(dbmodels.Candidate{}).
		Order("applied_at").
		Preload("Job").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

type statusCount struct {
	Status models.CandidateStatus
	Total  int
}

// CountStatuses - количество кандидатов вакансии по статусам.
// Счётчики вакансии всегда выводятся из этих цифр, на записи вакансии
// ничего не кешируется.
func (i impl) CountStatuses(jobID string) (map[models.CandidateStatus]int, error) {
	rows := []statusCount{}
	err := i.db.
		Model(dbmodels.Candidate{}).
		Select("status, count(*) as total").
		Where("job_id = ?", jobID).
		Group("status").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.CandidateStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
