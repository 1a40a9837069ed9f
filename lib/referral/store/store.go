package referralstore

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Referral) (id string, err error)
	GetByID(id string) (rec *dbmodels.Referral, err error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.Referral, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Referral) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Referral, error) {
	rec := dbmodels.Referral{}
	err := i.db.
		Model(&dbmodels.Referral{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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
		Model(&dbmodels.Referral{}).
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

func (i impl) List() (list []dbmodels.Referral, err error) {
	list = []dbmodels.Referral{}
	err = i.db.
		Model(dbmodels.Referral{}).
		Order("submitted_at").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
