package planstore

import (
	dbmodels "hr-pipeline-backend/models/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Upsert(rec dbmodels.DepartmentPlan) error
	List() (list []dbmodels.DepartmentPlan, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Upsert(rec dbmodels.DepartmentPlan) error {
	return i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "department"}},
			DoUpdates: clause.AssignmentColumns([]string{"target", "updated_at"}),
		}).
		Create(&rec).
		Error
}

func (i impl) List() (list []dbmodels.DepartmentPlan, err error) {
	list = []dbmodels.DepartmentPlan{}
	err = i.db.
		Model(dbmodels.DepartmentPlan{}).
		Order("department").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
