package statuslogstore

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.StatusLog) (id string, err error)
	List(entityType models.EntityType, entityID string) (list []dbmodels.StatusLog, err error)
	ListAll(limit int) (list []dbmodels.StatusLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StatusLog) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(entityType models.EntityType, entityID string) (list []dbmodels.StatusLog, err error) {
	list = []dbmodels.StatusLog{}
	err = i.db.
		Model(dbmodels.StatusLog{}).
		Where("entity_type = ?", entityType).
		Where("entity_id = ?", entityID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll(limit int) (list []dbmodels.StatusLog, err error) {
	list = []dbmodels.StatusLog{}
	err = i.db.
		Model(dbmodels.StatusLog{}).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
