package statuslog

import (
	"hr-pipeline-backend/config"
	"hr-pipeline-backend/db"
	statuslogstore "hr-pipeline-backend/lib/status-log/store"
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Журнал смены статусов. Записи добавляются в той же транзакции,
// что и сам переход, и никогда не переписываются.

type Provider interface {
	Save(entityType models.EntityType, entityID, oldStatus, newStatus string)
	List(entityType models.EntityType, entityID string) ([]dbmodels.StatusLog, error)
	ListAll(limit int) ([]dbmodels.StatusLog, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: statuslogstore.NewInstance(db.DB),
	}
}

// NewTxHandler - журнал в рамках открытой транзакции перехода
func NewTxHandler(tx *gorm.DB) Provider {
	return impl{
		store: statuslogstore.NewInstance(tx),
	}
}

type impl struct {
	store statuslogstore.Provider
}

func (i impl) Save(entityType models.EntityType, entityID, oldStatus, newStatus string) {
	rec := dbmodels.StatusLog{
		EntityType: entityType,
		EntityID:   entityID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).
			WithField("entity_type", entityType).
			WithField("entity_id", entityID).
			Error("ошибка сохранения записи журнала статусов")
	}
}

func (i impl) List(entityType models.EntityType, entityID string) ([]dbmodels.StatusLog, error) {
	return i.store.List(entityType, entityID)
}

func (i impl) ListAll(limit int) ([]dbmodels.StatusLog, error) {
	if limit <= 0 || limit > 500 {
		limit = config.Conf.Analytics.RecordsLimit
	}
	return i.store.ListAll(limit)
}
