package dbmodels

import "hr-pipeline-backend/models"

// StatusLog - журнал смены статусов кандидатов и вакансий.
// Записи только добавляются, правка и удаление не предусмотрены.
type StatusLog struct {
	BaseModel
	EntityType models.EntityType `gorm:"type:varchar(50);index:idx_status_log_entity"`
	EntityID   string            `gorm:"type:varchar(36);index:idx_status_log_entity"`
	OldStatus  string            `gorm:"type:varchar(50)"`
	NewStatus  string            `gorm:"type:varchar(50)"`
}
