package dbmodels

import (
	"hr-pipeline-backend/models"

	"github.com/pkg/errors"
)

// DepartmentPlan - план найма по подразделению, знаменатель метрики
// выполнения плана в аналитике
type DepartmentPlan struct {
	BaseModel
	Department string `gorm:"type:varchar(255);uniqueIndex"`
	Target     int
}

func (d DepartmentPlan) Validate() error {
	if d.Department == "" {
		return errors.Wrap(models.ErrValidation, "не указано подразделение")
	}
	if d.Target <= 0 {
		return errors.Wrap(models.ErrValidation, "план найма должен быть положительным")
	}
	return nil
}
