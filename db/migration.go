package db

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.Evaluation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Evaluation")
	}
	if err := DB.AutoMigrate(&dbmodels.Referral{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Referral")
	}
	if err := DB.AutoMigrate(&dbmodels.StatusLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры StatusLog")
	}
	if err := DB.AutoMigrate(&dbmodels.DepartmentPlan{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры DepartmentPlan")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
