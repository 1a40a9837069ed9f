package xlsexport

import (
	"bytes"
	"fmt"
	"strings"

	analyticsapimodels "hr-pipeline-backend/models/api/analytics"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
	ExportSources(list []analyticsapimodels.SourceShare) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"ФИО", "Контакты", "Вакансия", "Источник", "Оценка ИИ", "Навыки", "Дата отклика", "Статус"}

var sourceHeaders = []string{"Источник", "Кандидатов", "Доля, %"}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Кандидаты")
	return f.WriteToBuffer()
}

func (i impl) ExportSources(list []analyticsapimodels.SourceShare) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, sourceHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(sourceHeaders), len(list)+1); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
		for _, item := range list {
			row++
			if err = writeColumn(f, sheet, 1, row, item.Source); err != nil {
				return nil, err
			}
			if err = writeColumn(f, sheet, 2, row, item.Count); err != nil {
				return nil, err
			}
			if err = writeColumn(f, sheet, 3, row, item.Rate); err != nil {
				return nil, err
			}
		}
	}
	f.SetSheetName(sheet, "Источники")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Вакансия"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobName()); err != nil {
			return row, err
		}

		// "Источник"
		col++
		if err := writeColumn(f, sheet, col, row, item.Source); err != nil {
			return row, err
		}

		// "Оценка ИИ"
		col++
		if err := writeColumn(f, sheet, col, row, item.AIScore); err != nil {
			return row, err
		}

		// "Навыки"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.Skills, ", ")); err != nil {
			return row, err
		}

		// "Дата отклика"
		col++
		if !item.AppliedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.AppliedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status); err != nil {
			return row, err
		}
	}
	return row, nil
}
