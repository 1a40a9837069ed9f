package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	analyticsapimodels "hr-pipeline-backend/models/api/analytics"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateFunnelReport формирует pdf отчет по воронке найма
func GenerateFunnelReport(report analyticsapimodels.FunnelReport) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateFunnelReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.AddUTF8Font("Arial", "I", "Arial Italic.ttf")
	pdf.AddUTF8Font("Arial", "BI", "Arial Bold Italic.ttf")
	pdf.SetFont("Arial", "", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	_, lineHt := pdf.GetFontSize()
	htmlStr := "<b>Воронка найма</b><br>" +
		fmt.Sprintf("Отчет сформирован %v<br><br>", time.Now().Format("02.01.2006 15:04"))
	for _, stage := range report.Stages {
		htmlStr += fmt.Sprintf("%v: %v (%v%%)<br>", stageTitle(stage.Stage), stage.Count, stage.Rate)
	}
	if report.Warning != "" {
		htmlStr += fmt.Sprintf("<br><i>%v</i><br>", report.Warning)
	}
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, htmlStr)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var stageTitles = map[string]string{
	"applied":     "Отклики",
	"screened":    "Скрининг",
	"interviewed": "Интервью",
	"offered":     "Офферы",
	"hired":       "Наймы",
}

func stageTitle(stage string) string {
	if title, ok := stageTitles[stage]; ok {
		return title
	}
	return stage
}
