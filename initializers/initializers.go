package initializers

import (
	"context"

	"hr-pipeline-backend/config"
	"hr-pipeline-backend/fiberlog"
	"hr-pipeline-backend/lib/analytics"
	candidatehandler "hr-pipeline-backend/lib/candidate"
	xlsexport "hr-pipeline-backend/lib/export/xls"
	interviewhandler "hr-pipeline-backend/lib/interview"
	jobhandler "hr-pipeline-backend/lib/job"
	referralhandler "hr-pipeline-backend/lib/referral"
	statuslog "hr-pipeline-backend/lib/status-log"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	statuslog.NewHandler()
	xlsexport.NewHandler()
	jobhandler.NewHandler()
	candidatehandler.NewHandler()
	interviewhandler.NewHandler()
	referralhandler.NewHandler()
	analytics.NewHandler()
}
