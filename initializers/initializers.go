package initializers

import (
	"context"

	"carelink-backend/config"
	"carelink-backend/fiberlog"
	"carelink-backend/lib/notification"
	"carelink-backend/lib/principal"
	shifthandler "carelink-backend/lib/shift"
	timesheethandler "carelink-backend/lib/timesheet"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	principal.NewHandler()
	notification.NewHandler()
	shifthandler.NewHandler()
	timesheethandler.NewHandler()
}
