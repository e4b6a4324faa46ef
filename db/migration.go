package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "carelink-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.OperatorProfile{}); err != nil {
		return errors.Wrap(err, "failed to migrate OperatorProfile")
	}
	if err := DB.AutoMigrate(&dbmodels.CaregiverProfile{}); err != nil {
		return errors.Wrap(err, "failed to migrate CaregiverProfile")
	}
	if err := DB.AutoMigrate(&dbmodels.Home{}); err != nil {
		return errors.Wrap(err, "failed to migrate Home")
	}
	if err := DB.AutoMigrate(&dbmodels.Shift{}); err != nil {
		return errors.Wrap(err, "failed to migrate Shift")
	}
	if err := DB.AutoMigrate(&dbmodels.Hire{}); err != nil {
		return errors.Wrap(err, "failed to migrate Hire")
	}
	if err := DB.AutoMigrate(&dbmodels.Timesheet{}); err != nil {
		return errors.Wrap(err, "failed to migrate Timesheet")
	}
	if err := DB.AutoMigrate(&dbmodels.Payment{}); err != nil {
		return errors.Wrap(err, "failed to migrate Payment")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "failed to migrate Notification")
	}
	log.Info("migrations finished")
	return nil
}
