package database

import (
	"github.com/TheGodAnnihilator/TheSchedulePlus/models"
	"gorm.io/gorm"
)

// Migrate creates the schema on startup. Evolution is additive only: tables
// are created if missing and newer columns are appended to existing
// installations; nothing is dropped or rewritten.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Client{},
		&models.ProjectManager{},
		&models.Project{},
		&models.Task{},
		&models.Employ{},
		&models.Subconsultant{},
		&models.TimeLog{},
	)
	if err != nil {
		return err
	}

	// Columns added after the first release; older databases predate them.
	type backfill struct {
		model  interface{}
		column string
	}
	for _, b := range []backfill{
		{&models.Task{}, "hourly_rate"},
		{&models.Task{}, "lumpsum"},
		{&models.Task{}, "notes"},
		{&models.Employ{}, "hourly_rate"},
	} {
		if !db.Migrator().HasColumn(b.model, b.column) {
			if err := db.Migrator().AddColumn(b.model, b.column); err != nil {
				return err
			}
		}
	}

	return nil
}
