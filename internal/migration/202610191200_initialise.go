package migration

import (
	"github.com/PayRam/go-search/models"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

var Initialise = &gormigrate.Migration{
	ID: "202610191200-gs-members",
	Migrate: func(db *gorm.DB) error {
		return db.AutoMigrate(&models.Member{})
	},
	Rollback: func(db *gorm.DB) error {
		return db.Migrator().DropTable(&models.Member{})
	},
}
