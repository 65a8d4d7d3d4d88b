package site

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/site/model"
)

// SeedSettings creates the settings row with school hours 08:00-14:00 when missing.
func SeedSettings(db *gorm.DB) {
	s := model.SiteSettingModel{
		SiteSettingKey:        model.DefaultSettingsKey,
		SiteSettingStartTime:  datatypes.NewTime(8, 0, 0, 0),
		SiteSettingEndTime:    datatypes.NewTime(14, 0, 0, 0),
		SiteSettingAboutTitle: "About our school",
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s)
	if res.Error != nil {
		log.Printf("[ERROR] seed site settings: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Println("[INFO] default site settings created")
	}
}
