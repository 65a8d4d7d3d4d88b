package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AcademicYearModel struct {
	AcademicYearID        uuid.UUID      `gorm:"column:academic_year_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_year_id"`
	AcademicYearName      string         `gorm:"column:academic_year_name;type:varchar(50);not null" json:"academic_year_name"`
	AcademicYearStartDate datatypes.Date `gorm:"column:academic_year_start_date;type:date;not null" json:"academic_year_start_date"`
	AcademicYearEndDate   datatypes.Date `gorm:"column:academic_year_end_date;type:date;not null" json:"academic_year_end_date"`
	AcademicYearIsCurrent bool           `gorm:"column:academic_year_is_current;not null;default:false" json:"academic_year_is_current"`
	AcademicYearCampusID  uuid.UUID      `gorm:"column:academic_year_campus_id;type:uuid;not null;index:idx_academic_years_campus" json:"academic_year_campus_id"`

	AcademicYearCreatedAt time.Time `gorm:"column:academic_year_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time `gorm:"column:academic_year_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"academic_year_updated_at"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

type HolidayModel struct {
	HolidayID             uuid.UUID       `gorm:"column:holiday_id;type:uuid;default:gen_random_uuid();primaryKey" json:"holiday_id"`
	HolidayName           string          `gorm:"column:holiday_name;type:varchar(200);not null" json:"holiday_name"`
	HolidayDate           datatypes.Date  `gorm:"column:holiday_date;type:date;not null;index" json:"holiday_date"`
	HolidayEndDate        *datatypes.Date `gorm:"column:holiday_end_date;type:date" json:"holiday_end_date,omitempty"`
	HolidayDescription    *string         `gorm:"column:holiday_description;type:text" json:"holiday_description,omitempty"`
	HolidayAcademicYearID uuid.UUID       `gorm:"column:holiday_academic_year_id;type:uuid;not null" json:"holiday_academic_year_id"`
	HolidayCampusID       uuid.UUID       `gorm:"column:holiday_campus_id;type:uuid;not null" json:"holiday_campus_id"`

	HolidayCreatedAt time.Time `gorm:"column:holiday_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"holiday_created_at"`
}

func (HolidayModel) TableName() string { return "holidays" }
