package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CampusModel struct {
	CampusID          uuid.UUID  `gorm:"column:campus_id;type:uuid;default:gen_random_uuid();primaryKey" json:"campus_id"`
	CampusName        string     `gorm:"column:campus_name;type:varchar(200);not null" json:"campus_name"`
	CampusCode        string     `gorm:"column:campus_code;type:varchar(20);not null;uniqueIndex:uq_campuses_code" json:"campus_code"`
	CampusPrincipalID *uuid.UUID `gorm:"column:campus_principal_id;type:uuid" json:"campus_principal_id,omitempty"`

	CampusAddress    string  `gorm:"column:campus_address;type:text;not null" json:"campus_address"`
	CampusCity       string  `gorm:"column:campus_city;type:varchar(100);not null" json:"campus_city"`
	CampusState      string  `gorm:"column:campus_state;type:varchar(100);not null" json:"campus_state"`
	CampusCountry    string  `gorm:"column:campus_country;type:varchar(100);not null" json:"campus_country"`
	CampusPostalCode string  `gorm:"column:campus_postal_code;type:varchar(20);not null" json:"campus_postal_code"`
	CampusPhone      string  `gorm:"column:campus_phone;type:varchar(20);not null" json:"campus_phone"`
	CampusEmail      string  `gorm:"column:campus_email;type:varchar(254);not null" json:"campus_email"`
	CampusLogoURL    *string `gorm:"column:campus_logo_url;type:text" json:"campus_logo_url,omitempty"`

	CampusEstablishedDate *datatypes.Date `gorm:"column:campus_established_date;type:date" json:"campus_established_date,omitempty"`
	CampusIsActive        bool            `gorm:"column:campus_is_active;not null;default:true" json:"campus_is_active"`

	CampusCreatedAt time.Time `gorm:"column:campus_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"campus_created_at"`
	CampusUpdatedAt time.Time `gorm:"column:campus_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"campus_updated_at"`
}

func (CampusModel) TableName() string { return "campuses" }
