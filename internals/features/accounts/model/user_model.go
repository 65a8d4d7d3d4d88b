package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	/* ===== Credentials ===== */
	UserName         string  `gorm:"column:user_name;type:varchar(150);not null;uniqueIndex:uq_users_user_name" json:"user_name"`
	UserEmail        *string `gorm:"column:user_email;type:varchar(254);uniqueIndex:uq_users_email" json:"user_email,omitempty"`
	UserPasswordHash string  `gorm:"column:user_password_hash;type:text;not null" json:"-"`
	UserGoogleID     *string `gorm:"column:user_google_id;type:varchar(64);uniqueIndex:uq_users_google_id" json:"-"`

	/* ===== Profile ===== */
	UserFirstName      string          `gorm:"column:user_first_name;type:varchar(150);not null;default:''" json:"user_first_name"`
	UserLastName       string          `gorm:"column:user_last_name;type:varchar(150);not null;default:''" json:"user_last_name"`
	UserRole           string          `gorm:"column:user_role;type:varchar(20);not null;default:'STUDENT';index:idx_users_role" json:"user_role"`
	UserPhone          *string         `gorm:"column:user_phone;type:varchar(20)" json:"user_phone,omitempty"`
	UserProfilePicture *string         `gorm:"column:user_profile_picture;type:text" json:"user_profile_picture,omitempty"`
	UserDateOfBirth    *datatypes.Date `gorm:"column:user_date_of_birth;type:date" json:"user_date_of_birth,omitempty"`
	UserGender         *string         `gorm:"column:user_gender;type:varchar(1)" json:"user_gender,omitempty"`

	/* ===== Address ===== */
	UserAddress    *string `gorm:"column:user_address;type:text" json:"user_address,omitempty"`
	UserCity       *string `gorm:"column:user_city;type:varchar(100)" json:"user_city,omitempty"`
	UserState      *string `gorm:"column:user_state;type:varchar(100)" json:"user_state,omitempty"`
	UserCountry    *string `gorm:"column:user_country;type:varchar(100)" json:"user_country,omitempty"`
	UserPostalCode *string `gorm:"column:user_postal_code;type:varchar(20)" json:"user_postal_code,omitempty"`

	/* ===== Status & audit ===== */
	UserIsActive    bool       `gorm:"column:user_is_active;not null;default:true;index:idx_users_active" json:"user_is_active"`
	UserLastLoginAt *time.Time `gorm:"column:user_last_login_at;type:timestamptz" json:"user_last_login_at,omitempty"`
	UserCreatedAt   time.Time  `gorm:"column:user_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"user_created_at"`
	UserUpdatedAt   time.Time  `gorm:"column:user_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

// BeforeSave normalises identity columns so the unique indexes compare like with like.
func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.UserName = strings.TrimSpace(u.UserName)
	if u.UserEmail != nil {
		e := strings.ToLower(strings.TrimSpace(*u.UserEmail))
		if e == "" {
			u.UserEmail = nil
		} else {
			u.UserEmail = &e
		}
	}
	u.UserRole = strings.ToUpper(strings.TrimSpace(u.UserRole))
	return nil
}

func (u UserModel) FullName() string {
	full := strings.TrimSpace(u.UserFirstName + " " + u.UserLastName)
	if full == "" {
		return u.UserName
	}
	return full
}
