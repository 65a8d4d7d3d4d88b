package dto

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/features/accounts/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

/* =========================================================
   USER (one form for create and edit)
========================================================= */

type UserRequest struct {
	UserName     string  `json:"user_name"     validate:"notblank,max=150"`
	UserEmail    *string `json:"user_email"    validate:"omitempty,email,max=254"`
	UserPassword *string `json:"user_password" validate:"omitempty,min=8,max=72"`

	UserFirstName      string  `json:"user_first_name"      validate:"max=150"`
	UserLastName       string  `json:"user_last_name"       validate:"max=150"`
	UserRole           string  `json:"user_role"            validate:"omitempty,role"`
	UserPhone          *string `json:"user_phone"           validate:"omitempty,max=20"`
	UserProfilePicture *string `json:"user_profile_picture" validate:"omitempty,url"`
	UserDateOfBirth    *string `json:"user_date_of_birth"   validate:"omitempty,datetime=2006-01-02"`
	UserGender         *string `json:"user_gender"          validate:"omitempty,oneof=M F O"`

	UserAddress    *string `json:"user_address"`
	UserCity       *string `json:"user_city"        validate:"omitempty,max=100"`
	UserState      *string `json:"user_state"       validate:"omitempty,max=100"`
	UserCountry    *string `json:"user_country"     validate:"omitempty,max=100"`
	UserPostalCode *string `json:"user_postal_code" validate:"omitempty,max=20"`

	UserIsActive *bool `json:"user_is_active"`
}

// ToModel hashes user_password when present; an empty hash means "keep the
// stored one" on edit and is rejected on create.
func (r UserRequest) ToModel() model.UserModel {
	m := model.UserModel{
		UserName:           strings.TrimSpace(r.UserName),
		UserEmail:          helper.TrimPtr(r.UserEmail),
		UserFirstName:      strings.TrimSpace(r.UserFirstName),
		UserLastName:       strings.TrimSpace(r.UserLastName),
		UserRole:           helper.Upper(r.UserRole),
		UserPhone:          helper.TrimPtr(r.UserPhone),
		UserProfilePicture: helper.TrimPtr(r.UserProfilePicture),
		UserDateOfBirth:    dbtime.ParseDatePtr(r.UserDateOfBirth),
		UserGender:         helper.UpperPtr(r.UserGender),
		UserAddress:        helper.TrimPtr(r.UserAddress),
		UserCity:           helper.TrimPtr(r.UserCity),
		UserState:          helper.TrimPtr(r.UserState),
		UserCountry:        helper.TrimPtr(r.UserCountry),
		UserPostalCode:     helper.TrimPtr(r.UserPostalCode),
		UserIsActive:       true,
	}
	if m.UserRole == "" {
		m.UserRole = constants.RoleStudent
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
	if r.UserPassword != nil && *r.UserPassword != "" {
		if hash, err := HashPassword(*r.UserPassword); err == nil {
			m.UserPasswordHash = hash
		}
	}
	return m
}

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
