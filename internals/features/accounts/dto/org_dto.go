package dto

import (
	"strings"

	"github.com/google/uuid"

	"schooloffice_backend/internals/features/accounts/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

/* ===================== CAMPUS ===================== */

type CampusRequest struct {
	CampusName            string     `json:"campus_name"        validate:"notblank,max=200"`
	CampusCode            string     `json:"campus_code"        validate:"notblank,max=20"`
	CampusPrincipalID     *uuid.UUID `json:"campus_principal_id"`
	CampusAddress         string     `json:"campus_address"     validate:"notblank"`
	CampusCity            string     `json:"campus_city"        validate:"notblank,max=100"`
	CampusState           string     `json:"campus_state"       validate:"notblank,max=100"`
	CampusCountry         string     `json:"campus_country"     validate:"notblank,max=100"`
	CampusPostalCode      string     `json:"campus_postal_code" validate:"notblank,max=20"`
	CampusPhone           string     `json:"campus_phone"       validate:"notblank,max=20"`
	CampusEmail           string     `json:"campus_email"       validate:"required,email"`
	CampusLogoURL         *string    `json:"campus_logo_url"    validate:"omitempty,url"`
	CampusEstablishedDate *string    `json:"campus_established_date" validate:"omitempty,datetime=2006-01-02"`
	CampusIsActive        *bool      `json:"campus_is_active"`
}

func (r CampusRequest) ToModel() model.CampusModel {
	m := model.CampusModel{
		CampusName:            strings.TrimSpace(r.CampusName),
		CampusCode:            helper.Upper(r.CampusCode),
		CampusPrincipalID:     helper.UUIDPtr(r.CampusPrincipalID),
		CampusAddress:         strings.TrimSpace(r.CampusAddress),
		CampusCity:            strings.TrimSpace(r.CampusCity),
		CampusState:           strings.TrimSpace(r.CampusState),
		CampusCountry:         strings.TrimSpace(r.CampusCountry),
		CampusPostalCode:      strings.TrimSpace(r.CampusPostalCode),
		CampusPhone:           strings.TrimSpace(r.CampusPhone),
		CampusEmail:           strings.ToLower(strings.TrimSpace(r.CampusEmail)),
		CampusLogoURL:         helper.TrimPtr(r.CampusLogoURL),
		CampusEstablishedDate: dbtime.ParseDatePtr(r.CampusEstablishedDate),
		CampusIsActive:        true,
	}
	if r.CampusIsActive != nil {
		m.CampusIsActive = *r.CampusIsActive
	}
	return m
}

/* ===================== ACADEMIC YEAR ===================== */

type AcademicYearRequest struct {
	AcademicYearName      string    `json:"academic_year_name"       validate:"notblank,max=50"`
	AcademicYearStartDate string    `json:"academic_year_start_date" validate:"required,datetime=2006-01-02"`
	AcademicYearEndDate   string    `json:"academic_year_end_date"   validate:"required,datetime=2006-01-02"`
	AcademicYearIsCurrent bool      `json:"academic_year_is_current"`
	AcademicYearCampusID  uuid.UUID `json:"academic_year_campus_id"  validate:"required"`
}

func (r AcademicYearRequest) ToModel() model.AcademicYearModel {
	return model.AcademicYearModel{
		AcademicYearName:      strings.TrimSpace(r.AcademicYearName),
		AcademicYearStartDate: dbtime.ParseDate(r.AcademicYearStartDate),
		AcademicYearEndDate:   dbtime.ParseDate(r.AcademicYearEndDate),
		AcademicYearIsCurrent: r.AcademicYearIsCurrent,
		AcademicYearCampusID:  r.AcademicYearCampusID,
	}
}

/* ===================== HOLIDAY ===================== */

type HolidayRequest struct {
	HolidayName           string    `json:"holiday_name"             validate:"notblank,max=200"`
	HolidayDate           string    `json:"holiday_date"             validate:"required,datetime=2006-01-02"`
	HolidayEndDate        *string   `json:"holiday_end_date"         validate:"omitempty,datetime=2006-01-02"`
	HolidayDescription    *string   `json:"holiday_description"`
	HolidayAcademicYearID uuid.UUID `json:"holiday_academic_year_id" validate:"required"`
	HolidayCampusID       uuid.UUID `json:"holiday_campus_id"        validate:"required"`
}

func (r HolidayRequest) ToModel() model.HolidayModel {
	return model.HolidayModel{
		HolidayName:           strings.TrimSpace(r.HolidayName),
		HolidayDate:           dbtime.ParseDate(r.HolidayDate),
		HolidayEndDate:        dbtime.ParseDatePtr(r.HolidayEndDate),
		HolidayDescription:    helper.TrimPtr(r.HolidayDescription),
		HolidayAcademicYearID: r.HolidayAcademicYearID,
		HolidayCampusID:       r.HolidayCampusID,
	}
}
