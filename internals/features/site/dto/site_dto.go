package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"schooloffice_backend/internals/features/site/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

type SettingsRequest struct {
	PhoneNumber      *string `json:"site_setting_phone_number"      validate:"omitempty,max=30"`
	MobileNumber     *string `json:"site_setting_mobile_number"     validate:"omitempty,max=30"`
	StartTime        string  `json:"site_setting_start_time"        validate:"required,datetime=15:04"`
	EndTime          string  `json:"site_setting_end_time"          validate:"required,datetime=15:04"`
	LogoURL          *string `json:"site_setting_logo_url"          validate:"omitempty,url"`
	AboutTitle       string  `json:"site_setting_about_title"       validate:"max=255"`
	AboutDescription string  `json:"site_setting_about_description"`
	AboutVideoURL    *string `json:"site_setting_about_video_url"   validate:"omitempty,url"`
	AboutImageURL    *string `json:"site_setting_about_image_url"   validate:"omitempty,url"`
}

func (r SettingsRequest) ToModel() model.SiteSettingModel {
	return model.SiteSettingModel{
		SiteSettingKey:              model.DefaultSettingsKey,
		SiteSettingPhoneNumber:      helper.TrimPtr(r.PhoneNumber),
		SiteSettingMobileNumber:     helper.TrimPtr(r.MobileNumber),
		SiteSettingStartTime:        dbtime.ParseClock(r.StartTime),
		SiteSettingEndTime:          dbtime.ParseClock(r.EndTime),
		SiteSettingLogoURL:          helper.TrimPtr(r.LogoURL),
		SiteSettingAboutTitle:       strings.TrimSpace(r.AboutTitle),
		SiteSettingAboutDescription: strings.TrimSpace(r.AboutDescription),
		SiteSettingAboutVideoURL:    helper.TrimPtr(r.AboutVideoURL),
		SiteSettingAboutImageURL:    helper.TrimPtr(r.AboutImageURL),
	}
}

type SocialLinkRequest struct {
	SocialLinkURL  string `json:"social_link_url"  validate:"required,url"`
	SocialLinkIcon string `json:"social_link_icon" validate:"required,oneof=fa-facebook fa-twitter fa-linkedin fa-instagram fa-youtube"`
}

func (r SocialLinkRequest) ToModel() model.SocialLinkModel {
	return model.SocialLinkModel{
		SocialLinkURL:  strings.TrimSpace(r.SocialLinkURL),
		SocialLinkIcon: r.SocialLinkIcon,
	}
}

type BlogRequest struct {
	BlogTitle       string     `json:"blog_title"       validate:"notblank,max=255"`
	BlogImageURL    *string    `json:"blog_image_url"   validate:"omitempty,url"`
	BlogDate        *time.Time `json:"blog_date"`
	BlogDescription string     `json:"blog_description" validate:"notblank"`
}

// ToModel leaves the slug empty; it is derived from the title on write.
func (r BlogRequest) ToModel() model.BlogModel {
	at := time.Now()
	if r.BlogDate != nil {
		at = *r.BlogDate
	}
	return model.BlogModel{
		BlogTitle:       strings.TrimSpace(r.BlogTitle),
		BlogImageURL:    helper.TrimPtr(r.BlogImageURL),
		BlogDate:        at,
		BlogDescription: r.BlogDescription,
	}
}

type CoursePageRequest struct {
	CoursePageCourseName         string   `json:"course_page_course_name"         validate:"notblank,max=255"`
	CoursePageTitle              string   `json:"course_page_title"               validate:"notblank,max=255"`
	CoursePageDetail             string   `json:"course_page_detail"              validate:"notblank"`
	CoursePageDuration           string   `json:"course_page_duration"            validate:"notblank,max=255"`
	CoursePageImageURL           *string  `json:"course_page_image_url"           validate:"omitempty,url"`
	CoursePageElectiveSubjects   []string `json:"course_page_elective_subjects"   validate:"dive,notblank,max=100"`
	CoursePageCompulsorySubjects []string `json:"course_page_compulsory_subjects" validate:"dive,notblank,max=100"`
}

func (r CoursePageRequest) ToModel() model.CoursePageModel {
	return model.CoursePageModel{
		CoursePageCourseName:         strings.TrimSpace(r.CoursePageCourseName),
		CoursePageTitle:              strings.TrimSpace(r.CoursePageTitle),
		CoursePageDetail:             r.CoursePageDetail,
		CoursePageDuration:           strings.TrimSpace(r.CoursePageDuration),
		CoursePageImageURL:           helper.TrimPtr(r.CoursePageImageURL),
		CoursePageElectiveSubjects:   subjectList(r.CoursePageElectiveSubjects),
		CoursePageCompulsorySubjects: subjectList(r.CoursePageCompulsorySubjects),
	}
}

// subjectList trims names and drops case-insensitive duplicates, keeping order.
func subjectList(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		k := strings.ToLower(s)
		if s == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}

type EventRequest struct {
	EventTitle       string  `json:"event_title"       validate:"notblank,max=255"`
	EventDescription string  `json:"event_description" validate:"notblank"`
	EventImageURL    *string `json:"event_image_url"   validate:"omitempty,url"`
	EventDate        string  `json:"event_date"        validate:"required,datetime=2006-01-02"`
	EventLocation    *string `json:"event_location"    validate:"omitempty,max=255"`
}

func (r EventRequest) ToModel() model.EventModel {
	return model.EventModel{
		EventTitle:       strings.TrimSpace(r.EventTitle),
		EventDescription: r.EventDescription,
		EventImageURL:    helper.TrimPtr(r.EventImageURL),
		EventDate:        dbtime.ParseDate(r.EventDate),
		EventLocation:    helper.TrimPtr(r.EventLocation),
	}
}

/* =========================================================
   GALLERY
========================================================= */

type ImageTypeRequest struct {
	ImageTypeName string `json:"image_type_name" validate:"notblank,max=255"`
}

func (r ImageTypeRequest) ToModel() model.ImageTypeModel {
	return model.ImageTypeModel{ImageTypeName: strings.TrimSpace(r.ImageTypeName)}
}

type GalleryRequest struct {
	GalleryImageURL     string      `json:"gallery_image_url"      validate:"required"`
	GalleryCaption      *string     `json:"gallery_caption"        validate:"omitempty,max=255"`
	GalleryImageTypeIDs []uuid.UUID `json:"gallery_image_type_ids" validate:"dive,required"`
}

func (r GalleryRequest) ToModel() model.GalleryModel {
	ids := make([]uuid.UUID, 0, len(r.GalleryImageTypeIDs))
	seen := map[uuid.UUID]bool{}
	for _, id := range r.GalleryImageTypeIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return model.GalleryModel{
		GalleryImageURL:     strings.TrimSpace(r.GalleryImageURL),
		GalleryCaption:      helper.TrimPtr(r.GalleryCaption),
		GalleryImageTypeIDs: ids,
	}
}

/* =========================================================
   SLIDERS & TEACHERS
========================================================= */

type SliderRequest struct {
	SliderSlot        int     `json:"slider_slot"        validate:"required,min=1,max=3"`
	SliderHeading     string  `json:"slider_heading"     validate:"notblank,max=100"`
	SliderSubHeading  string  `json:"slider_sub_heading" validate:"notblank,max=100"`
	SliderDescription string  `json:"slider_description" validate:"notblank"`
	SliderImageURL    string  `json:"slider_image_url"   validate:"required"`
	SliderImage2URL   *string `json:"slider_image2_url"`
	SliderShow        *bool   `json:"slider_show"`
}

func (r SliderRequest) ToModel() model.SliderModel {
	return model.SliderModel{
		SliderSlot:        r.SliderSlot,
		SliderHeading:     strings.TrimSpace(r.SliderHeading),
		SliderSubHeading:  strings.TrimSpace(r.SliderSubHeading),
		SliderDescription: strings.TrimSpace(r.SliderDescription),
		SliderImageURL:    strings.TrimSpace(r.SliderImageURL),
		SliderImage2URL:   helper.TrimPtr(r.SliderImage2URL),
		SliderShow:        helper.ValueOr(r.SliderShow, true),
	}
}

type SiteTeacherRequest struct {
	SiteTeacherName          string  `json:"site_teacher_name"          validate:"notblank,max=255"`
	SiteTeacherImageURL      *string `json:"site_teacher_image_url"`
	SiteTeacherDesignation   *string `json:"site_teacher_designation"   validate:"omitempty,max=255"`
	SiteTeacherQualification *string `json:"site_teacher_qualification" validate:"omitempty,max=255"`
	SiteTeacherDescription   string  `json:"site_teacher_description"`
}

func (r SiteTeacherRequest) ToModel() model.SiteTeacherModel {
	return model.SiteTeacherModel{
		SiteTeacherName:          strings.TrimSpace(r.SiteTeacherName),
		SiteTeacherImageURL:      helper.TrimPtr(r.SiteTeacherImageURL),
		SiteTeacherDesignation:   helper.TrimPtr(r.SiteTeacherDesignation),
		SiteTeacherQualification: helper.TrimPtr(r.SiteTeacherQualification),
		SiteTeacherDescription:   r.SiteTeacherDescription,
	}
}

/* =========================================================
   PUBLIC
========================================================= */

// HomeResponse is everything the public landing page renders.
type HomeResponse struct {
	Settings    *model.SiteSettingModel `json:"settings"`
	SocialLinks []model.SocialLinkModel `json:"social_links"`
	Sliders     []model.SliderModel     `json:"sliders"`
}
