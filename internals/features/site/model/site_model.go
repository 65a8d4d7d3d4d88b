package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// DefaultSettingsKey is the only key site_settings ever holds.
const DefaultSettingsKey = "default"

type SiteSettingModel struct {
	SiteSettingKey          string         `gorm:"column:site_setting_key;type:varchar(20);primaryKey;default:'default'" json:"site_setting_key"`
	SiteSettingPhoneNumber  *string        `gorm:"column:site_setting_phone_number;type:varchar(30)" json:"site_setting_phone_number,omitempty"`
	SiteSettingMobileNumber *string        `gorm:"column:site_setting_mobile_number;type:varchar(30)" json:"site_setting_mobile_number,omitempty"`
	SiteSettingStartTime    datatypes.Time `gorm:"column:site_setting_start_time;type:time;not null" json:"site_setting_start_time"`
	SiteSettingEndTime      datatypes.Time `gorm:"column:site_setting_end_time;type:time;not null" json:"site_setting_end_time"`
	SiteSettingLogoURL      *string        `gorm:"column:site_setting_logo_url;type:text" json:"site_setting_logo_url,omitempty"`

	SiteSettingAboutTitle       string  `gorm:"column:site_setting_about_title;type:varchar(255);not null;default:''" json:"site_setting_about_title"`
	SiteSettingAboutDescription string  `gorm:"column:site_setting_about_description;type:text;not null;default:''" json:"site_setting_about_description"`
	SiteSettingAboutVideoURL    *string `gorm:"column:site_setting_about_video_url;type:text" json:"site_setting_about_video_url,omitempty"`
	SiteSettingAboutImageURL    *string `gorm:"column:site_setting_about_image_url;type:text" json:"site_setting_about_image_url,omitempty"`

	SiteSettingCreatedAt time.Time `gorm:"column:site_setting_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"site_setting_created_at"`
	SiteSettingUpdatedAt time.Time `gorm:"column:site_setting_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"site_setting_updated_at"`
}

func (SiteSettingModel) TableName() string { return "site_settings" }

type SocialLinkModel struct {
	SocialLinkID   uuid.UUID `gorm:"column:social_link_id;type:uuid;default:gen_random_uuid();primaryKey" json:"social_link_id"`
	SocialLinkURL  string    `gorm:"column:social_link_url;type:text;not null" json:"social_link_url"`
	SocialLinkIcon string    `gorm:"column:social_link_icon;type:varchar(50);not null" json:"social_link_icon"`

	SocialLinkCreatedAt time.Time `gorm:"column:social_link_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"social_link_created_at"`
}

func (SocialLinkModel) TableName() string { return "social_links" }

/* =========================================================
   PAGES
========================================================= */

type BlogModel struct {
	BlogID          uuid.UUID `gorm:"column:blog_id;type:uuid;default:gen_random_uuid();primaryKey" json:"blog_id"`
	BlogTitle       string    `gorm:"column:blog_title;type:varchar(255);not null" json:"blog_title"`
	BlogSlug        string    `gorm:"column:blog_slug;type:varchar(120);not null;uniqueIndex:uq_blogs_slug" json:"blog_slug"`
	BlogImageURL    *string   `gorm:"column:blog_image_url;type:text" json:"blog_image_url,omitempty"`
	BlogDate        time.Time `gorm:"column:blog_date;type:timestamptz;not null;index" json:"blog_date"`
	BlogDescription string    `gorm:"column:blog_description;type:text;not null" json:"blog_description"`

	BlogCreatedAt time.Time `gorm:"column:blog_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"blog_created_at"`
	BlogUpdatedAt time.Time `gorm:"column:blog_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"blog_updated_at"`
}

func (BlogModel) TableName() string { return "blogs" }

type CoursePageModel struct {
	CoursePageID                 uuid.UUID      `gorm:"column:course_page_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_page_id"`
	CoursePageCourseName         string         `gorm:"column:course_page_course_name;type:varchar(255);not null;uniqueIndex:uq_course_pages_name" json:"course_page_course_name"`
	CoursePageSlug               string         `gorm:"column:course_page_slug;type:varchar(120);not null;uniqueIndex:uq_course_pages_slug" json:"course_page_slug"`
	CoursePageTitle              string         `gorm:"column:course_page_title;type:varchar(255);not null" json:"course_page_title"`
	CoursePageDetail             string         `gorm:"column:course_page_detail;type:text;not null" json:"course_page_detail"`
	CoursePageDuration           string         `gorm:"column:course_page_duration;type:varchar(255);not null" json:"course_page_duration"`
	CoursePageImageURL           *string        `gorm:"column:course_page_image_url;type:text" json:"course_page_image_url,omitempty"`
	CoursePageElectiveSubjects   pq.StringArray `gorm:"column:course_page_elective_subjects;type:text[];not null;default:'{}'" json:"course_page_elective_subjects"`
	CoursePageCompulsorySubjects pq.StringArray `gorm:"column:course_page_compulsory_subjects;type:text[];not null;default:'{}'" json:"course_page_compulsory_subjects"`

	CoursePageCreatedAt time.Time `gorm:"column:course_page_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"course_page_created_at"`
	CoursePageUpdatedAt time.Time `gorm:"column:course_page_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"course_page_updated_at"`
}

func (CoursePageModel) TableName() string { return "course_pages" }

type EventModel struct {
	EventID          uuid.UUID      `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string         `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventSlug        string         `gorm:"column:event_slug;type:varchar(120);not null;uniqueIndex:uq_events_slug" json:"event_slug"`
	EventDescription string         `gorm:"column:event_description;type:text;not null" json:"event_description"`
	EventImageURL    *string        `gorm:"column:event_image_url;type:text" json:"event_image_url,omitempty"`
	EventDate        datatypes.Date `gorm:"column:event_date;type:date;not null;index" json:"event_date"`
	EventLocation    *string        `gorm:"column:event_location;type:varchar(255)" json:"event_location,omitempty"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string { return "events" }

/* =========================================================
   GALLERY
========================================================= */

type ImageTypeModel struct {
	ImageTypeID   uuid.UUID `gorm:"column:image_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"image_type_id"`
	ImageTypeName string    `gorm:"column:image_type_name;type:varchar(255);not null;uniqueIndex:uq_image_types_name" json:"image_type_name"`
}

func (ImageTypeModel) TableName() string { return "image_types" }

type GalleryModel struct {
	GalleryID       uuid.UUID `gorm:"column:gallery_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gallery_id"`
	GalleryImageURL string    `gorm:"column:gallery_image_url;type:text;not null" json:"gallery_image_url"`
	GalleryCaption  *string   `gorm:"column:gallery_caption;type:varchar(255)" json:"gallery_caption,omitempty"`

	GalleryCreatedAt time.Time `gorm:"column:gallery_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"gallery_created_at"`

	// kept in gallery_image_types
	GalleryImageTypeIDs []uuid.UUID      `gorm:"-" json:"gallery_image_type_ids"`
	GalleryImageTypes   []ImageTypeModel `gorm:"-" json:"gallery_image_types,omitempty"`
}

func (GalleryModel) TableName() string { return "galleries" }

type GalleryImageTypeModel struct {
	GalleryID   uuid.UUID `gorm:"column:gallery_id;type:uuid;primaryKey" json:"gallery_id"`
	ImageTypeID uuid.UUID `gorm:"column:image_type_id;type:uuid;primaryKey;index" json:"image_type_id"`
}

func (GalleryImageTypeModel) TableName() string { return "gallery_image_types" }

/* =========================================================
   SLIDERS & TEACHERS
========================================================= */

type SliderModel struct {
	SliderID          uuid.UUID `gorm:"column:slider_id;type:uuid;default:gen_random_uuid();primaryKey" json:"slider_id"`
	SliderSlot        int       `gorm:"column:slider_slot;not null;index" json:"slider_slot"`
	SliderHeading     string    `gorm:"column:slider_heading;type:varchar(100);not null" json:"slider_heading"`
	SliderSubHeading  string    `gorm:"column:slider_sub_heading;type:varchar(100);not null" json:"slider_sub_heading"`
	SliderDescription string    `gorm:"column:slider_description;type:text;not null" json:"slider_description"`
	SliderImageURL    string    `gorm:"column:slider_image_url;type:text;not null" json:"slider_image_url"`
	SliderImage2URL   *string   `gorm:"column:slider_image2_url;type:text" json:"slider_image2_url,omitempty"`
	SliderShow        bool      `gorm:"column:slider_show;not null;default:true" json:"slider_show"`

	SliderCreatedAt time.Time `gorm:"column:slider_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"slider_created_at"`
}

func (SliderModel) TableName() string { return "sliders" }

type SiteTeacherModel struct {
	SiteTeacherID            uuid.UUID `gorm:"column:site_teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"site_teacher_id"`
	SiteTeacherName          string    `gorm:"column:site_teacher_name;type:varchar(255);not null" json:"site_teacher_name"`
	SiteTeacherImageURL      *string   `gorm:"column:site_teacher_image_url;type:text" json:"site_teacher_image_url,omitempty"`
	SiteTeacherDesignation   *string   `gorm:"column:site_teacher_designation;type:varchar(255)" json:"site_teacher_designation,omitempty"`
	SiteTeacherQualification *string   `gorm:"column:site_teacher_qualification;type:varchar(255)" json:"site_teacher_qualification,omitempty"`
	SiteTeacherDescription   string    `gorm:"column:site_teacher_description;type:text;not null;default:''" json:"site_teacher_description"`

	SiteTeacherCreatedAt time.Time `gorm:"column:site_teacher_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"site_teacher_created_at"`
}

func (SiteTeacherModel) TableName() string { return "site_teachers" }
