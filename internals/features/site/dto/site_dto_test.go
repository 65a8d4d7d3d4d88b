package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"schooloffice_backend/internals/features/site/model"
	helper "schooloffice_backend/internals/helpers"
)

func TestSettingsRequest_ToModel(t *testing.T) {
	m := SettingsRequest{StartTime: "07:30", EndTime: "13:45", AboutTitle: "  About us "}.ToModel()
	assert.Equal(t, model.DefaultSettingsKey, m.SiteSettingKey)
	assert.Equal(t, datatypes.NewTime(7, 30, 0, 0), m.SiteSettingStartTime)
	assert.Equal(t, datatypes.NewTime(13, 45, 0, 0), m.SiteSettingEndTime)
	assert.Equal(t, "About us", m.SiteSettingAboutTitle)
}

func TestCoursePageRequest_SubjectLists(t *testing.T) {
	m := CoursePageRequest{
		CoursePageCourseName:       "Science",
		CoursePageElectiveSubjects: []string{" Biology", "biology", "Computer", ""},
	}.ToModel()
	assert.Equal(t, []string{"Biology", "Computer"}, []string(m.CoursePageElectiveSubjects))
	assert.NotNil(t, m.CoursePageCompulsorySubjects)
	assert.Empty(t, m.CoursePageCompulsorySubjects)
}

func TestGalleryRequest_DedupesTypes(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	m := GalleryRequest{GalleryImageURL: "/media/g/1.webp", GalleryImageTypeIDs: []uuid.UUID{a, b, a}}.ToModel()
	assert.Equal(t, []uuid.UUID{a, b}, m.GalleryImageTypeIDs)
}

func TestSiteRequests_Validation(t *testing.T) {
	v := helper.NewValidator()

	errs := v.Struct(SocialLinkRequest{SocialLinkURL: "not a url", SocialLinkIcon: "fa-tiktok"})
	assert.Contains(t, errs, "social_link_url")
	assert.Contains(t, errs, "social_link_icon")

	errs = v.Struct(SliderRequest{SliderSlot: 4, SliderHeading: "h", SliderSubHeading: "s", SliderDescription: "d", SliderImageURL: "x"})
	assert.Contains(t, errs, "slider_slot")
	assert.Len(t, errs, 1)

	errs = v.Struct(SettingsRequest{StartTime: "8am", EndTime: "14:00"})
	assert.Contains(t, errs, "site_setting_start_time")
}
