package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	fk, cascade := database.FK, database.Cascade
	return database.Schema{
		Models: []any{
			&SiteSettingModel{}, &SocialLinkModel{}, &BlogModel{}, &CoursePageModel{}, &EventModel{},
			&ImageTypeModel{}, &GalleryModel{}, &GalleryImageTypeModel{}, &SliderModel{}, &SiteTeacherModel{},
		},
		ForeignKeys: []database.ForeignKey{
			fk("gallery_image_types", "gallery_id", "galleries", "gallery_id", cascade),
			fk("gallery_image_types", "image_type_id", "image_types", "image_type_id", cascade),
		},
		Statements: []string{
			database.Check("site_settings", "ck_site_settings_key", "site_setting_key = 'default'"),
			database.Check("site_settings", "ck_site_settings_timing", "site_setting_end_time > site_setting_start_time"),
			database.Check("sliders", "ck_sliders_slot", "slider_slot BETWEEN 1 AND 3"),
			database.Check("social_links", "ck_social_links_icon",
				"social_link_icon IN ('fa-facebook','fa-twitter','fa-linkedin','fa-instagram','fa-youtube')"),
		},
	}
}
