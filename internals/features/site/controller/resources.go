package controller

import (
	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/site/dto"
	"schooloffice_backend/internals/features/site/model"
	"schooloffice_backend/internals/features/site/service"
)

const area = constants.AreaSite

func SocialLinkResource() *crud.Resource[model.SocialLinkModel, dto.SocialLinkRequest] {
	return &crud.Resource[model.SocialLinkModel, dto.SocialLinkRequest]{
		Name:    "social link",
		Area:    area,
		OrderBy: "social_link_created_at",
		Filters: []crud.Filter{{Param: "icon", Column: "social_link_icon", Kind: crud.FilterString}},
	}
}

func BlogResource() *crud.Resource[model.BlogModel, dto.BlogRequest] {
	return &crud.Resource[model.BlogModel, dto.BlogRequest]{
		Name:    "blog",
		Area:    area,
		OrderBy: "blog_date DESC",
		Search:  []string{"blogs.blog_title"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.BlogModel) error {
			return service.AssignBlogSlug(w.Ctx, w.Tx, old, m)
		},
	}
}

func CoursePageResource() *crud.Resource[model.CoursePageModel, dto.CoursePageRequest] {
	return &crud.Resource[model.CoursePageModel, dto.CoursePageRequest]{
		Name:    "course page",
		Area:    area,
		OrderBy: "course_page_course_name",
		Search:  []string{"course_pages.course_page_course_name", "course_pages.course_page_title"},
		Unique: []crud.Unique{{
			Field: "course_page_course_name", Columns: []string{"course_page_course_name"},
			Message: "a course page with this name already exists",
		}},
		BeforeWrite: func(w crud.WriteContext, old, m *model.CoursePageModel) error {
			return service.AssignCourseSlug(w.Ctx, w.Tx, old, m)
		},
	}
}

func EventResource() *crud.Resource[model.EventModel, dto.EventRequest] {
	return &crud.Resource[model.EventModel, dto.EventRequest]{
		Name:    "event",
		Area:    area,
		OrderBy: "event_date DESC",
		Search:  []string{"events.event_title", "events.event_location"},
		Filters: []crud.Filter{{Param: "date", Column: "event_date", Kind: crud.FilterDate}},
		BeforeWrite: func(w crud.WriteContext, old, m *model.EventModel) error {
			return service.AssignEventSlug(w.Ctx, w.Tx, old, m)
		},
	}
}

func ImageTypeResource() *crud.Resource[model.ImageTypeModel, dto.ImageTypeRequest] {
	return &crud.Resource[model.ImageTypeModel, dto.ImageTypeRequest]{
		Name:    "image type",
		Area:    area,
		OrderBy: "image_type_name",
		Search:  []string{"image_types.image_type_name"},
		Unique: []crud.Unique{{
			Field: "image_type_name", Columns: []string{"image_type_name"},
			Message: "this image type already exists",
		}},
	}
}

func GalleryResource() *crud.Resource[model.GalleryModel, dto.GalleryRequest] {
	return &crud.Resource[model.GalleryModel, dto.GalleryRequest]{
		Name:    "gallery image",
		Area:    area,
		OrderBy: "gallery_created_at DESC",
		Search:  []string{"galleries.gallery_caption"},
		BeforeWrite: func(w crud.WriteContext, _, m *model.GalleryModel) error {
			return service.CheckImageTypes(w.Tx, m.GalleryImageTypeIDs)
		},
		AfterWrite: func(w crud.WriteContext, m *model.GalleryModel) error {
			return service.SaveGalleryTypes(w.Tx, m)
		},
		Decorate: service.DecorateGalleries,
	}
}

func SliderResource() *crud.Resource[model.SliderModel, dto.SliderRequest] {
	return &crud.Resource[model.SliderModel, dto.SliderRequest]{
		Name:    "slider",
		Area:    area,
		OrderBy: "slider_slot, slider_created_at",
		Filters: []crud.Filter{
			{Param: "slot", Column: "slider_slot", Kind: crud.FilterInt},
			{Param: "show", Column: "slider_show", Kind: crud.FilterBool},
		},
	}
}

func SiteTeacherResource() *crud.Resource[model.SiteTeacherModel, dto.SiteTeacherRequest] {
	return &crud.Resource[model.SiteTeacherModel, dto.SiteTeacherRequest]{
		Name:    "teacher profile",
		Area:    area,
		OrderBy: "site_teacher_name",
		Search:  []string{"site_teachers.site_teacher_name", "site_teachers.site_teacher_designation"},
	}
}
