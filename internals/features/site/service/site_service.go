package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/site/dto"
	"schooloffice_backend/internals/features/site/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
)

/* =========================================================
   SETTINGS
========================================================= */

// Settings returns the stored settings, or nil before the first save.
func Settings(ctx context.Context, db *gorm.DB) (*model.SiteSettingModel, error) {
	var s model.SiteSettingModel
	err := db.WithContext(ctx).Where("site_setting_key = ?", model.DefaultSettingsKey).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load site settings")
	}
	return &s, nil
}

func CheckTiming(s *model.SiteSettingModel) error {
	if s.SiteSettingEndTime <= s.SiteSettingStartTime {
		return apperr.Validation("site_setting_end_time", "closing time must be after opening time")
	}
	return nil
}

// UpsertSettings writes the single settings row. The first save's
// created_at is kept; every other column takes the new values.
func UpsertSettings(ctx context.Context, db *gorm.DB, in dto.SettingsRequest) (*model.SiteSettingModel, error) {
	s := in.ToModel()
	if err := CheckTiming(&s); err != nil {
		return nil, err
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "site_setting_key"}},
		UpdateAll: true,
	}).Create(&s).Error
	if err != nil {
		return nil, errors.Wrap(err, "save site settings")
	}
	return Settings(ctx, db)
}

/* =========================================================
   SLUGS
========================================================= */

// slugFor keeps the stored slug while the source text is unchanged.
func slugFor(ctx context.Context, tx *gorm.DB, q helper.SlugQuery, oldSource, oldSlug, source string) (string, error) {
	if oldSlug != "" && oldSource == source {
		return oldSlug, nil
	}
	return helper.UniqueSlug(ctx, tx, q, source)
}

func AssignBlogSlug(ctx context.Context, tx *gorm.DB, old, m *model.BlogModel) error {
	q := helper.SlugQuery{Table: "blogs", Column: "blog_slug", KeyColumn: "blog_id"}
	var src, slug string
	if old != nil {
		q.ExceptKey, src, slug = old.BlogID, old.BlogTitle, old.BlogSlug
	}
	s, err := slugFor(ctx, tx, q, src, slug, m.BlogTitle)
	if err != nil {
		return errors.Wrap(err, "blog slug")
	}
	m.BlogSlug = s
	return nil
}

func AssignEventSlug(ctx context.Context, tx *gorm.DB, old, m *model.EventModel) error {
	q := helper.SlugQuery{Table: "events", Column: "event_slug", KeyColumn: "event_id"}
	var src, slug string
	if old != nil {
		q.ExceptKey, src, slug = old.EventID, old.EventTitle, old.EventSlug
	}
	s, err := slugFor(ctx, tx, q, src, slug, m.EventTitle)
	if err != nil {
		return errors.Wrap(err, "event slug")
	}
	m.EventSlug = s
	return nil
}

func AssignCourseSlug(ctx context.Context, tx *gorm.DB, old, m *model.CoursePageModel) error {
	q := helper.SlugQuery{Table: "course_pages", Column: "course_page_slug", KeyColumn: "course_page_id"}
	var src, slug string
	if old != nil {
		q.ExceptKey, src, slug = old.CoursePageID, old.CoursePageCourseName, old.CoursePageSlug
	}
	s, err := slugFor(ctx, tx, q, src, slug, m.CoursePageCourseName)
	if err != nil {
		return errors.Wrap(err, "course slug")
	}
	m.CoursePageSlug = s
	return nil
}

/* =========================================================
   GALLERY
========================================================= */

// CheckImageTypes rejects ids that name no image type.
func CheckImageTypes(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var n int64
	if err := tx.Model(&model.ImageTypeModel{}).Where("image_type_id IN ?", ids).Count(&n).Error; err != nil {
		return err
	}
	if int(n) != len(ids) {
		return apperr.Validation("gallery_image_type_ids", "unknown image type")
	}
	return nil
}

// SaveGalleryTypes replaces the image type links of m.
func SaveGalleryTypes(tx *gorm.DB, m *model.GalleryModel) error {
	if err := tx.Where("gallery_id = ?", m.GalleryID).Delete(&model.GalleryImageTypeModel{}).Error; err != nil {
		return err
	}
	if len(m.GalleryImageTypeIDs) == 0 {
		return nil
	}
	rows := make([]model.GalleryImageTypeModel, len(m.GalleryImageTypeIDs))
	for i, id := range m.GalleryImageTypeIDs {
		rows[i] = model.GalleryImageTypeModel{GalleryID: m.GalleryID, ImageTypeID: id}
	}
	return tx.Create(&rows).Error
}

// DecorateGalleries fills the image types of every item.
func DecorateGalleries(ctx context.Context, db *gorm.DB, items []model.GalleryModel) error {
	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].GalleryID
	}
	var links []struct {
		GalleryID uuid.UUID
		model.ImageTypeModel
	}
	err := db.WithContext(ctx).Table("gallery_image_types AS g").
		Select("g.gallery_id, t.image_type_id, t.image_type_name").
		Joins("JOIN image_types t ON t.image_type_id = g.image_type_id").
		Where("g.gallery_id IN ?", ids).
		Order("t.image_type_name").
		Scan(&links).Error
	if err != nil {
		return errors.Wrap(err, "load gallery image types")
	}
	byGallery := make(map[uuid.UUID][]model.ImageTypeModel, len(items))
	for _, l := range links {
		byGallery[l.GalleryID] = append(byGallery[l.GalleryID], l.ImageTypeModel)
	}
	for i := range items {
		types := byGallery[items[i].GalleryID]
		items[i].GalleryImageTypes = types
		items[i].GalleryImageTypeIDs = make([]uuid.UUID, len(types))
		for j, t := range types {
			items[i].GalleryImageTypeIDs[j] = t.ImageTypeID
		}
	}
	return nil
}

/* =========================================================
   PUBLIC
========================================================= */

// Home gathers settings, social links and the visible sliders by slot.
func Home(ctx context.Context, db *gorm.DB) (*dto.HomeResponse, error) {
	settings, err := Settings(ctx, db)
	if err != nil {
		return nil, err
	}
	out := &dto.HomeResponse{Settings: settings}
	tx := db.WithContext(ctx)
	if err := tx.Order("social_link_created_at").Find(&out.SocialLinks).Error; err != nil {
		return nil, errors.Wrap(err, "load social links")
	}
	if err := tx.Where("slider_show").Order("slider_slot, slider_created_at").Find(&out.Sliders).Error; err != nil {
		return nil, errors.Wrap(err, "load sliders")
	}
	return out, nil
}

// GalleryPage lists images newest first, optionally limited to one image type.
func GalleryPage(ctx context.Context, db *gorm.DB, typeID *uuid.UUID, offset, limit int) ([]model.GalleryModel, int64, error) {
	q := db.WithContext(ctx).Model(&model.GalleryModel{})
	if typeID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM gallery_image_types g WHERE g.gallery_id = galleries.gallery_id AND g.image_type_id = ?)", *typeID)
	}
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count gallery")
	}
	items := make([]model.GalleryModel, 0, limit)
	if err := q.Order("gallery_created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list gallery")
	}
	if len(items) > 0 {
		if err := DecorateGalleries(ctx, db, items); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}
