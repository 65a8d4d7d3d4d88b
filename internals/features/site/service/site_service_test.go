package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"schooloffice_backend/internals/features/site/dto"
	"schooloffice_backend/internals/features/site/model"
	"schooloffice_backend/internals/helpers/apperr"
)

func TestCheckTiming(t *testing.T) {
	s := &model.SiteSettingModel{
		SiteSettingStartTime: datatypes.NewTime(8, 0, 0, 0),
		SiteSettingEndTime:   datatypes.NewTime(14, 0, 0, 0),
	}
	assert.NoError(t, CheckTiming(s))

	s.SiteSettingEndTime = s.SiteSettingStartTime
	err := CheckTiming(s)
	require.Error(t, err)
	assert.Contains(t, apperr.From(err).Fields, "site_setting_end_time")
}

func TestUpsertSettings_RejectsTimingBeforeTouchingDB(t *testing.T) {
	_, err := UpsertSettings(context.Background(), nil, dto.SettingsRequest{StartTime: "15:00", EndTime: "09:00"})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestAssignBlogSlug_KeepsSlugWhileTitleUnchanged(t *testing.T) {
	old := &model.BlogModel{BlogID: uuid.New(), BlogTitle: "Sports Day", BlogSlug: "sports-day-2"}
	m := &model.BlogModel{BlogTitle: "Sports Day"}
	require.NoError(t, AssignBlogSlug(context.Background(), nil, old, m))
	assert.Equal(t, "sports-day-2", m.BlogSlug)
}

func TestCheckImageTypes_Empty(t *testing.T) {
	assert.NoError(t, CheckImageTypes(nil, nil))
}
