//go:build integration

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/features/site/dto"
	"schooloffice_backend/internals/features/site/model"
	"schooloffice_backend/internals/features/site/service"
	"schooloffice_backend/internals/testing/testdb"
)

func strp(s string) *string { return &s }

func TestUpsertSettings_SecondSaveOverwritesSingleRow(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "site_settings")
	ctx := context.Background()

	first, err := service.UpsertSettings(ctx, db, dto.SettingsRequest{
		PhoneNumber: strp("021-111"), StartTime: "08:00", EndTime: "14:00",
		AboutTitle: "About us", AboutDescription: "First draft",
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.False(t, first.SiteSettingCreatedAt.IsZero())

	second, err := service.UpsertSettings(ctx, db, dto.SettingsRequest{
		MobileNumber: strp("0300-222"), StartTime: "07:30", EndTime: "13:30",
		AboutTitle: "Who we are", AboutDescription: "Final copy",
	})
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&model.SiteSettingModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	stored, err := service.Settings(ctx, db)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, model.DefaultSettingsKey, stored.SiteSettingKey)
	assert.Equal(t, "Who we are", stored.SiteSettingAboutTitle)
	assert.Equal(t, "Final copy", stored.SiteSettingAboutDescription)
	assert.Nil(t, stored.SiteSettingPhoneNumber)
	require.NotNil(t, stored.SiteSettingMobileNumber)
	assert.Equal(t, "0300-222", *stored.SiteSettingMobileNumber)
	assert.Equal(t, "07:30", stored.SiteSettingStartTime.String()[:5])

	assert.True(t, stored.SiteSettingCreatedAt.Equal(first.SiteSettingCreatedAt), "created_at moved on upsert")
	assert.True(t, second.SiteSettingCreatedAt.Equal(first.SiteSettingCreatedAt))
	assert.False(t, stored.SiteSettingUpdatedAt.Before(first.SiteSettingUpdatedAt))
}
