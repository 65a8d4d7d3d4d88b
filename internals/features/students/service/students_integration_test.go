//go:build integration

package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	academicModel "schooloffice_backend/internals/features/academics/model"
	hostelModel "schooloffice_backend/internals/features/hostel/model"
	"schooloffice_backend/internals/features/students/model"
	"schooloffice_backend/internals/features/students/service"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
	"schooloffice_backend/internals/testing/testdb"
)

func seedClass(t *testing.T, db *gorm.DB, campus uuid.UUID, name string, level int) (academicModel.ClassModel, academicModel.SectionModel) {
	c := academicModel.ClassModel{ClassName: name, ClassNumericValue: level, ClassCampusID: campus, ClassIsActive: true}
	require.NoError(t, db.Create(&c).Error)
	s := academicModel.SectionModel{SectionName: "A", SectionClassID: c.ClassID, SectionCapacity: 40, SectionIsActive: true}
	require.NoError(t, db.Create(&s).Error)
	return c, s
}

func TestPromotionMovesStudent(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users")

	campus := testdb.Campus(t, db, "PRO")
	year := testdb.AcademicYear(t, db, campus.CampusID)
	c1, s1 := seedClass(t, db, campus.CampusID, "Class 1", 1)
	c2, s2 := seedClass(t, db, campus.CampusID, "Class 2", 2)
	_, wrong := seedClass(t, db, campus.CampusID, "Class 3", 3)

	st := testdb.Student(t, db, campus.CampusID, "P-1")
	require.NoError(t, db.Model(&st).Updates(map[string]any{
		"student_current_class_id": c1.ClassID, "student_current_section_id": s1.SectionID,
	}).Error)

	p := model.StudentPromotionModel{
		StudentPromotionStudentID:      st.StudentID,
		StudentPromotionToClassID:      c2.ClassID,
		StudentPromotionToSectionID:    &wrong.SectionID,
		StudentPromotionAcademicYearID: year.AcademicYearID,
		StudentPromotionDate:           dbtime.ParseDate("2026-04-01"),
	}
	err := db.Transaction(func(tx *gorm.DB) error { return service.PreparePromotion(tx, &p) })
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	p.StudentPromotionToSectionID = &s2.SectionID
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		if err := service.PreparePromotion(tx, &p); err != nil {
			return err
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		return service.ApplyPromotion(tx, &p)
	}))
	require.NotNil(t, p.StudentPromotionFromClassID)
	assert.Equal(t, c1.ClassID, *p.StudentPromotionFromClassID)

	var got model.StudentModel
	require.NoError(t, db.First(&got, "student_id = ?", st.StudentID).Error)
	require.NotNil(t, got.StudentCurrentClassID)
	assert.Equal(t, c2.ClassID, *got.StudentCurrentClassID)
	assert.Equal(t, s2.SectionID, *got.StudentCurrentSectionID)
}

func TestCheckRoomVacancy_FullRoom(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users")

	campus := testdb.Campus(t, db, "HOS")
	h := hostelModel.HostelModel{HostelName: "North", HostelType: "BOYS", HostelCampusID: campus.CampusID, HostelAddress: "Block N", HostelIsActive: true}
	require.NoError(t, db.Create(&h).Error)
	room := hostelModel.HostelRoomModel{
		HostelRoomHostelID: h.HostelID, HostelRoomNumber: "101", HostelRoomType: "SINGLE",
		HostelRoomCapacity: 1, HostelRoomMonthlyFee: decimal.NewFromInt(100), HostelRoomIsActive: true,
	}
	require.NoError(t, db.Create(&room).Error)

	first := testdb.Student(t, db, campus.CampusID, "H-1")
	second := testdb.Student(t, db, campus.CampusID, "H-2")

	check := func(id uuid.UUID) error {
		return db.Transaction(func(tx *gorm.DB) error { return service.CheckRoomVacancy(tx, &room.HostelRoomID, id) })
	}
	require.NoError(t, check(first.StudentID))
	require.NoError(t, db.Model(&first).Update("student_hostel_room_id", room.HostelRoomID).Error)

	// the occupant may be saved again, anyone else is turned away
	assert.NoError(t, check(first.StudentID))
	assert.True(t, apperr.Is(check(second.StudentID), apperr.KindConflict))

	missing := uuid.New()
	err := db.Transaction(func(tx *gorm.DB) error { return service.CheckRoomVacancy(tx, &missing, second.StudentID) })
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
