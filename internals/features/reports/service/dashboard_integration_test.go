//go:build integration

package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/constants"
	academicModel "schooloffice_backend/internals/features/academics/model"
	commModel "schooloffice_backend/internals/features/communication/model"
	financeModel "schooloffice_backend/internals/features/finance/model"
	"schooloffice_backend/internals/features/reports/service"
	staffModel "schooloffice_backend/internals/features/staff/model"
	studentModel "schooloffice_backend/internals/features/students/model"
	"schooloffice_backend/internals/helpers/dbtime"
	"schooloffice_backend/internals/testing/testdb"
)

var dashboardNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDashboard_CountsAndWindows(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users", "leave_types")
	ctx := context.Background()

	campus := testdb.Campus(t, db, "DSH")
	year := testdb.AcademicYear(t, db, campus.CampusID)

	// classes: one active, one retired
	active := academicModel.ClassModel{ClassName: "Grade 1", ClassNumericValue: 1, ClassCampusID: campus.CampusID, ClassIsActive: true}
	retired := academicModel.ClassModel{ClassName: "Grade 0", ClassNumericValue: 0, ClassCampusID: campus.CampusID, ClassIsActive: true}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&retired).Error)
	require.NoError(t, db.Model(&retired).Update("class_is_active", false).Error)

	// students: seven active, admitted on 1..7 March, and one newer inactive
	var students []studentModel.StudentModel
	for i := 1; i <= 7; i++ {
		s := testdb.Student(t, db, campus.CampusID, fmt.Sprintf("ADM-%d", i))
		require.NoError(t, db.Model(&s).Updates(map[string]any{
			"student_admission_date":   dbtime.ParseDate(fmt.Sprintf("2026-03-%02d", i)),
			"student_current_class_id": active.ClassID,
		}).Error)
		students = append(students, s)
	}
	gone := testdb.Student(t, db, campus.CampusID, "ADM-GONE")
	require.NoError(t, db.Model(&gone).Updates(map[string]any{
		"student_admission_date": dbtime.ParseDate("2026-03-10"),
		"student_status":         studentModel.StudentInactive,
	}).Error)

	// teachers: an active one, an inactive one, plus an accountant
	teacher := testdb.Staff(t, db, campus.CampusID, "T-1", constants.RoleTeacher, amount("50000"))
	former := testdb.Staff(t, db, campus.CampusID, "T-2", constants.RoleTeacher, amount("50000"))
	require.NoError(t, db.Model(&former).Update("staff_is_active", false).Error)
	accountant := testdb.Staff(t, db, campus.CampusID, "A-1", constants.RoleAccountant, amount("40000"))

	// attendance: today 2 present, 1 absent, 1 late; yesterday's absence is ignored
	mark := func(s studentModel.StudentModel, day, status string) {
		require.NoError(t, db.Create(&academicModel.AttendanceModel{
			AttendanceStudentID: s.StudentID, AttendanceDate: dbtime.ParseDate(day), AttendanceStatus: status,
		}).Error)
	}
	mark(students[0], "2026-03-15", academicModel.AttendancePresent)
	mark(students[1], "2026-03-15", academicModel.AttendancePresent)
	mark(students[2], "2026-03-15", academicModel.AttendanceAbsent)
	mark(students[3], "2026-03-15", academicModel.AttendanceLate)
	mark(students[4], "2026-03-14", academicModel.AttendanceAbsent)

	// leaves: only APPROVED ranges containing today count, once per staff member
	lt := staffModel.LeaveTypeModel{LeaveTypeName: "Casual", LeaveTypeCode: "CL", LeaveTypeDaysAllowed: 10, LeaveTypeIsActive: true}
	require.NoError(t, db.Create(&lt).Error)
	leave := func(staff uuid.UUID, from, to, status string) {
		require.NoError(t, db.Create(&staffModel.LeaveModel{
			LeaveStaffID: staff, LeaveLeaveTypeID: lt.LeaveTypeID,
			LeaveStartDate: dbtime.ParseDate(from), LeaveEndDate: dbtime.ParseDate(to),
			LeaveTotalDays: 1, LeaveReason: "personal", LeaveStatus: status,
		}).Error)
	}
	leave(teacher.StaffID, "2026-03-15", "2026-03-15", staffModel.LeaveApproved)
	leave(teacher.StaffID, "2026-03-14", "2026-03-20", staffModel.LeaveApproved)
	leave(accountant.StaffID, "2026-03-10", "2026-03-14", staffModel.LeaveApproved)
	leave(accountant.StaffID, "2026-03-16", "2026-03-18", staffModel.LeaveApproved)
	leave(former.StaffID, "2026-03-10", "2026-03-20", staffModel.LeavePending)
	leave(former.StaffID, "2026-03-01", "2026-03-31", staffModel.LeaveApproved)

	// exams: start today and start today+30 are upcoming, the rest are not
	exam := func(name, start string) {
		require.NoError(t, db.Create(&academicModel.ExaminationModel{
			ExaminationName: name, ExaminationType: "MIDTERM", ExaminationAcademicYearID: year.AcademicYearID,
			ExaminationStartDate: dbtime.ParseDate(start), ExaminationEndDate: dbtime.ParseDate(start),
		}).Error)
	}
	exam("today", "2026-03-15")
	exam("last day", "2026-04-14")
	exam("too far", "2026-04-15")
	exam("started", "2026-03-14")

	// invoices: PENDING, PARTIAL and OVERDUE are open; PAID and CANCELLED are not
	invoice := func(n int, status, total, paid, late, discount string) {
		require.NoError(t, db.Create(&financeModel.FeeInvoiceModel{
			FeeInvoiceNumber:         fmt.Sprintf("INV-D%d", n),
			FeeInvoiceStudentID:      students[n].StudentID,
			FeeInvoiceAcademicYearID: year.AcademicYearID,
			FeeInvoiceDate:           dbtime.ParseDate("2026-03-01"),
			FeeInvoiceDueDate:        dbtime.ParseDate("2026-03-10"),
			FeeInvoiceTotalAmount:    amount(total),
			FeeInvoicePaidAmount:     amount(paid),
			FeeInvoiceLateFee:        amount(late),
			FeeInvoiceDiscountAmount: amount(discount),
			FeeInvoiceStatus:         status,
		}).Error)
	}
	invoice(0, financeModel.InvoicePending, "1000", "0", "50", "100")
	invoice(1, financeModel.InvoicePartial, "500.50", "200.25", "0", "0")
	invoice(2, financeModel.InvoiceOverdue, "300", "0", "0", "0")
	invoice(3, financeModel.InvoicePaid, "700", "700", "0", "0")
	invoice(4, financeModel.InvoiceCancelled, "400", "0", "0", "0")

	// announcements: active and in window on both inclusive ends
	announce := func(title, from, to string, isActive bool) {
		a := commModel.AnnouncementModel{
			AnnouncementTitle: title, AnnouncementDescription: title, AnnouncementCampusID: campus.CampusID,
			AnnouncementIsActive: true, AnnouncementStartDate: dbtime.ParseDate(from), AnnouncementEndDate: dbtime.ParseDate(to),
		}
		require.NoError(t, db.Create(&a).Error)
		if !isActive {
			require.NoError(t, db.Model(&a).Update("announcement_is_active", false).Error)
		}
	}
	announce("today only", "2026-03-15", "2026-03-15", true)
	announce("running", "2026-03-10", "2026-03-31", true)
	announce("ended", "2026-03-01", "2026-03-14", true)
	announce("future", "2026-03-16", "2026-03-20", true)
	announce("withdrawn", "2026-03-01", "2026-03-31", false)

	got, err := service.Dashboard(ctx, db, dashboardNow)
	require.NoError(t, err)

	assert.EqualValues(t, 7, got.TotalStudents)
	assert.EqualValues(t, 1, got.TotalTeachers)
	assert.EqualValues(t, 1, got.TotalClasses)
	assert.EqualValues(t, 2, got.PresentToday)
	assert.EqualValues(t, 1, got.AbsentToday)
	assert.EqualValues(t, 2, got.StaffOnLeave)
	assert.EqualValues(t, 2, got.UpcomingExams)

	// pending is the open totals, outstanding what is still owed on them
	assert.Equal(t, "1800.50", got.PendingFees.StringFixed(2))
	assert.Equal(t, "1550.25", got.OutstandingBalance.StringFixed(2))

	require.Len(t, got.RecentAdmissions, 5)
	var admissions []string
	for _, r := range got.RecentAdmissions {
		admissions = append(admissions, r.StudentAdmissionNumber)
	}
	assert.Equal(t, []string{"ADM-7", "ADM-6", "ADM-5", "ADM-4", "ADM-3"}, admissions)
	require.NotNil(t, got.RecentAdmissions[0].ClassName)
	assert.Equal(t, "Grade 1", *got.RecentAdmissions[0].ClassName)

	var titles []string
	for _, a := range got.Announcements {
		titles = append(titles, a.AnnouncementTitle)
	}
	assert.ElementsMatch(t, []string{"today only", "running"}, titles)
}

func TestDashboard_EmptyDatabase(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users", "leave_types")

	got, err := service.Dashboard(context.Background(), db, dashboardNow)
	require.NoError(t, err)
	assert.Zero(t, got.TotalStudents)
	assert.True(t, got.PendingFees.IsZero())
	assert.True(t, got.OutstandingBalance.IsZero())
	assert.Empty(t, got.RecentAdmissions)
	assert.Empty(t, got.Announcements)
}
