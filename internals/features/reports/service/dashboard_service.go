package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	academicModel "schooloffice_backend/internals/features/academics/model"
	financeModel "schooloffice_backend/internals/features/finance/model"
	"schooloffice_backend/internals/features/reports/dto"
	staffModel "schooloffice_backend/internals/features/staff/model"
	studentModel "schooloffice_backend/internals/features/students/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

const (
	upcomingExamDays = 30
	recentLimit      = 5
)

// Dashboard computes the back-office summary for the day containing now.
// Every figure is read fresh; the independent queries run concurrently.
func Dashboard(ctx context.Context, db *gorm.DB, now time.Time) (*dto.DashboardResponse, error) {
	today := dbtime.DateOf(now)
	out := &dto.DashboardResponse{
		RecentAdmissions: []dto.RecentAdmission{},
		Announcements:    []dto.AnnouncementBanner{},
	}

	g, gctx := errgroup.WithContext(ctx)
	q := func() *gorm.DB { return db.WithContext(gctx) }

	g.Go(func() error {
		return q().Table("students").
			Where("student_status = ?", studentModel.StudentActive).
			Count(&out.TotalStudents).Error
	})
	g.Go(func() error {
		return q().Table("staff").
			Joins("JOIN users ON users.user_id = staff.staff_user_id").
			Where("staff.staff_is_active AND users.user_role = ?", constants.RoleTeacher).
			Count(&out.TotalTeachers).Error
	})
	g.Go(func() error {
		return q().Table("classes").Where("class_is_active").Count(&out.TotalClasses).Error
	})
	g.Go(func() error {
		var sums struct {
			Total   decimal.Decimal
			Balance decimal.Decimal
		}
		err := q().Table("fee_invoices").
			Select(`COALESCE(SUM(fee_invoice_total_amount), 0) AS total,
				COALESCE(SUM(fee_invoice_total_amount + fee_invoice_late_fee - fee_invoice_discount_amount - fee_invoice_paid_amount), 0) AS balance`).
			Where("fee_invoice_status IN ?", financeModel.OpenInvoiceStatuses).
			Scan(&sums).Error
		out.PendingFees, out.OutstandingBalance = helper.Cents(sums.Total), helper.Cents(sums.Balance)
		return err
	})
	g.Go(func() error {
		var rows []struct {
			Status string
			N      int64
		}
		err := q().Table("attendance").
			Select("attendance_status AS status, COUNT(*) AS n").
			Where("attendance_date = ?", today).
			Group("attendance_status").
			Scan(&rows).Error
		for _, r := range rows {
			switch r.Status {
			case academicModel.AttendancePresent:
				out.PresentToday = r.N
			case academicModel.AttendanceAbsent:
				out.AbsentToday = r.N
			}
		}
		return err
	})
	g.Go(func() error {
		return q().Table("leaves").
			Where("leave_status = ? AND leave_start_date <= ? AND leave_end_date >= ?", staffModel.LeaveApproved, today, today).
			Distinct("leave_staff_id").
			Count(&out.StaffOnLeave).Error
	})
	g.Go(func() error {
		return q().Table("examinations").
			Where("examination_start_date BETWEEN ? AND ?", today, today.AddDate(0, 0, upcomingExamDays)).
			Count(&out.UpcomingExams).Error
	})
	g.Go(func() error {
		return q().Table("students AS s").
			Select(`s.student_id, s.student_admission_number, s.student_admission_date,
				u.user_first_name AS first_name, u.user_last_name AS last_name, c.class_name`).
			Joins("JOIN users u ON u.user_id = s.student_user_id").
			Joins("LEFT JOIN classes c ON c.class_id = s.student_current_class_id").
			Where("s.student_status = ?", studentModel.StudentActive).
			Order("s.student_admission_date DESC, s.student_created_at DESC").
			Limit(recentLimit).
			Scan(&out.RecentAdmissions).Error
	})
	g.Go(func() error {
		return q().Table("announcements").
			Select("announcement_id, announcement_title, announcement_type, announcement_start_date, announcement_end_date").
			Where("announcement_is_active AND announcement_start_date <= ? AND announcement_end_date >= ?", today, today).
			Order("announcement_created_at DESC").
			Limit(recentLimit).
			Scan(&out.Announcements).Error
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "build dashboard")
	}
	return out, nil
}
