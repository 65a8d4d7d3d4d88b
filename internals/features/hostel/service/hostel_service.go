package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/hostel/model"
	"schooloffice_backend/internals/helpers/apperr"
)

// Occupancy counts ACTIVE students per room.
func Occupancy(ctx context.Context, db *gorm.DB, roomIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(roomIDs))
	if len(roomIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		RoomID uuid.UUID
		N      int
	}
	if err := db.WithContext(ctx).Table("students").
		Select("student_hostel_room_id AS room_id, COUNT(*) AS n").
		Where("student_hostel_room_id IN ? AND student_status = 'ACTIVE'", roomIDs).
		Group("student_hostel_room_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.RoomID] = r.N
	}
	return out, nil
}

func DecorateRooms(ctx context.Context, db *gorm.DB, rooms []model.HostelRoomModel) error {
	ids := make([]uuid.UUID, len(rooms))
	for i := range rooms {
		ids[i] = rooms[i].HostelRoomID
	}
	occ, err := Occupancy(ctx, db, ids)
	if err != nil {
		return err
	}
	for i := range rooms {
		rooms[i].HostelRoomOccupancy = occ[rooms[i].HostelRoomID]
		rooms[i].HostelRoomIsFull = rooms[i].HostelRoomOccupancy >= rooms[i].HostelRoomCapacity
	}
	return nil
}

// CheckRoomCapacity refuses shrinking a room below the students living in it.
func CheckRoomCapacity(ctx context.Context, tx *gorm.DB, old, m *model.HostelRoomModel) error {
	if old == nil || m.HostelRoomCapacity >= old.HostelRoomCapacity {
		return nil
	}
	occ, err := Occupancy(ctx, tx, []uuid.UUID{old.HostelRoomID})
	if err != nil {
		return err
	}
	if n := occ[old.HostelRoomID]; m.HostelRoomCapacity < n {
		return apperr.Validation("hostel_room_capacity", "capacity cannot be lower than the current occupancy")
	}
	return nil
}

// CheckComplaintRoom requires the room, when given, to be in the complaint's hostel.
func CheckComplaintRoom(tx *gorm.DB, m *model.HostelComplaintModel) error {
	if m.ComplaintRoomID == nil {
		return nil
	}
	var n int64
	if err := tx.Model(&model.HostelRoomModel{}).
		Where("hostel_room_id = ? AND hostel_room_hostel_id = ?", *m.ComplaintRoomID, m.ComplaintHostelID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperr.Validation("hostel_complaint_room_id", "room does not belong to this hostel")
	}
	return nil
}

// ApplyComplaintStatus stamps or clears the resolution fields as the status moves.
func ApplyComplaintStatus(m *model.HostelComplaintModel, actor *uuid.UUID, now time.Time) {
	switch m.ComplaintStatus {
	case model.ComplaintResolved, model.ComplaintClosed:
		if m.ComplaintResolvedDate == nil {
			m.ComplaintResolvedDate = &now
			m.ComplaintResolvedBy = actor
		}
	default:
		m.ComplaintResolvedDate, m.ComplaintResolvedBy = nil, nil
	}
}

// ResolveComplaint marks an open complaint RESOLVED.
func ResolveComplaint(ctx context.Context, db *gorm.DB, id uuid.UUID, remarks *string, actor uuid.UUID) (*model.HostelComplaintModel, error) {
	var m model.HostelComplaintModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("hostel_complaint_id = ?", id).Take(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("complaint")
			}
			return err
		}
		if m.ComplaintStatus == model.ComplaintResolved || m.ComplaintStatus == model.ComplaintClosed {
			return apperr.Conflict("complaint is already " + m.ComplaintStatus)
		}
		m.ComplaintStatus = model.ComplaintResolved
		if remarks != nil {
			m.ComplaintRemarks = remarks
		}
		ApplyComplaintStatus(&m, &actor, time.Now())
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "resolve complaint")
	}
	return &m, nil
}
