package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassModel struct {
	ClassID             uuid.UUID  `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassName           string     `gorm:"column:class_name;type:varchar(50);not null;uniqueIndex:uq_classes_name_campus" json:"class_name"`
	ClassNumericValue   int        `gorm:"column:class_numeric_value;not null" json:"class_numeric_value"`
	ClassCampusID       uuid.UUID  `gorm:"column:class_campus_id;type:uuid;not null;uniqueIndex:uq_classes_name_campus" json:"class_campus_id"`
	ClassClassTeacherID *uuid.UUID `gorm:"column:class_class_teacher_id;type:uuid" json:"class_class_teacher_id,omitempty"`
	ClassIsActive       bool       `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }

type SectionModel struct {
	SectionID         uuid.UUID `gorm:"column:section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"section_id"`
	SectionName       string    `gorm:"column:section_name;type:varchar(10);not null;uniqueIndex:uq_sections_name_class" json:"section_name"`
	SectionClassID    uuid.UUID `gorm:"column:section_class_id;type:uuid;not null;uniqueIndex:uq_sections_name_class" json:"section_class_id"`
	SectionCapacity   int       `gorm:"column:section_capacity;not null;default:40" json:"section_capacity"`
	SectionRoomNumber *string   `gorm:"column:section_room_number;type:varchar(20)" json:"section_room_number,omitempty"`
	SectionIsActive   bool      `gorm:"column:section_is_active;not null;default:true" json:"section_is_active"`

	SectionCreatedAt time.Time `gorm:"column:section_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"section_created_at"`

	/* ===== derived (read only) ===== */
	SectionCurrentStrength int `gorm:"-" json:"section_current_strength"`
	SectionAvailableSeats  int `gorm:"-" json:"section_available_seats"`
}

func (SectionModel) TableName() string { return "sections" }
