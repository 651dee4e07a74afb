// Package employee holds the read model the benefit engine consumes.
// Employees are owned by the surrounding HR application; the engine reads
// a snapshot (service type, shift, working days, invite state, active
// benefit slots) and references employees by id only.
package employee

import (
	"github.com/tiffin-hq/tiffin/internal/domain/schedule"
)

// ServiceType is the benefit program an employee is enrolled in.
type ServiceType string

const (
	ServiceLunch        ServiceType = "lunch"
	ServiceCompensation ServiceType = "compensation"
	// ServiceUnset means the employee has not been assigned a program yet.
	ServiceUnset ServiceType = ""
)

func (s ServiceType) IsValid() bool {
	return s == ServiceLunch || s == ServiceCompensation || s == ServiceUnset
}

func (s ServiceType) String() string {
	return string(s)
}

// ShiftType is the employee's delivery window.
type ShiftType string

const (
	ShiftDay   ShiftType = "day"
	ShiftNight ShiftType = "night"
)

func (s ShiftType) IsValid() bool {
	return s == ShiftDay || s == ShiftNight
}

func (s ShiftType) String() string {
	return string(s)
}

// InviteStatus tracks the employee's onboarding invitation.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRevoked  InviteStatus = "revoked"
)

func (s InviteStatus) IsValid() bool {
	return s == InvitePending || s == InviteAccepted || s == InviteRevoked
}

func (s InviteStatus) String() string {
	return string(s)
}

// Employee is the snapshot the engine evaluates. ActiveLunchBenefitID and
// ActiveCompensationID are hydrated from the benefits table by the
// repository; the benefits table is the single source of truth and no
// back-pointer is ever written onto the employee row.
type Employee struct {
	ID                   uint
	EID                  string
	CompanyID            uint
	Name                 Name
	IsActive             bool
	InviteStatus         InviteStatus
	ServiceType          ServiceType
	ShiftType            ShiftType
	WorkingDays          schedule.WeekdaySet
	ActiveLunchBenefitID *uint
	ActiveCompensationID *uint
}
