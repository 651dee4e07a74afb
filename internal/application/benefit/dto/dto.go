// Package dto carries the wire representations of benefits and orders.
// Dates are always local calendar dates in YYYY-MM-DD form; money travels
// as integer cents plus a currency code.
package dto

import (
	"time"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/domain/employee"
	"github.com/tiffin-hq/tiffin/internal/domain/targeting"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
)

// BenefitDTO is the API representation of a benefit aggregate.
type BenefitDTO struct {
	ID              string         `json:"id"`
	EmployeeID      uint           `json:"employee_id"`
	Kind            string         `json:"kind"`
	Status          string         `json:"status"`
	StartDate       biztime.Date   `json:"start_date"`
	EndDate         biztime.Date   `json:"end_date"`
	Recurrence      string         `json:"recurrence,omitempty"`
	CustomDates     []biztime.Date `json:"custom_dates,omitempty"`
	WorkingDays     []int          `json:"working_days"`
	ComboType       string         `json:"combo_type,omitempty"`
	DailyRateCents  int64          `json:"daily_rate_cents"`
	TotalPriceCents int64          `json:"total_price_cents"`
	Currency        string         `json:"currency"`
	CarryOver       bool           `json:"carry_over,omitempty"`
	AutoRenew       bool           `json:"auto_renew"`
	CancelledAt     *time.Time     `json:"cancelled_at,omitempty"`
	CancelReason    *string        `json:"cancel_reason,omitempty"`
	OrderCount      int            `json:"order_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// OrderDTO is the API representation of one billable day.
type OrderDTO struct {
	ID           string       `json:"id"`
	BenefitID    string       `json:"benefit_id,omitempty"`
	EmployeeID   uint         `json:"employee_id,omitempty"`
	GuestName    string       `json:"guest_name,omitempty"`
	Kind         string       `json:"kind"`
	Date         biztime.Date `json:"date"`
	Status       string       `json:"status"`
	PriceCents   int64        `json:"price_cents"`
	Currency     string       `json:"currency"`
	ComboType    string       `json:"combo_type,omitempty"`
	FrozenAt     *time.Time   `json:"frozen_at,omitempty"`
	FreezeReason *string      `json:"freeze_reason,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// BenefitErrorDTO is the per-employee failure entry of a bulk result.
type BenefitErrorDTO struct {
	EmployeeID uint   `json:"employee_id"`
	Reason     string `json:"reason"`
	Message    string `json:"message,omitempty"`
}

// BulkCreateResultDTO reports "created N of M" semantics.
type BulkCreateResultDTO struct {
	Requested int               `json:"requested"`
	Created   []*BenefitDTO     `json:"created"`
	Errors    []BenefitErrorDTO `json:"errors"`
}

// TargetingCandidateDTO identifies one surviving candidate for the admin's
// check list.
type TargetingCandidateDTO struct {
	ID    uint   `json:"id"`
	EID   string `json:"eid"`
	Name  string `json:"name"`
	Shift string `json:"shift"`
}

// ToTargetingCandidateDTOs converts candidate snapshots to wire form.
func ToTargetingCandidateDTOs(candidates []*employee.Employee) []TargetingCandidateDTO {
	dtos := make([]TargetingCandidateDTO, 0, len(candidates))
	for _, e := range candidates {
		dtos = append(dtos, TargetingCandidateDTO{
			ID:    e.ID,
			EID:   e.EID,
			Name:  e.Name.DisplayName(),
			Shift: e.ShiftType.String(),
		})
	}
	return dtos
}

// TargetingPreviewDTO explains the current bulk candidate set.
type TargetingPreviewDTO struct {
	StageCounts     []targeting.StageCount  `json:"stage_counts"`
	Candidates      []TargetingCandidateDTO `json:"candidates"`
	CandidateIDs    []uint                  `json:"candidate_ids"`
	Visible         []uint                  `json:"visible"`
	Invisible       []uint                  `json:"invisible"`
	VisibleCount    int                     `json:"visible_count"`
	TotalDays       int                     `json:"total_days"`
	EstimateCents   int64                   `json:"estimate_cents"`
	Currency        string                  `json:"currency"`
	PerEmployeeDays map[uint]int            `json:"per_employee_days,omitempty"`
}

// ToBenefitDTO converts a benefit aggregate, with its ID map, to wire form.
func ToBenefitDTO(b *benefit.Benefit) *BenefitDTO {
	if b == nil {
		return nil
	}

	d := &BenefitDTO{
		ID:              b.BID(),
		EmployeeID:      b.EmployeeID(),
		Kind:            b.Kind().String(),
		Status:          b.Status().String(),
		StartDate:       b.StartDate(),
		EndDate:         b.EndDate(),
		Recurrence:      string(b.Recurrence().Kind()),
		WorkingDays:     b.WorkingDays().Ints(),
		ComboType:       b.ComboType().String(),
		DailyRateCents:  b.DailyRate().AmountInCents(),
		TotalPriceCents: b.TotalPrice().AmountInCents(),
		Currency:        b.TotalPrice().Currency(),
		CarryOver:       b.CarryOver(),
		AutoRenew:       b.AutoRenew(),
		CancelledAt:     b.CancelledAt(),
		CancelReason:    b.CancelReason(),
		OrderCount:      len(b.Orders()),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
	if dates := b.Recurrence().CustomDates(); len(dates) > 0 {
		d.CustomDates = dates
	}
	return d
}

// ToBenefitDTOs converts a slice of aggregates.
func ToBenefitDTOs(benefits []*benefit.Benefit) []*BenefitDTO {
	dtos := make([]*BenefitDTO, 0, len(benefits))
	for _, b := range benefits {
		dtos = append(dtos, ToBenefitDTO(b))
	}
	return dtos
}

// ToOrderDTO converts an order entity to wire form. The owning benefit's
// BID is passed in because orders only hold the numeric foreign key.
func ToOrderDTO(o *benefit.Order, benefitBID string) *OrderDTO {
	if o == nil {
		return nil
	}

	return &OrderDTO{
		ID:           o.OID(),
		BenefitID:    benefitBID,
		EmployeeID:   o.EmployeeID(),
		GuestName:    o.GuestName(),
		Kind:         o.Kind().String(),
		Date:         o.Date(),
		Status:       o.Status().String(),
		PriceCents:   o.Price().AmountInCents(),
		Currency:     o.Price().Currency(),
		ComboType:    o.ComboType().String(),
		FrozenAt:     o.FrozenAt(),
		FreezeReason: o.FreezeReason(),
		CreatedAt:    o.CreatedAt(),
	}
}

// ToOrderDTOs converts the orders of one benefit.
func ToOrderDTOs(orders []*benefit.Order, benefitBID string) []*OrderDTO {
	dtos := make([]*OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, ToOrderDTO(o, benefitBID))
	}
	return dtos
}
