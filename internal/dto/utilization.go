package dto

import (
	"time"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/agencypulse/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LogTimeRequest defines the data for a time entry. A null client_id is
// internal, non-billable work.
type LogTimeRequest struct {
	ClientID *string         `json:"client_id" binding:"omitempty,uuid"`
	Hours    decimal.Decimal `json:"hours" binding:"required,gt=0"`
}

// TimeEntryResponse defines the data returned for a time entry.
type TimeEntryResponse struct {
	EntryID    string          `json:"entry_id"`
	ClientID   *string         `json:"client_id"`
	Hours      decimal.Decimal `json:"hours"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// ToTimeEntryResponse converts a domain.TimeEntry to TimeEntryResponse DTO
func ToTimeEntryResponse(e *domain.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		EntryID:    e.EntryID,
		ClientID:   e.ClientID,
		Hours:      e.Hours,
		RecordedAt: e.RecordedAt,
	}
}

// UtilizationResponse is the capacity view over the billing window.
// utilization_percent is not capped at 100: overcommitment must show.
type UtilizationResponse struct {
	UsedHours          decimal.Decimal `json:"used_hours"`
	CapacityHours      decimal.Decimal `json:"capacity_hours"`
	UtilizationPercent int             `json:"utilization_percent"`
}

// ToUtilizationResponse converts an analytics.Utilization to UtilizationResponse DTO
func ToUtilizationResponse(u *analytics.Utilization) UtilizationResponse {
	return UtilizationResponse{
		UsedHours:          u.UsedHours,
		CapacityHours:      u.CapacityHours,
		UtilizationPercent: u.UtilizationPercent,
	}
}
