package api

import (
	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/store/sqlite"
)

// =============================================================================
// REQUEST DTOs
// =============================================================================

// CreateHolidayRequest is the request body for adding a custom holiday.
type CreateHolidayRequest struct {
	Date string `json:"date" validate:"required"`
	Name string `json:"name" validate:"required,max=100"`
	// Region is a region code or alias. Empty applies to every region.
	Region    string `json:"region" validate:"omitempty,max=40"`
	Recurring bool   `json:"recurring"`
}

// =============================================================================
// RESPONSE DTOs
// =============================================================================

// HolidaysResponse lists named holidays for one region and year.
type HolidaysResponse struct {
	Region   string             `json:"region"`
	Year     int                `json:"year"`
	Holidays []calendar.Holiday `json:"holidays"`
}

// CustomHolidayDTO is a stored custom holiday.
type CustomHolidayDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Region    string `json:"region"`
	Recurring bool   `json:"recurring"`
}

// CustomHolidaysResponse lists the stored holidays that apply to a region.
type CustomHolidaysResponse struct {
	Region   string             `json:"region"`
	Holidays []CustomHolidayDTO `json:"holidays"`
}

// RegionsResponse lists supported region codes.
type RegionsResponse struct {
	Regions []string `json:"regions"`
	Default string   `json:"default"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func toCustomHolidayDTO(r sqlite.Record) CustomHolidayDTO {
	return CustomHolidayDTO{
		ID:        r.ID,
		Date:      r.Date.String(),
		Name:      r.Name,
		Region:    r.Region,
		Recurring: r.Recurring,
	}
}
