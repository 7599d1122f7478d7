/*
handlers.go - HTTP API handlers for the leave planner

PURPOSE:
  Exposes the planning engine and the holiday calendar via REST API.
  Handles HTTP request/response and JSON serialization; all planning
  logic lives in package planner.

ENDPOINTS:
  Plans:
    POST   /api/plans?year=N          Generate one plan per strategy

  Holidays:
    GET    /api/holidays?region&year  Named holidays (rules + custom)
    GET    /api/holidays/custom       Stored custom holidays for a region
    POST   /api/holidays              Add a custom holiday
    DELETE /api/holidays/{id}         Remove a custom holiday

  Misc:
    GET    /api/regions               Supported region codes
    GET    /healthz                   Liveness

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, invalid dates, negative balance, validation errors
  - 404: Custom holiday not found
  - 503: Custom holiday store not configured

An omitted region means the normalizer's default region, for listing and
planning alike.
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/generic"
	"github.com/warp/leave-planner/planner"
	"github.com/warp/leave-planner/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine   *planner.Engine
	Calendar calendar.Lister
	// Store is optional; custom holiday endpoints return 503 without it.
	Store  *sqlite.Store
	Logger zerolog.Logger

	validate *validator.Validate
}

// NewHandler creates a new handler.
func NewHandler(engine *planner.Engine, cal calendar.Lister, store *sqlite.Store, logger zerolog.Logger) *Handler {
	return &Handler{
		Engine:   engine,
		Calendar: cal,
		Store:    store,
		Logger:   logger.With().Str("component", "api").Logger(),
		validate: validator.New(),
	}
}

// regionOrDefault falls back to the region the normalizer plans with, so
// listing and planning agree on an omitted region.
func (h *Handler) regionOrDefault(region string) string {
	if strings.TrimSpace(region) == "" {
		return h.Engine.Normalizer.DefaultRegion
	}
	return region
}

// =============================================================================
// PLAN HANDLERS
// =============================================================================

// GeneratePlans runs every strategy over the posted preference payload.
// POST /api/plans?year=2025
func (h *Handler) GeneratePlans(w http.ResponseWriter, r *http.Request) {
	year, err := queryYear(r, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	var payload planner.Payload
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	plans, err := h.Engine.GenerateAllPlans(payload, year)
	if err != nil {
		if generic.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Invalid preferences", err)
			return
		}
		h.Logger.Error().Err(err).Msg("plan generation failed")
		writeError(w, http.StatusInternalServerError, "Failed to generate plans", err)
		return
	}

	writeJSON(w, http.StatusOK, plans)
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns the named holidays for a region and year.
// GET /api/holidays?region=scotland&year=2025
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := queryYear(r, h.Engine.Now().Year())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	region := h.regionOrDefault(r.URL.Query().Get("region"))

	holidays := h.Calendar.Holidays(year, region)
	if holidays == nil {
		holidays = []calendar.Holiday{}
	}
	writeJSON(w, http.StatusOK, HolidaysResponse{
		Region:   calendar.ResolveRegion(region),
		Year:     year,
		Holidays: holidays,
	})
}

// ListCustomHolidays returns the stored holidays for a region across all
// years, including those stored for every region.
// GET /api/holidays/custom?region=scotland
func (h *Handler) ListCustomHolidays(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusServiceUnavailable, "Custom holidays are not enabled", nil)
		return
	}

	region := calendar.ResolveRegion(h.regionOrDefault(r.URL.Query().Get("region")))
	records, err := h.Store.ListHolidays(r.Context(), region)
	if err != nil {
		h.Logger.Error().Err(err).Str("region", region).Msg("listing custom holidays failed")
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	resp := CustomHolidaysResponse{Region: region, Holidays: make([]CustomHolidayDTO, 0, len(records))}
	for _, rec := range records {
		resp.Holidays = append(resp.Holidays, toCustomHolidayDTO(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateHoliday stores a custom holiday.
// POST /api/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusServiceUnavailable, "Custom holidays are not enabled", nil)
		return
	}

	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", validationDetails(err))
		return
	}

	day, err := generic.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	rec := sqlite.Record{
		ID:        uuid.NewString(),
		Date:      day,
		Name:      strings.TrimSpace(req.Name),
		Recurring: req.Recurring,
	}
	if strings.TrimSpace(req.Region) != "" {
		rec.Region = calendar.ResolveRegion(req.Region)
	}

	id, err := h.Store.SaveHoliday(r.Context(), rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save holiday", err)
		return
	}
	rec.ID = id

	h.Logger.Info().Str("id", id).Str("date", day.String()).Str("region", rec.Region).Msg("custom holiday saved")
	writeJSON(w, http.StatusCreated, toCustomHolidayDTO(rec))
}

// DeleteHoliday removes a custom holiday.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusServiceUnavailable, "Custom holidays are not enabled", nil)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteHoliday(r.Context(), id); err != nil {
		if generic.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Holiday not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// MISC HANDLERS
// =============================================================================

// ListRegions returns the supported region codes.
// GET /api/regions
func (h *Handler) ListRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RegionsResponse{
		Regions: calendar.Regions(),
		Default: calendar.ResolveRegion(h.regionOrDefault("")),
	})
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func queryYear(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return def, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("year %q out of range", raw)
	}
	return year, nil
}

func validationDetails(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fmt.Errorf("%s failed on %s", ve[0].Field(), ve[0].Tag())
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
