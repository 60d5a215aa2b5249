package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"backoffice_console/internal/app"
	"backoffice_console/internal/domain"
)

// Handlers carries the services the API surfaces. Everything
// industry-dependent flows through the session's resolved config; handlers
// never branch on industry strings.
type Handlers struct {
	Sessions  *app.SessionManager
	Resources *app.ResourceService
	Calendar  *app.CalendarService
	Dashboard *app.DashboardService
	Feed      *app.ScheduleFeed
	Terms     *app.FieldMappingResolver
	Schedule  domain.ScheduleDirectory
}

type problem struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/session", h.getSession)
	s.mux.Get("/v1/resources", h.listResources)
	s.mux.Post("/v1/resources", h.createResource)
	s.mux.Put("/v1/resources/{id}", h.updateResource)
	s.mux.Delete("/v1/resources/{id}", h.deleteResource)
	s.mux.Get("/v1/calendar", h.getCalendar)
	s.mux.Get("/v1/appointments", h.listAppointments)
	s.mux.Get("/v1/customers", h.listCustomers)
	s.mux.Get("/v1/dashboard", h.getDashboard)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string, retryable bool) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Retryable: retryable}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps a collaborator error onto the taxonomy. Unauthorized is
// the one kind with a side effect: the stored identity is cleared before
// the 401 goes out.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	log.Warn().Err(err).Str("kind", domain.ErrorKind(err)).Msg("request failed")
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		h.Sessions.Reset()
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "session invalid, identity cleared", false)
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error(), false)
	case errors.Is(err, domain.ErrUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Upstream Unavailable", err.Error(), true)
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error(), false)
	}
}

func writeFieldErrors(w http.ResponseWriter, errs domain.FieldErrors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := json.NewEncoder(w).Encode(map[string]any{"errors": errs}); err != nil {
		log.Error().Err(err).Msg("write validation response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCachedJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- session / config ----

type menuEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	s := h.Sessions.Current()
	cfg := s.Config

	visible := domain.VisibleMenu(cfg)
	entries := make([]menuEntry, 0, len(visible))
	for _, it := range visible {
		entries = append(entries, menuEntry{
			Key:   it.Key,
			Label: h.Terms.Translate(it.Key),
			Path:  it.Path,
			Icon:  domain.MenuIconAsset(it.Icon),
		})
	}

	st := app.StrategyForIndustry(cfg)
	writeCachedJSON(w, r, map[string]any{
		"company":   s.Company,
		"locale":    s.Locale,
		"anonymous": s.Anonymous(),
		"industry":  cfg.Type,
		"features":  cfg.Features,
		"menu":      entries,
		"terms":     h.Terms.Terms(cfg),
		"resource": map[string]any{
			"variant": st.VariantTag(),
			"fields":  st.FieldDescriptors(),
			"columns": st.TableColumns(),
		},
	})
}

// ---- resources ----

func (h *Handlers) listResources(w http.ResponseWriter, r *http.Request) {
	cfg := h.Sessions.Current().Config
	rs, err := h.Resources.List(r.Context(), cfg)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeCachedJSON(w, r, map[string]any{"variant": cfg.ResourceAxis(), "items": rs})
}

// decodeResource reads the body and pins the variant tag to the session's
// resource axis when the client leaves it blank, so call sites survive an
// industry switch untouched.
func decodeResource(r *http.Request, cfg domain.IndustryConfig) (domain.Resource, error) {
	var res domain.Resource
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		return domain.Resource{}, err
	}
	if res.Type == "" {
		res.Type = cfg.ResourceAxis()
	}
	return res, nil
}

func (h *Handlers) createResource(w http.ResponseWriter, r *http.Request) {
	cfg := h.Sessions.Current().Config
	res, err := decodeResource(r, cfg)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be a resource JSON object", false)
		return
	}
	out, errs, err := h.Resources.Create(r.Context(), cfg, res)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !errs.Valid() {
		writeFieldErrors(w, errs)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) updateResource(w http.ResponseWriter, r *http.Request) {
	cfg := h.Sessions.Current().Config
	res, err := decodeResource(r, cfg)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be a resource JSON object", false)
		return
	}
	res.ID = chi.URLParam(r, "id")
	out, errs, err := h.Resources.Update(r.Context(), cfg, res)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !errs.Valid() {
		writeFieldErrors(w, errs)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) deleteResource(w http.ResponseWriter, r *http.Request) {
	cfg := h.Sessions.Current().Config
	if err := h.Resources.Delete(r.Context(), cfg, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- calendar / appointments ----

func (h *Handlers) getCalendar(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid month", "month must be an integer (0-11)", false)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid year", "year must be an integer", false)
		return
	}
	// The grid builder assumes validated input; wrapping is our job.
	month, year = app.NormalizeMonth(month, year)

	cells, err := h.Calendar.MonthGrid(r.Context(), month, year)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"month": month, "year": year, "cells": cells})
}

func parseFilter(r *http.Request) (domain.AppointmentFilter, *problem) {
	q := r.URL.Query()
	f := domain.AppointmentFilter{
		Status: q.Get("status"),
		Date:   q.Get("date"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}
	if ms := q.Get("month"); ms != "" {
		m, err := strconv.Atoi(ms)
		if err != nil || m < 0 || m > 11 {
			return f, &problem{Status: http.StatusBadRequest, Title: "Invalid month", Detail: "month must be 0-11"}
		}
		f.Month = &m
	}
	if ys := q.Get("year"); ys != "" {
		y, err := strconv.Atoi(ys)
		if err != nil {
			return f, &problem{Status: http.StatusBadRequest, Title: "Invalid year", Detail: "year must be an integer"}
		}
		f.Year = &y
	}
	return f, nil
}

func (h *Handlers) listAppointments(w http.ResponseWriter, r *http.Request) {
	f, p := parseFilter(r)
	if p != nil {
		writeProblem(w, p.Status, p.Title, p.Detail, false)
		return
	}
	items, err := h.Feed.Refresh(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	// The upstream already scopes the fetch; re-applying the predicates
	// locally keeps the response exact even when it over-returns.
	items = app.ApplyFilters(items, f)
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *Handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	out, err := h.Schedule.ListCustomers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "count": len(out)})
}

// ---- dashboard ----

func (h *Handlers) getDashboard(w http.ResponseWriter, r *http.Request) {
	s := h.Sessions.Current()
	snap, err := h.Dashboard.Snapshot(r.Context(), s.Company.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeCachedJSON(w, r, snap)
}
