package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/registra/api/manager/domain"
)

type EventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Venue       *string `json:"venue"`
	StartTime   *int64  `json:"startTime"`
	EndTime     *int64  `json:"endTime"`
	Capacity    *int    `json:"capacity"`
}

type CancelEventRequest struct {
	Reason string `json:"reason"`
}

type EventView struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Venue        string             `json:"venue"`
	StartTime    int64              `json:"startTime"`
	EndTime      int64              `json:"endTime"`
	Capacity     int                `json:"capacity"`
	Status       domain.EventStatus `json:"status"`
	CancelReason string             `json:"cancelReason,omitempty"`
}

type ListEventsResponse struct {
	Events []EventView `json:"events"`
}

func newEventView(event *domain.Event) EventView {
	return EventView{
		ID:           event.ID.Hex(),
		Title:        event.Title,
		Description:  event.Description,
		Venue:        event.Venue,
		StartTime:    event.StartTime,
		EndTime:      event.EndTime,
		Capacity:     event.Capacity,
		Status:       event.Status,
		CancelReason: event.CancelReason,
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// CreateEvent godoc
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventRequest true "Event"
// @Success 200 {object} SuccessResponse[EventView]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/events [post]
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req EventRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	event := &domain.Event{
		Title:       deref(req.Title),
		Description: deref(req.Description),
		Venue:       deref(req.Venue),
		StartTime:   deref(req.StartTime),
		EndTime:     deref(req.EndTime),
		Capacity:    deref(req.Capacity),
	}
	err = h.Svc.CreateEvent(ctx, h.RequestContext(r), event)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	view := newEventView(event)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&view))
}

// UpdateEvent godoc
// @Summary Update event
// @Description Only the fields present in the body are changed.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id"
// @Param request body EventRequest true "Changes"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/events/{id} [put]
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req EventRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err = h.Svc.UpdateEvent(ctx, h.RequestContext(r), h.GetPathParam(r, "id"), domain.UpdateEventOptions{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}

// CancelEvent godoc
// @Summary Cancel event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id"
// @Param request body CancelEventRequest false "Reason"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/events/{id}/cancel [put]
func (h *Handler) CancelEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CancelEventRequest
	// the body is optional
	err := h.JSONBind(r, &req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err = h.Svc.CancelEvent(ctx, h.RequestContext(r), h.GetPathParam(r, "id"), req.Reason)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}

// GetEvent godoc
// @Summary Get event
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id"
// @Success 200 {object} SuccessResponse[EventView]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/events/{id} [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	event, err := h.Svc.GetEvent(ctx, h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	view := newEventView(event)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&view))
}

// ListEvents godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param status query string false "scheduled or cancelled"
// @Param limit query int false "Page size"
// @Param skip query int false "Entries to skip"
// @Success 200 {object} SuccessResponse[ListEventsResponse]
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/events [get]
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	opt := &domain.QueryEventOptions{}
	if status := query.Get("status"); status != "" {
		opt.Statuses = []domain.EventStatus{domain.EventStatus(status)}
	}
	for key, dst := range map[string]*int64{"limit": &opt.Limit, "skip": &opt.Skip} {
		raw := query.Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid "+key, err)
			return
		}
		*dst = v
	}

	err := h.Svc.ListEvents(ctx, opt)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := &ListEventsResponse{Events: make([]EventView, 0, len(opt.Result))}
	for _, event := range opt.Result {
		resp.Events = append(resp.Events, newEventView(event))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(resp))
}
