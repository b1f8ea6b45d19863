package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/registra/api/manager/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type ActivityLogView struct {
	ID         string         `json:"id"`
	Action     string         `json:"action"`
	ActorID    *string        `json:"actorId"`
	ActorName  *string        `json:"actorName"`
	ActorType  string         `json:"actorType"`
	TargetType *string        `json:"targetType"`
	TargetID   *string        `json:"targetId"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IP         *string        `json:"ip"`
	Method     *string        `json:"method"`
	Path       *string        `json:"path"`
	UserAgent  *string        `json:"userAgent"`
	StatusCode *int           `json:"statusCode,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type ListActivityLogsResponse struct {
	Success bool              `json:"success"`
	Total   int64             `json:"total"`
	Logs    []ActivityLogView `json:"logs"`
}

func newActivityLogView(entry *domain.ActivityLog) ActivityLogView {
	view := ActivityLogView{
		ID:         entry.ID.Hex(),
		Action:     entry.Action,
		ActorName:  entry.ActorName,
		ActorType:  string(entry.ActorType),
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Metadata:   entry.Metadata,
		IP:         entry.IP,
		Method:     entry.Method,
		Path:       entry.Path,
		UserAgent:  entry.UserAgent,
		StatusCode: entry.StatusCode,
		CreatedAt:  time.UnixMilli(entry.CreatedTime).UTC(),
		UpdatedAt:  time.UnixMilli(entry.UpdatedTime).UTC(),
	}
	if entry.ActorID != nil {
		id := entry.ActorID.Hex()
		view.ActorID = &id
	}
	return view
}

// ListActivityLogs godoc
// @Summary List activity logs
// @Description Newest first. Admins only see their own entries whatever actorId they pass.
// @Tags ActivityLogs
// @Produce json
// @Security BearerAuth
// @Param action query string false "Exact action"
// @Param actorType query string false "admin, superadmin or system"
// @Param actorId query string false "Actor account id"
// @Param targetType query string false "Exact target type"
// @Param limit query int false "Page size, default 20"
// @Param skip query int false "Entries to skip, default 0"
// @Param page query int false "1-based page, used only without skip"
// @Success 200 {object} ListActivityLogsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/activity-logs [get]
func (h *Handler) ListActivityLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.GetActorFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	opt, errMsg := parseActivityLogQuery(r.URL.Query())
	if errMsg != "" {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, errMsg, nil)
		return
	}

	err := h.Svc.ListActivityLogs(ctx, actor, opt)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	resp := ListActivityLogsResponse{
		Success: true,
		Total:   opt.Total,
		Logs:    make([]ActivityLogView, 0, len(opt.Result)),
	}
	for _, entry := range opt.Result {
		resp.Logs = append(resp.Logs, newActivityLogView(entry))
	}
	h.JSONResponse(ctx, w, http.StatusOK, resp)
}

// parseActivityLogQuery returns a non-empty message when a parameter is malformed.
func parseActivityLogQuery(query url.Values) (*domain.QueryActivityLogOptions, string) {
	opt := &domain.QueryActivityLogOptions{
		Action:     query.Get("action"),
		ActorType:  domain.ActorType(query.Get("actorType")),
		TargetType: query.Get("targetType"),
	}
	if opt.ActorType != "" && !opt.ActorType.Valid() {
		return nil, "Invalid actorType"
	}
	if raw := query.Get("actorId"); raw != "" {
		actorID, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return nil, "Invalid actorId"
		}
		opt.ActorID = &actorID
	}

	var errMsg string
	opt.Limit, errMsg = parseNonNegative(query, "limit")
	if errMsg != "" {
		return nil, errMsg
	}
	opt.Skip, errMsg = parseNonNegative(query, "skip")
	if errMsg != "" {
		return nil, errMsg
	}
	if query.Has("page") && !query.Has("skip") {
		opt.Page, errMsg = parseNonNegative(query, "page")
		if errMsg != "" {
			return nil, errMsg
		}
		if opt.Page == 0 {
			return nil, "Invalid page"
		}
	}
	return opt, ""
}

func parseNonNegative(query url.Values, key string) (int64, string) {
	raw := query.Get(key)
	if raw == "" {
		return 0, ""
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, "Invalid " + key
	}
	return v, ""
}
