package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/registra/api/manager/domain"
	"github.com/registra/api/manager/errs"
	"github.com/registra/api/pkg/logger"
	"go.uber.org/fx"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SuccessResponse represents the success response structure
type SuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      *T     `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

type EmptyResponse struct{}

func NewSuccessResponse[T any](data *T) SuccessResponse[T] {
	return SuccessResponse[T]{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

type Params struct {
	fx.In
	Svc domain.Service
}

func NewHandler(params Params) (*Handler, error) {
	return &Handler{
		Svc: params.Svc,
	}, nil
}

type Handler struct {
	Svc domain.Service
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		logger.Logger(ctx).Debug().Err(err).Int("status_code", status).Msg(errMsg)
	}
	resp := ErrorResponse{
		Success: false,
		Message: errMsg,
	}
	h.JSONResponse(ctx, w, status, resp)
}

// HandleError maps service errors to a response. Errors that carry no status
// are reported as 500 without leaking their text.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Message, httpErr.OriginalErr)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		h.ErrorResponse(ctx, w, http.StatusNotFound, "Resource not found", err)
		return
	}
	logger.Logger(ctx).Error().Err(err).Msg("unhandled service error")
	h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Internal server error", nil)
}

// Version godoc
// @Summary Server version
// @Tags Operations
// @Produce json
// @Success 200 {object} map[string]string
// @Router /version [get]
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "Registra Manager API Server",
		"version": Version,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

// HealthCheck godoc
// @Summary Liveness probe
// @Tags Operations
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "Registra Manager API Server",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
