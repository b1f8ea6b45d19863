package rest

import (
	"errors"
	"net/http"

	"github.com/registra/api/manager/domain"
)

type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	UserType domain.Role `json:"userType"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Sign in
// @Description Exchange email and password for a bearer token. Every attempt is recorded in the activity log.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SuccessResponse[LoginResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req LoginRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Email == "" || req.Password == "" {
		h.ErrorResponse(ctx, w, http.StatusUnprocessableEntity, "Email and password are required", errors.New("email or password is empty"))
		return
	}

	token, err := h.Svc.Login(ctx, h.RequestContext(r), req.Email, req.Password, req.UserType)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	respData := LoginResponse{
		Token: token,
	}
	response := NewSuccessResponse(&respData)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

type SelfResponse struct {
	ID       string      `json:"id"`
	FullName string      `json:"fullName"`
	Role     domain.Role `json:"role"`
}

// GetSelf godoc
// @Summary Current account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse[SelfResponse]
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *Handler) GetSelf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.GetActorFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	response := NewSuccessResponse(&SelfResponse{
		ID:       actor.ID.Hex(),
		FullName: actor.FullName,
		Role:     actor.Role,
	})
	h.JSONResponse(ctx, w, http.StatusOK, response)
}
