package rest

import (
	"net/http"
	"time"

	"github.com/registra/api/manager/domain"
)

type CreateAdminRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type UpdateAdminRequest struct {
	FullName *string               `json:"fullName"`
	Status   *domain.AccountStatus `json:"status"`
}

type AdminView struct {
	ID        string               `json:"id"`
	Email     string               `json:"email"`
	FullName  string               `json:"fullName"`
	Role      domain.Role          `json:"role"`
	Status    domain.AccountStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
}

type ListAdminsResponse struct {
	Admins []AdminView `json:"admins"`
}

type CreateAdminResponse struct {
	ID string `json:"id"`
}

func newAdminView(account *domain.Account) AdminView {
	return AdminView{
		ID:        account.ID.Hex(),
		Email:     account.Email,
		FullName:  account.FullName,
		Role:      account.Role,
		Status:    account.Status,
		CreatedAt: time.UnixMilli(account.CreatedTime).UTC(),
	}
}

// CreateAdmin godoc
// @Summary Create admin account
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAdminRequest true "Admin account"
// @Success 200 {object} SuccessResponse[CreateAdminResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admins [post]
func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateAdminRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	account := &domain.Account{
		Email:    req.Email,
		FullName: req.FullName,
		Password: domain.EncryptedPassword(req.Password),
	}
	err = h.Svc.CreateAdmin(ctx, h.RequestContext(r), account)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&CreateAdminResponse{ID: account.ID.Hex()}))
}

// UpdateAdmin godoc
// @Summary Update admin account
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin id"
// @Param request body UpdateAdminRequest true "Changes"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admins/{id} [put]
func (h *Handler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateAdminRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err = h.Svc.UpdateAdmin(ctx, h.RequestContext(r), h.GetPathParam(r, "id"), domain.UpdateAccountOptions{
		FullName: req.FullName,
		Status:   req.Status,
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}

// ListAdmins godoc
// @Summary List admin accounts
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse[ListAdminsResponse]
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admins [get]
func (h *Handler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opt := &domain.QueryAccountOptions{Roles: []domain.Role{domain.RoleAdmin}}
	err := h.Svc.QueryAccounts(ctx, opt)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := &ListAdminsResponse{Admins: make([]AdminView, 0, len(opt.Result))}
	for _, account := range opt.Result {
		resp.Admins = append(resp.Admins, newAdminView(account))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(resp))
}
