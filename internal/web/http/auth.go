package http

import (
	"encoding/json"
	"net/http"

	"github.com/midas-agency/midas/internal/web/metrics"
	"github.com/midas-agency/midas/internal/web/service"
	"github.com/midas-agency/midas/internal/web/session"
	"github.com/midas-agency/midas/pkg/httpx"
	"github.com/midas-agency/midas/pkg/portalsdk"
)

type RegisterHandler struct {
	AuthService *service.AuthService
	Sessions    *session.Manager
	Metrics     *metrics.Collector
}

// ServeHTTP godoc
//
//	@Summary		Register Account Endpoint
//	@Description	Create a new client portal account. The account is active immediately
//	@Description	and a session cookie is issued on success.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	portalsdk.User				"the created account"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		503		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeInvalidInput,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, err := h.AuthService.Register(ctx, service.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Company:  req.Company,
		Phone:    req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err, h.Metrics)
		return
	}

	h.Metrics.RecordRegistration()
	if err := h.Sessions.Issue(w, user); err != nil {
		writeServiceError(w, r, err, h.Metrics)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, user)
}

type LoginHandler struct {
	AuthService *service.AuthService
	Sessions    *session.Manager
	Metrics     *metrics.Collector
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify credentials and issue a session cookie. Unknown accounts, wrong
//	@Description	passwords and inactive accounts all return the same 401 response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	portalsdk.User			"the signed-in account"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		503		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeInvalidInput,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.Metrics.RecordLogin("failure")
		writeServiceError(w, r, err, h.Metrics)
		return
	}

	h.Metrics.RecordLogin("success")
	if err := h.Sessions.Issue(w, user); err != nil {
		writeServiceError(w, r, err, h.Metrics)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

type LogoutHandler struct {
	Sessions *session.Manager
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Expire the session cookie. Succeeds whether or not a session existed.
//	@Tags			Auth
//	@Success		204	"no content"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}
