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

// ProfileHandler serves the signed-in account's profile. Reads come straight
// from the store so the response reflects updates made elsewhere, not the
// possibly stale session cookie.
type ProfileHandler struct {
	AuthService *service.AuthService
	Sessions    *session.Manager
	Metrics     *metrics.Collector
}

// HandleGet godoc
//
//	@Summary		Current Account Endpoint
//	@Description	Return the signed-in account's profile.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	portalsdk.User			"the current profile"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/me [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	user, err := h.AuthService.GetUserByID(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err, h.Metrics)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

// HandlePatch godoc
//
//	@Summary		Update Profile Endpoint
//	@Description	Apply a partial update to the signed-in account. Omitted fields are left
//	@Description	unchanged. The session cookie is reissued with the updated profile.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	portalsdk.User					"the updated profile"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/me [patch].
func (h *ProfileHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	var req portalsdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeInvalidInput,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, err := h.AuthService.UpdateProfile(ctx, userID, service.ProfileUpdate{
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

	// Refresh the cookie so the session reflects the new profile.
	if err := h.Sessions.Issue(w, user); err != nil {
		writeServiceError(w, r, err, h.Metrics)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}
