package http

import (
	"errors"
	"net/http"

	"github.com/midas-agency/midas/internal/web/lowcode"
	"github.com/midas-agency/midas/internal/web/metrics"
	"github.com/midas-agency/midas/internal/web/service"
	"github.com/midas-agency/midas/pkg/httpx"
	"github.com/midas-agency/midas/pkg/portalsdk"
	"github.com/midas-agency/midas/pkg/slogx"
)

// writeServiceError maps the service error taxonomy onto HTTP responses.
// Validation errors surface their reason; backend failures get a generic
// description and leave the detail in the logs.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, m *metrics.Collector) {
	log := slogx.FromContext(r.Context())

	var storeErr *service.StoreError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteJSON(w, http.StatusBadRequest, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeInvalidInput,
			ErrorDescription: err.Error(),
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeInvalidCredentials,
			ErrorDescription: "Invalid email or password",
		})
	case errors.Is(err, service.ErrEmailAlreadyExists):
		httpx.WriteJSON(w, http.StatusConflict, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeEmailExists,
			ErrorDescription: "An account with this email already exists",
		})
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeNotFound,
			ErrorDescription: "Account not found",
		})
	case errors.Is(err, service.ErrSchemaNotProvisioned):
		if m != nil {
			m.RecordStoreError("schema_missing")
		}
		log.ErrorContext(r.Context(), "user table not provisioned", "err", err)
		httpx.WriteJSON(w, http.StatusServiceUnavailable, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeServiceUnavailable,
			ErrorDescription: "Account storage is not set up yet",
		})
	case errors.Is(err, service.ErrAccessDenied):
		if m != nil {
			m.RecordStoreError("permission_denied")
		}
		log.ErrorContext(r.Context(), "store rejected configured credentials", "err", err)
		httpx.WriteJSON(w, http.StatusServiceUnavailable, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeServiceUnavailable,
			ErrorDescription: "Account storage is unavailable",
		})
	case errors.Is(err, lowcode.ErrNotConfigured), errors.Is(err, service.ErrDirectoryUnavailable):
		log.ErrorContext(r.Context(), "directory backend unavailable", "err", err)
		httpx.WriteJSON(w, http.StatusServiceUnavailable, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeServiceUnavailable,
			ErrorDescription: "Directory is temporarily unavailable",
		})
	case errors.As(err, &storeErr):
		if m != nil {
			m.RecordStoreError("other")
		}
		log.ErrorContext(r.Context(), "store failure", "err", err)
		httpx.WriteJSON(w, http.StatusServiceUnavailable, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeServiceUnavailable,
			ErrorDescription: "Account storage is unavailable",
		})
	default:
		log.ErrorContext(r.Context(), "unhandled service error", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, portalsdk.ErrorResponse{
			Error:            portalsdk.CodeServerError,
			ErrorDescription: "Something went wrong",
		})
	}
}
