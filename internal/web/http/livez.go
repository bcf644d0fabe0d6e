package http

import (
	"net/http"
	"time"

	"github.com/midas-agency/midas/pkg/httpx"
	"github.com/midas-agency/midas/pkg/portalsdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning basic service health, uptime and version.
//	@Description	Always returns 200 OK while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portalsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, portalsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
