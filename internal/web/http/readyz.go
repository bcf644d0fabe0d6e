package http

import (
	"net/http"
	"time"

	"github.com/midas-agency/midas/internal/web/lowcode"
	"github.com/midas-agency/midas/internal/web/store"
	"github.com/midas-agency/midas/pkg/httpx"
	"github.com/midas-agency/midas/pkg/portalsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the account store and the directory backend.
//	@Description	An unconfigured directory reports as such without failing readiness;
//	@Description	a failing account store does.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portalsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	portalsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	directory *lowcode.Client,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &portalsdk.HealthChecks{
			Database:  "ok",
			Directory: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// The portal works without a directory backend; flag it but stay
		// ready.
		if directory == nil {
			checks.Directory = "not configured"
		}

		httpx.WriteJSON(w, statusCode, portalsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
