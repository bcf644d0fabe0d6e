package http

import (
	"net/http"
	"strconv"

	"github.com/midas-agency/midas/internal/web/metrics"
	"github.com/midas-agency/midas/internal/web/service"
	"github.com/midas-agency/midas/pkg/httpx"
)

type DirectoryHandler struct {
	DirectoryService *service.DirectoryService
	Metrics          *metrics.Collector
}

// ServeHTTP godoc
//
//	@Summary		KOL Directory Endpoint
//	@Description	Return one page of the KOL roster from the low-code table backend.
//	@Description	Out-of-range limit and offset values are clamped, not rejected.
//	@Tags			Directory
//	@Produce		json
//	@Param			limit	query		int							false	"Page size (default 25, max 100)"
//	@Param			offset	query		int							false	"Row offset"
//	@Success		200		{object}	service.DirectoryPage		"columns, rows, pagination"
//	@Failure		401		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		503		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/kol [get].
func (h *DirectoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	page, err := h.DirectoryService.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err, h.Metrics)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}
