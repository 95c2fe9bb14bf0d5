package handlers

import (
	"net/http"

	"github.com/diewo77/go-billing/auth"
	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/services"
)

type DashboardHandler struct {
	svc *services.InvoiceService
}

func NewDashboardHandler(svc *services.InvoiceService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary returns the user's headline figures: revenue, outstanding amount,
// and entity counts.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	summary, err := h.svc.Summary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}
