package handler

import (
	"net/http"

	viewservice "roomly/internal/views/service"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type CustomerHandler struct {
	views viewservice.ViewService
	log   *logger.Logger
}

func NewCustomerHandler(views viewservice.ViewService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		views: views,
		log:   log,
	}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	views, err := h.views.CustomersWithBookings(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, views); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

// Bookings returns one customer's booking history, 404 when the name has
// no bookings at all.
func (h *CustomerHandler) Bookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerName := ps.ByName("customerName")

	details, err := h.views.CustomerBookingDetails(r.Context(), customerName)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Bookings", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, details); err != nil {
		h.log.Error("failed to write success response", "handler", "Bookings", "error", err)
	}
}

func (h *CustomerHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/customers", h.List)
	router.GET("/customers/:customerName/bookings", h.Bookings)
}
