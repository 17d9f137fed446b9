package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/checkout"
	"github.com/whiteboardproductions/site/go/internal/logging"
	"github.com/whiteboardproductions/site/go/internal/models"
)

type CheckoutHandler struct {
	service     *checkout.Service
	siteBaseURL string
}

func NewCheckoutHandler(service *checkout.Service, siteBaseURL string) *CheckoutHandler {
	return &CheckoutHandler{service: service, siteBaseURL: siteBaseURL}
}

func (h *CheckoutHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	cur, ok := models.ParseCurrency(r.URL.Query().Get("currency"))
	if !ok {
		cur = h.service.ResolveCurrency(r.Context(), clientIP(r), hintsFrom(r, "", ""))
	}
	logging.EnrichSession(r.Context(), "", "", string(cur))

	writeJSON(w, checkout.PlanViews(h.service.Catalog(), cur))
}

// CreateSession starts a checkout for the requested plan. An unknown plan
// sends the browser back to the site entry point.
func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.CreateSession(r.Context(), req.Plan, clientIP(r), hintsFrom(r, req.Language, req.TimeZone))
	if errors.Is(err, catalog.ErrUnknownTier) {
		logging.EnrichError(r.Context(), err, "create_session")
		http.Redirect(w, r, h.siteBaseURL, http.StatusSeeOther)
		return
	}
	if err != nil {
		writeError(w, r, err, "create_session")
		return
	}

	h.enrich(r, view)
	w.Header().Set("Location", "/api/v1/checkout/sessions/"+view.SessionID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, view)
}

func (h *CheckoutHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(mux.Vars(r)["sessionID"])
	if err != nil {
		writeError(w, r, err, "get_session")
		return
	}

	h.enrich(r, view)
	writeJSON(w, view)
}

func (h *CheckoutHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req models.SelectOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Option == "" {
		http.Error(w, "option is required", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["sessionID"]
	logging.EnrichMetadata(r.Context(), "option", req.Option)

	view, err := h.service.Select(id, req.Option)
	if err != nil {
		logging.EnrichSession(r.Context(), id, "", "")
		writeError(w, r, err, "select")
		return
	}

	h.enrich(r, view)
	writeJSON(w, view)
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionID"]

	resp, err := h.service.Back(id)
	if err != nil {
		writeError(w, r, err, "back")
		return
	}

	if resp.Exited {
		logging.EnrichSession(r.Context(), id, "", "")
		logging.EnrichMetadata(r.Context(), "exited", true)
		resp.Redirect = h.siteBaseURL
	} else {
		h.enrich(r, resp.Step)
	}
	writeJSON(w, resp)
}

func (h *CheckoutHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionID"]
	logging.EnrichSession(r.Context(), id, "", "")

	msg, err := h.service.Preview(id)
	if err != nil {
		writeError(w, r, err, "preview")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(msg))
}

func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionID"]
	logging.EnrichSession(r.Context(), id, "", "")

	resp, err := h.service.Confirm(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "confirm")
		return
	}

	logging.EnrichOrder(r.Context(), resp.OrderID, resp.Total)
	writeJSON(w, resp)
}

func (h *CheckoutHandler) enrich(r *http.Request, view *models.StepView) {
	logging.EnrichSession(r.Context(), view.SessionID, view.Plan, string(view.Currency))
	logging.EnrichStep(r.Context(), view.Step, view.Role)
}
