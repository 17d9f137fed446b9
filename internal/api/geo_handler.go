package api

import (
	"net/http"

	"github.com/whiteboardproductions/site/go/internal/currency"
	"github.com/whiteboardproductions/site/go/internal/models"
)

// countryHeaders are the edge headers carrying the visitor's country, in
// order of preference.
var countryHeaders = []string{"CF-IPCountry", "X-Vercel-IP-Country", "X-Country-Code"}

type GeoHandler struct{}

func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

func (h *GeoHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	cur := models.CurrencyUSD
	for _, name := range countryHeaders {
		if code := r.Header.Get(name); code != "" {
			cur = currency.ForCountry(code)
			break
		}
	}

	w.Header().Set("Cache-Control", "private, no-store")
	writeJSON(w, models.GeoResponse{Currency: cur})
}
