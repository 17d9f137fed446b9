package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func SetupRoutes(checkoutHandler *CheckoutHandler, geoHandler *GeoHandler, allowedOrigin string) *mux.Router {
	r := mux.NewRouter()

	r.Use(CORSMiddleware(allowedOrigin))
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	r.HandleFunc("/api/geo", geoHandler.Lookup).Methods("GET")

	r.HandleFunc("/api/v1/checkout/plans", checkoutHandler.ListPlans).Methods("GET")
	r.HandleFunc("/api/v1/checkout/sessions", checkoutHandler.CreateSession).Methods("POST")
	r.HandleFunc("/api/v1/checkout/sessions/{sessionID}", checkoutHandler.GetSession).Methods("GET")
	r.HandleFunc("/api/v1/checkout/sessions/{sessionID}/select", checkoutHandler.Select).Methods("POST")
	r.HandleFunc("/api/v1/checkout/sessions/{sessionID}/back", checkoutHandler.Back).Methods("POST")
	r.HandleFunc("/api/v1/checkout/sessions/{sessionID}/preview", checkoutHandler.Preview).Methods("GET")
	r.HandleFunc("/api/v1/checkout/sessions/{sessionID}/confirm", checkoutHandler.Confirm).Methods("POST")

	// preflight requests are answered by CORSMiddleware; mux only runs
	// middleware for matched routes.
	r.PathPrefix("/api/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	return r
}
