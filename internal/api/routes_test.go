package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiteboardproductions/site/go/internal/api"
	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/checkout"
	"github.com/whiteboardproductions/site/go/internal/currency"
	"github.com/whiteboardproductions/site/go/internal/models"
	"github.com/whiteboardproductions/site/go/internal/notify"
	"github.com/whiteboardproductions/site/go/internal/state"
)

const (
	siteBase = "https://whiteboard.example/"
	origin   = "https://whiteboard.example"
)

type lookupFunc func(ctx context.Context, ip string) (models.Currency, error)

func (f lookupFunc) Lookup(ctx context.Context, ip string) (models.Currency, error) { return f(ctx, ip) }

func newRouter(t *testing.T, lookup currency.Lookuper) (http.Handler, *state.SessionStore) {
	t.Helper()
	sessions := state.NewSessionStore()
	svc := checkout.NewService(
		catalog.Default(),
		currency.NewResolver(lookup),
		sessions,
		state.NewMemoryStore(),
		notify.Noop{},
		"https://wa.me/message/DUFCKWYTKH7KC1",
	)
	return api.SetupRoutes(api.NewCheckoutHandler(svc, siteBase), api.NewGeoHandler(), origin), sessions
}

func do(t *testing.T, h http.Handler, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestGeoEndpoint(t *testing.T) {
	h, _ := newRouter(t, nil)

	tests := []struct {
		name   string
		header map[string]string
		want   models.Currency
	}{
		{"cloudflare india", map[string]string{"CF-IPCountry": "IN"}, models.CurrencyINR},
		{"vercel bangladesh", map[string]string{"X-Vercel-IP-Country": "bd"}, models.CurrencyINR},
		{"generic pakistan", map[string]string{"X-Country-Code": "PK"}, models.CurrencyINR},
		{"germany", map[string]string{"CF-IPCountry": "DE"}, models.CurrencyUSD},
		{"no header", nil, models.CurrencyUSD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/api/geo", nil, tt.header)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, decode[models.GeoResponse](t, rec).Currency)
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestPlansEndpoint(t *testing.T) {
	h, _ := newRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/checkout/plans?currency=INR", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	plans := decode[[]models.PlanView](t, rec)
	require.Len(t, plans, 3)
	assert.Equal(t, models.CurrencyINR, plans[0].Currency)

	rec = do(t, h, http.MethodGet, "/api/v1/checkout/plans", nil, map[string]string{"Accept-Language": "en-IN,en;q=0.9"})
	plans = decode[[]models.PlanView](t, rec)
	assert.Equal(t, models.CurrencyINR, plans[0].Currency)
}

func TestCreateSessionUnknownPlanRedirects(t *testing.T) {
	h, sessions := newRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/checkout/sessions", models.CreateSessionRequest{Plan: "gold"}, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, siteBase, rec.Header().Get("Location"))
	assert.Zero(t, sessions.Len())
}

func TestCreateSessionBadBody(t *testing.T) {
	h, _ := newRouter(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/sessions", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	var seenIP string
	h, sessions := newRouter(t, lookupFunc(func(ctx context.Context, ip string) (models.Currency, error) {
		seenIP = ip
		return models.CurrencyUSD, nil
	}))

	rec := do(t, h, http.MethodPost, "/api/v1/checkout/sessions",
		models.CreateSessionRequest{Plan: "pro"},
		map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "198.51.100.7", seenIP)

	view := decode[models.StepView](t, rec)
	id := view.SessionID
	base := "/api/v1/checkout/sessions/" + id
	assert.Equal(t, base, rec.Header().Get("Location"))
	assert.Equal(t, "podcast_ownership", view.Role)

	rec = do(t, h, http.MethodGet, base+"/preview", nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/select", models.SelectOptionRequest{Option: "maybe"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, opt := range []string{"no", "standard", "yes", "standard-pack"} {
		rec = do(t, h, http.MethodPost, base+"/select", models.SelectOptionRequest{Option: opt}, nil)
		require.Equal(t, http.StatusOK, rec.Code, opt)
	}
	view = decode[models.StepView](t, rec)
	assert.Equal(t, "summary", view.Role)
	assert.Equal(t, float64(100), view.Progress)
	assert.Equal(t, "$794", view.Total)

	rec = do(t, h, http.MethodPost, base+"/select", models.SelectOptionRequest{Option: "yes"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, base+"/preview", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "📦 Package: Pro - $699")

	rec = do(t, h, http.MethodPost, base+"/confirm", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	confirmed := decode[models.ConfirmResponse](t, rec)
	assert.Equal(t, int64(794), confirmed.Total)
	assert.True(t, strings.HasPrefix(confirmed.DeepLink, "https://wa.me/message/DUFCKWYTKH7KC1?text="))
	assert.Zero(t, sessions.Len())

	rec = do(t, h, http.MethodGet, base, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBackEndpoint(t *testing.T) {
	h, sessions := newRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/checkout/sessions", models.CreateSessionRequest{Plan: "pro"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/api/v1/checkout/sessions/" + decode[models.StepView](t, rec).SessionID

	rec = do(t, h, http.MethodPost, base+"/select", models.SelectOptionRequest{Option: "no"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/back", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	back := decode[models.BackResponse](t, rec)
	assert.False(t, back.Exited)
	require.NotNil(t, back.Step)
	assert.Equal(t, "podcast_ownership", back.Step.Role)

	rec = do(t, h, http.MethodPost, base+"/back", nil, nil)
	back = decode[models.BackResponse](t, rec)
	assert.True(t, back.Exited)
	assert.Equal(t, siteBase, back.Redirect)
	assert.Zero(t, sessions.Len())
}

func TestPreflight(t *testing.T) {
	h, _ := newRouter(t, nil)
	rec := do(t, h, http.MethodOptions, "/api/v1/checkout/sessions", nil, map[string]string{"Origin": origin})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRecoveryMiddleware(t *testing.T) {
	h := api.RecoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
