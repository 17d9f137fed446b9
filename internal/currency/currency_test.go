package currency

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiteboardproductions/site/go/internal/models"
	"go.uber.org/goleak"
)

func TestGuess(t *testing.T) {
	tests := []struct {
		name  string
		hints Hints
		want  models.Currency
	}{
		{"empty", Hints{}, models.CurrencyUSD},
		{"india language", Hints{Language: "en-IN"}, models.CurrencyINR},
		{"pakistan language", Hints{Language: "ur-PK"}, models.CurrencyINR},
		{"bangladesh language", Hints{Language: "bn-BD"}, models.CurrencyINR},
		{"accept-language header", Hints{Language: "hi-IN,hi;q=0.9,en;q=0.8"}, models.CurrencyINR},
		{"us language", Hints{Language: "en-US"}, models.CurrencyUSD},
		{"bare language has no region", Hints{Language: "hi"}, models.CurrencyUSD},
		{"kolkata", Hints{Language: "en-US", TimeZone: "Asia/Kolkata"}, models.CurrencyINR},
		{"calcutta alias", Hints{TimeZone: "Asia/Calcutta"}, models.CurrencyINR},
		{"karachi", Hints{TimeZone: "Asia/Karachi"}, models.CurrencyINR},
		{"dhaka", Hints{TimeZone: "Asia/Dhaka"}, models.CurrencyINR},
		{"london", Hints{Language: "en-GB", TimeZone: "Europe/London"}, models.CurrencyUSD},
		{"garbage", Hints{Language: "!!", TimeZone: "nowhere"}, models.CurrencyUSD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guess(tt.hints))
		})
	}
}

func TestForCountry(t *testing.T) {
	assert.Equal(t, models.CurrencyINR, ForCountry("IN"))
	assert.Equal(t, models.CurrencyINR, ForCountry("pk"))
	assert.Equal(t, models.CurrencyINR, ForCountry(" BD "))
	assert.Equal(t, models.CurrencyUSD, ForCountry("US"))
	assert.Equal(t, models.CurrencyUSD, ForCountry(""))
}

func TestGeoClientLookup(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    models.Currency
		wantErr bool
	}{
		{"inr", http.StatusOK, `{"currency":"INR"}`, models.CurrencyINR, false},
		{"usd", http.StatusOK, `{"currency":"USD"}`, models.CurrencyUSD, false},
		{"server error", http.StatusInternalServerError, `oops`, "", true},
		{"not found", http.StatusNotFound, ``, "", true},
		{"malformed body", http.StatusOK, `<html>`, "", true},
		{"unsupported currency", http.StatusOK, `{"currency":"EUR"}`, "", true},
		{"missing currency", http.StatusOK, `{}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "203.0.113.7", r.Header.Get("X-Forwarded-For"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := NewGeoClient(srv.URL, time.Second).Lookup(context.Background(), "203.0.113.7")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeoClientMalformedIsDistinguishable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"currency": 5}`))
	}))
	defer srv.Close()

	_, err := NewGeoClient(srv.URL, time.Second).Lookup(context.Background(), "")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

type stubLookup struct {
	currency models.Currency
	err      error
	calls    int
}

func (s *stubLookup) Lookup(ctx context.Context, clientIP string) (models.Currency, error) {
	s.calls++
	return s.currency, s.err
}

func TestResolverPrefersLookup(t *testing.T) {
	lookup := &stubLookup{currency: models.CurrencyINR}
	r := NewResolver(lookup)

	got := r.Resolve(context.Background(), "", Hints{Language: "en-US"})
	assert.Equal(t, models.CurrencyINR, got)
	assert.Equal(t, 1, lookup.calls)
}

func TestResolverFallsBackWithoutRetry(t *testing.T) {
	lookup := &stubLookup{err: errors.New("network down")}
	r := NewResolver(lookup)

	got := r.Resolve(context.Background(), "", Hints{TimeZone: "Asia/Kolkata"})
	assert.Equal(t, models.CurrencyINR, got)
	assert.Equal(t, 1, lookup.calls)

	got = r.Resolve(context.Background(), "", Hints{Language: "en-US"})
	assert.Equal(t, models.CurrencyUSD, got)
}

func TestResolverWithoutLookup(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, models.CurrencyINR, r.Resolve(context.Background(), "", Hints{Language: "en-IN"}))
}

type blockingLookup struct {
	release chan struct{}
}

func (b *blockingLookup) Lookup(ctx context.Context, clientIP string) (models.Currency, error) {
	select {
	case <-b.release:
		return models.CurrencyINR, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestPendingSettles(t *testing.T) {
	defer goleak.VerifyNone(t)

	lookup := &blockingLookup{release: make(chan struct{})}
	p := NewResolver(lookup).Start(context.Background(), "", Hints{})

	_, ok := p.Result()
	assert.False(t, ok, "result must not be available before the lookup settles")

	close(lookup.release)
	got, ok := p.Wait(context.Background())
	require.True(t, ok)
	assert.Equal(t, models.CurrencyINR, got)
}

func TestPendingDiscardIgnoresLateResult(t *testing.T) {
	defer goleak.VerifyNone(t)

	lookup := &blockingLookup{release: make(chan struct{})}
	p := NewResolver(lookup).Start(context.Background(), "", Hints{Language: "en-IN"})

	p.Discard()
	<-p.Done()

	_, ok := p.Result()
	assert.False(t, ok)
}
