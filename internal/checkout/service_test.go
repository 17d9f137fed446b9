package checkout

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/currency"
	"github.com/whiteboardproductions/site/go/internal/models"
	"github.com/whiteboardproductions/site/go/internal/state"
	"github.com/whiteboardproductions/site/go/internal/wizard"
)

type recordingNotifier struct {
	orders []*models.OrderDB
	err    error
}

func (n *recordingNotifier) OrderConfirmed(ctx context.Context, o *models.OrderDB) error {
	n.orders = append(n.orders, o)
	return n.err
}

type failingStore struct{ *state.MemoryStore }

func (failingStore) SaveOrder(context.Context, *models.OrderDB) error {
	return errors.New("database unavailable")
}

type fixedLookup models.Currency

func (f fixedLookup) Lookup(context.Context, string) (models.Currency, error) {
	return models.Currency(f), nil
}

func newService(t *testing.T, orders state.OrderStore, n *recordingNotifier) (*Service, *state.SessionStore) {
	t.Helper()
	sessions := state.NewSessionStore()
	svc := NewService(
		catalog.Default(),
		currency.NewResolver(fixedLookup(models.CurrencyUSD)),
		sessions,
		orders,
		n,
		"https://wa.me/message/DUFCKWYTKH7KC1",
	)
	return svc, sessions
}

func TestCreateSessionStartsAtFirstQuestion(t *testing.T) {
	svc, sessions := newService(t, state.NewMemoryStore(), &recordingNotifier{})

	view, err := svc.CreateSession(context.Background(), "Pro", "203.0.113.9", currency.Hints{})
	require.NoError(t, err)
	assert.Equal(t, 1, sessions.Len())
	assert.Equal(t, "pro", view.Plan)
	assert.Equal(t, models.CurrencyUSD, view.Currency)
	assert.Equal(t, 1, view.Step)
	assert.Equal(t, 4, view.TotalSteps)
	assert.Equal(t, "podcast_ownership", view.Role)
	assert.Equal(t, "$699", view.Total)
	require.Len(t, view.Options, 2)
	assert.Equal(t, wizard.OptionYes, view.Options[0].ID)
}

func TestCreateSessionUnknownPlan(t *testing.T) {
	svc, sessions := newService(t, state.NewMemoryStore(), &recordingNotifier{})

	_, err := svc.CreateSession(context.Background(), "enterprise", "", currency.Hints{})
	assert.ErrorIs(t, err, catalog.ErrUnknownTier)
	assert.Zero(t, sessions.Len())
}

func TestSelectRendersPricedOptions(t *testing.T) {
	svc, _ := newService(t, state.NewMemoryStore(), &recordingNotifier{})
	view, err := svc.CreateSession(context.Background(), "pro", "", currency.Hints{})
	require.NoError(t, err)

	view, err = svc.Select(view.SessionID, wizard.OptionNo)
	require.NoError(t, err)
	assert.Equal(t, "podcast_add_on", view.Role)
	require.Len(t, view.Options, 3)
	assert.Equal(t, "standard", view.Options[1].ID)
	assert.Equal(t, "+$60", view.Options[1].Price)
	assert.Equal(t, "Professional mastering & editing", view.Options[1].Subtitle)

	_, err = svc.Select(view.SessionID, "platinum")
	assert.ErrorIs(t, err, wizard.ErrUnknownOption)
}

func TestFullCheckoutConfirm(t *testing.T) {
	store := state.NewMemoryStore()
	n := &recordingNotifier{}
	svc, sessions := newService(t, store, n)
	ctx := context.Background()

	view, err := svc.CreateSession(ctx, "pro", "", currency.Hints{})
	require.NoError(t, err)
	id := view.SessionID

	_, err = svc.Preview(id)
	assert.ErrorIs(t, err, ErrNotAtSummary)
	_, err = svc.Confirm(ctx, id)
	assert.ErrorIs(t, err, ErrNotAtSummary)

	for _, opt := range []string{"no", "standard", "yes", "standard-pack"} {
		view, err = svc.Select(id, opt)
		require.NoError(t, err, opt)
	}
	assert.Equal(t, "summary", view.Role)
	require.NotNil(t, view.Summary)
	assert.Equal(t, "$794", view.Summary.Total)
	assert.Len(t, view.Summary.Lines, 3)

	preview, err := svc.Preview(id)
	require.NoError(t, err)
	assert.Contains(t, preview, "💰 Total: $794")

	resp, err := svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, preview, resp.Message)
	assert.True(t, strings.HasPrefix(resp.DeepLink, "https://wa.me/message/DUFCKWYTKH7KC1?text="))
	assert.Equal(t, resp.DeepLink, resp.Redirect)

	u, err := url.Parse(resp.DeepLink)
	require.NoError(t, err)
	assert.Equal(t, preview, u.Query().Get("text"))

	saved, err := store.GetOrder(ctx, uuid.MustParse(resp.OrderID))
	require.NoError(t, err)
	assert.Equal(t, int64(794), saved.Total)
	require.NotNil(t, saved.VariationCount)
	assert.Equal(t, 5, *saved.VariationCount)

	require.Len(t, n.orders, 1)
	assert.Zero(t, sessions.Len())

	_, err = svc.Get(id)
	assert.ErrorIs(t, err, state.ErrSessionNotFound)
}

func TestConfirmIsBestEffort(t *testing.T) {
	n := &recordingNotifier{err: errors.New("telegram down")}
	svc, _ := newService(t, failingStore{state.NewMemoryStore()}, n)
	ctx := context.Background()

	view, err := svc.CreateSession(ctx, "startup", "", currency.Hints{})
	require.NoError(t, err)
	_, err = svc.Select(view.SessionID, wizard.OptionNo)
	require.NoError(t, err)

	resp, err := svc.Confirm(ctx, view.SessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.DeepLink)
	assert.Len(t, n.orders, 1)
}

func TestBackExitsFromFirstQuestion(t *testing.T) {
	svc, sessions := newService(t, state.NewMemoryStore(), &recordingNotifier{})

	view, err := svc.CreateSession(context.Background(), "premium", "", currency.Hints{})
	require.NoError(t, err)
	assert.Equal(t, "video_variations", view.Role)

	_, err = svc.Select(view.SessionID, wizard.OptionYes)
	require.NoError(t, err)

	back, err := svc.Back(view.SessionID)
	require.NoError(t, err)
	assert.False(t, back.Exited)
	require.NotNil(t, back.Step)
	assert.Equal(t, "video_variations", back.Step.Role)

	back, err = svc.Back(view.SessionID)
	require.NoError(t, err)
	assert.True(t, back.Exited)
	assert.Zero(t, sessions.Len())
}

func TestPlanViews(t *testing.T) {
	plans := PlanViews(catalog.Default(), models.CurrencyINR)
	require.Len(t, plans, 3)
	assert.Equal(t, "startup", plans[0].ID)
	assert.Equal(t, "₹25,000", plans[0].Price)
	assert.Equal(t, int64(55000), plans[1].PriceValue)
	assert.True(t, plans[2].IncludesPodcastProduction)
}
