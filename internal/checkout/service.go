// Package checkout runs server-side checkout sessions: one wizard per
// session, confirmed orders persisted and announced to the studio.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/currency"
	"github.com/whiteboardproductions/site/go/internal/models"
	"github.com/whiteboardproductions/site/go/internal/notify"
	"github.com/whiteboardproductions/site/go/internal/state"
	"github.com/whiteboardproductions/site/go/internal/summary"
	"github.com/whiteboardproductions/site/go/internal/wizard"
)

var ErrNotAtSummary = errors.New("order summary has not been reached")

type Service struct {
	catalog      *catalog.Catalog
	resolver     *currency.Resolver
	sessions     *state.SessionStore
	orders       state.OrderStore
	notifier     notify.Notifier
	deliveryBase string
}

func NewService(
	cat *catalog.Catalog,
	resolver *currency.Resolver,
	sessions *state.SessionStore,
	orders state.OrderStore,
	notifier notify.Notifier,
	deliveryBase string,
) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{
		catalog:      cat,
		resolver:     resolver,
		sessions:     sessions,
		orders:       orders,
		notifier:     notifier,
		deliveryBase: deliveryBase,
	}
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Service) ResolveCurrency(ctx context.Context, clientIP string, hints currency.Hints) models.Currency {
	return s.resolver.Resolve(ctx, clientIP, hints)
}

// CreateSession validates the plan, prices the session and moves the new
// wizard onto its first question.
func (s *Service) CreateSession(ctx context.Context, plan, clientIP string, hints currency.Hints) (*models.StepView, error) {
	if _, err := s.catalog.Tier(plan); err != nil {
		return nil, err
	}
	cur := s.resolver.Resolve(ctx, clientIP, hints)
	w, err := wizard.New(s.catalog, plan, cur)
	if err != nil {
		return nil, err
	}
	if err := w.Advance(); err != nil {
		return nil, fmt.Errorf("failed to start wizard: %w", err)
	}

	sess := s.sessions.Create(w)
	log.Debug().
		Str("session_id", sess.ID).
		Str("plan", w.Tier().ID).
		Str("currency", string(cur)).
		Msg("Checkout session created")

	return StepView(sess.ID, w), nil
}

func (s *Service) Get(id string) (*models.StepView, error) {
	var view *models.StepView
	err := s.sessions.With(id, func(sess *state.Session) error {
		view = StepView(sess.ID, sess.Wizard)
		return nil
	})
	return view, err
}

func (s *Service) Select(id, option string) (*models.StepView, error) {
	var view *models.StepView
	err := s.sessions.With(id, func(sess *state.Session) error {
		if err := sess.Wizard.Select(option); err != nil {
			return err
		}
		view = StepView(sess.ID, sess.Wizard)
		return nil
	})
	return view, err
}

// Back retreats one step. Going back past the first question ends the
// session.
func (s *Service) Back(id string) (*models.BackResponse, error) {
	var resp *models.BackResponse
	err := s.sessions.With(id, func(sess *state.Session) error {
		if sess.Wizard.Retreat() {
			s.sessions.Delete(sess.ID)
			resp = &models.BackResponse{Exited: true}
			return nil
		}
		resp = &models.BackResponse{Step: StepView(sess.ID, sess.Wizard)}
		return nil
	})
	return resp, err
}

func (s *Service) Preview(id string) (string, error) {
	var msg string
	err := s.sessions.With(id, func(sess *state.Session) error {
		w := sess.Wizard
		if !w.Complete() {
			return ErrNotAtSummary
		}
		msg = summary.Message(w.Order(), w.Currency())
		return nil
	})
	return msg, err
}

// Confirm finalizes a session sitting on the summary. Persisting and
// notifying are best effort; the customer always gets the deep link.
func (s *Service) Confirm(ctx context.Context, id string) (*models.ConfirmResponse, error) {
	var order *models.OrderDB
	err := s.sessions.With(id, func(sess *state.Session) error {
		w := sess.Wizard
		if !w.Complete() {
			return ErrNotAtSummary
		}

		o := w.Order()
		cur := w.Currency()
		msg := summary.Message(o, cur)
		link := summary.DeepLink(summary.DeliveryBase(s.deliveryBase, s.catalog.WhatsAppNumber()), msg)

		order = models.OrderFromState(uuid.New(), sess.ID, o, cur, msg, link)
		s.sessions.Delete(sess.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		log.Error().Err(err).Str("order_id", order.ID.String()).Msg("Failed to persist order")
	}
	if err := s.notifier.OrderConfirmed(ctx, order); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID.String()).Msg("Failed to notify studio")
	}

	log.Info().
		Str("order_id", order.ID.String()).
		Str("plan", order.Plan).
		Str("currency", string(order.Currency)).
		Int64("total", order.Total).
		Msg("Order confirmed")

	return &models.ConfirmResponse{
		OrderID:  order.ID.String(),
		Total:    order.Total,
		DeepLink: order.DeepLink,
		Message:  order.Message,
		Redirect: order.DeepLink,
	}, nil
}
