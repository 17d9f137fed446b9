package state

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/whiteboardproductions/site/go/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore keeps confirmed orders.
type OrderStore interface {
	SaveOrder(ctx context.Context, order *models.OrderDB) error
	GetOrder(ctx context.Context, id uuid.UUID) (*models.OrderDB, error)
	ListOrders(ctx context.Context, offset, limit int) ([]*models.OrderDB, error)
	Close() error
}
