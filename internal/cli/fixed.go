package cli

import (
	"context"

	"github.com/whiteboardproductions/site/go/internal/models"
)

// fixedCurrency is a lookup that always answers with the forced currency.
type fixedCurrency models.Currency

func (f fixedCurrency) Lookup(context.Context, string) (models.Currency, error) {
	return models.Currency(f), nil
}
