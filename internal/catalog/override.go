package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/whiteboardproductions/site/go/internal/models"
)

var (
	ErrNoOverride        = errors.New("content has no orderForm")
	ErrMalformedOverride = errors.New("malformed orderForm")
)

type siteContent struct {
	OrderForm json.RawMessage `json:"orderForm"`
}

// OrderForm is the override shape stored under the "orderForm" key of the
// persisted site content. Its keys mirror the catalog exactly.
type OrderForm struct {
	WhatsAppNumber string                                `json:"whatsappNumber,omitempty"`
	Tiers          map[string]models.Price               `json:"tiers,omitempty"`
	PodcastOptions map[models.PodcastLevel]PodcastOption `json:"podcastOptions"`
	VideoOptions   map[models.VideoPackID]VideoOption    `json:"videoOptions"`
}

type PodcastOption struct {
	models.Price
	Description string `json:"description"`
}

type VideoOption struct {
	models.Price
	Quantity int `json:"quantity"`
}

// FromContent applies the orderForm of a site content blob on top of the
// defaults. The override is all or nothing: any error leaves no trace of it.
func FromContent(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoOverride
	}

	var content siteContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOverride, err)
	}
	if len(content.OrderForm) == 0 || bytes.Equal(bytes.TrimSpace(content.OrderForm), []byte("null")) {
		return nil, ErrNoOverride
	}

	dec := json.NewDecoder(bytes.NewReader(content.OrderForm))
	dec.DisallowUnknownFields()
	var form OrderForm
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOverride, err)
	}

	return form.apply(Default())
}

// Load is FromContent with the silent fallback: the defaults are returned
// whenever the content is absent or malformed.
func Load(data []byte) *Catalog {
	c, err := FromContent(data)
	if err == nil {
		log.Info().Msg("Catalog override applied")
		return c
	}
	if errors.Is(err, ErrNoOverride) {
		log.Debug().Msg("No catalog override, using defaults")
	} else {
		log.Warn().Err(err).Msg("Ignoring catalog override, using defaults")
	}
	return Default()
}

func (f *OrderForm) apply(base *Catalog) (*Catalog, error) {
	if f.Tiers != nil {
		if len(f.Tiers) != len(TierOrder) {
			return nil, fmt.Errorf("%w: tiers must list exactly %v", ErrMalformedOverride, TierOrder)
		}
		for _, id := range TierOrder {
			price, ok := f.Tiers[id]
			if !ok || !price.Valid() {
				return nil, fmt.Errorf("%w: tier %q missing or not positive", ErrMalformedOverride, id)
			}
			t := base.tiers[id]
			t.Price = price
			base.tiers[id] = t
		}
	}

	if len(f.PodcastOptions) != len(models.PodcastLevels) {
		return nil, fmt.Errorf("%w: podcastOptions must list exactly %v", ErrMalformedOverride, models.PodcastLevels)
	}
	for i, o := range base.podcastOptions {
		opt, ok := f.PodcastOptions[o.Level]
		if !ok || !opt.Valid() || opt.Description == "" {
			return nil, fmt.Errorf("%w: podcast option %q incomplete", ErrMalformedOverride, o.Level)
		}
		base.podcastOptions[i].Price = opt.Price
		base.podcastOptions[i].Description = opt.Description
	}

	if len(f.VideoOptions) != len(models.VideoPackIDs) {
		return nil, fmt.Errorf("%w: videoOptions must list exactly %v", ErrMalformedOverride, models.VideoPackIDs)
	}
	for i, p := range base.videoPackages {
		opt, ok := f.VideoOptions[p.ID]
		if !ok || !opt.Valid() || opt.Quantity <= 0 {
			return nil, fmt.Errorf("%w: video option %q incomplete", ErrMalformedOverride, p.ID)
		}
		base.videoPackages[i].Price = opt.Price
		base.videoPackages[i].VariationCount = opt.Quantity
	}

	base.whatsAppNumber = f.WhatsAppNumber
	return base, nil
}
