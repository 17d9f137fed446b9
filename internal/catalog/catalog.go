// Package catalog holds the priced options the checkout wizard offers: the
// three tiers, podcast production add-ons and video variation packs.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/whiteboardproductions/site/go/internal/models"
)

var ErrUnknownTier = errors.New("unknown tier")

// Catalog is immutable once built. A wizard reads it, never writes it.
type Catalog struct {
	tiers          map[string]models.Tier
	podcastOptions []models.PodcastAddOn
	videoPackages  []models.VideoPackage
	whatsAppNumber string
}

func Default() *Catalog {
	return &Catalog{
		tiers:          defaultTiers(),
		podcastOptions: defaultPodcastOptions(),
		videoPackages:  defaultVideoPackages(),
	}
}

// Tier looks a tier up by its identifier, ignoring case and surrounding space.
func (c *Catalog) Tier(id string) (models.Tier, error) {
	t, ok := c.tiers[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return models.Tier{}, fmt.Errorf("%w: %q", ErrUnknownTier, id)
	}
	return t, nil
}

func (c *Catalog) Tiers() []models.Tier {
	tiers := make([]models.Tier, 0, len(TierOrder))
	for _, id := range TierOrder {
		tiers = append(tiers, c.tiers[id])
	}
	return tiers
}

func (c *Catalog) PodcastOptions() []models.PodcastAddOn {
	out := make([]models.PodcastAddOn, len(c.podcastOptions))
	copy(out, c.podcastOptions)
	return out
}

func (c *Catalog) PodcastOption(level models.PodcastLevel) (models.PodcastAddOn, bool) {
	for _, o := range c.podcastOptions {
		if o.Level == level {
			return o, true
		}
	}
	return models.PodcastAddOn{}, false
}

func (c *Catalog) VideoPackages() []models.VideoPackage {
	out := make([]models.VideoPackage, len(c.videoPackages))
	copy(out, c.videoPackages)
	return out
}

func (c *Catalog) VideoPackage(id models.VideoPackID) (models.VideoPackage, bool) {
	for _, p := range c.videoPackages {
		if p.ID == id {
			return p, true
		}
	}
	return models.VideoPackage{}, false
}

// WhatsAppNumber is the studio number supplied by the content override, or
// empty when the defaults are in use.
func (c *Catalog) WhatsAppNumber() string {
	return c.whatsAppNumber
}
