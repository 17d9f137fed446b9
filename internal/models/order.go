package models

type PodcastLevel string

const (
	PodcastBasic    PodcastLevel = "basic"
	PodcastStandard PodcastLevel = "standard"
	PodcastPremium  PodcastLevel = "premium"
)

// PodcastLevels is the display order of podcast production levels.
var PodcastLevels = []PodcastLevel{PodcastBasic, PodcastStandard, PodcastPremium}

type VideoPackID string

const (
	VideoPackBasic    VideoPackID = "basic"
	VideoPackStandard VideoPackID = "standard"
	VideoPackPremium  VideoPackID = "premium"
)

var VideoPackIDs = []VideoPackID{VideoPackBasic, VideoPackStandard, VideoPackPremium}

type Tier struct {
	ID                        string
	Name                      string
	Price                     Price
	IncludesPodcastProduction bool
}

type PodcastAddOn struct {
	Level       PodcastLevel
	Name        string
	Price       Price
	Description string
}

type VideoPackage struct {
	ID             VideoPackID
	Name           string
	Price          Price
	VariationCount int
}

// OrderState is the selection record of one wizard. Nil pointers mean the
// question has not been answered (or no option was chosen).
type OrderState struct {
	Tier                 Tier
	HasPodcastContent    *bool
	PodcastAddOn         *PodcastAddOn
	WantsVideoVariations *bool
	VideoPackage         *VideoPackage
}

func NewOrderState(tier Tier) *OrderState {
	return &OrderState{Tier: tier}
}

// Total sums the tier and every present add-on in a single currency.
func (o *OrderState) Total(c Currency) int64 {
	total := o.Tier.Price.In(c)
	if o.PodcastAddOn != nil {
		total += o.PodcastAddOn.Price.In(c)
	}
	if o.VideoPackage != nil {
		total += o.VideoPackage.Price.In(c)
	}
	return total
}

func (o *OrderState) Clone() *OrderState {
	c := &OrderState{Tier: o.Tier}
	if o.HasPodcastContent != nil {
		v := *o.HasPodcastContent
		c.HasPodcastContent = &v
	}
	if o.PodcastAddOn != nil {
		v := *o.PodcastAddOn
		c.PodcastAddOn = &v
	}
	if o.WantsVideoVariations != nil {
		v := *o.WantsVideoVariations
		c.WantsVideoVariations = &v
	}
	if o.VideoPackage != nil {
		v := *o.VideoPackage
		c.VideoPackage = &v
	}
	return c
}

func IsTrue(b *bool) bool  { return b != nil && *b }
func IsFalse(b *bool) bool { return b != nil && !*b }
func Bool(v bool) *bool    { return &v }
