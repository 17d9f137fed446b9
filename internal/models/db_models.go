package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderDB struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID             uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	SessionID      string    `bun:"session_id,notnull" json:"session_id"`
	Plan           string    `bun:"plan,notnull" json:"plan"`
	Currency       Currency  `bun:"currency,notnull" json:"currency"`
	TierPrice      int64     `bun:"tier_price,notnull" json:"tier_price"`
	PodcastLevel   *string   `bun:"podcast_level" json:"podcast_level,omitempty"`
	PodcastPrice   *int64    `bun:"podcast_price" json:"podcast_price,omitempty"`
	VideoPack      *string   `bun:"video_pack" json:"video_pack,omitempty"`
	VideoPrice     *int64    `bun:"video_price" json:"video_price,omitempty"`
	VariationCount *int      `bun:"variation_count" json:"variation_count,omitempty"`
	Total          int64     `bun:"total,notnull" json:"total"`
	Message        string    `bun:"message,notnull" json:"message"`
	DeepLink       string    `bun:"deep_link,notnull" json:"deep_link"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// OrderFromState snapshots a finished order in its session currency.
func OrderFromState(id uuid.UUID, sessionID string, o *OrderState, c Currency, message, deepLink string) *OrderDB {
	row := &OrderDB{
		ID:        id,
		SessionID: sessionID,
		Plan:      o.Tier.ID,
		Currency:  c,
		TierPrice: o.Tier.Price.In(c),
		Total:     o.Total(c),
		Message:   message,
		DeepLink:  deepLink,
		CreatedAt: time.Now(),
	}
	if o.PodcastAddOn != nil {
		level := string(o.PodcastAddOn.Level)
		price := o.PodcastAddOn.Price.In(c)
		row.PodcastLevel = &level
		row.PodcastPrice = &price
	}
	if o.VideoPackage != nil {
		pack := string(o.VideoPackage.ID)
		price := o.VideoPackage.Price.In(c)
		count := o.VideoPackage.VariationCount
		row.VideoPack = &pack
		row.VideoPrice = &price
		row.VariationCount = &count
	}
	return row
}

type SiteContentDB struct {
	bun.BaseModel `bun:"table:site_content,alias:sc"`

	Key       string          `bun:"key,pk" json:"key"`
	Value     json.RawMessage `bun:"value,type:jsonb,notnull" json:"value"`
	UpdatedAt time.Time       `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
