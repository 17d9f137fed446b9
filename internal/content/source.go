// Package content loads the persisted site content blob that may carry an
// orderForm override for the catalog.
package content

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/config"
)

// Source returns the raw JSON content blob. A nil blob with a nil error
// means there is nothing to apply.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
}

type NoneSource struct{}

func (NoneSource) Load(context.Context) ([]byte, error) {
	return nil, nil
}

// NewSource picks the content source named by cfg.ContentSource. The
// postgres source needs a SiteContentGetter; pass nil for the others.
func NewSource(ctx context.Context, cfg *config.Config, pg SiteContentGetter) (Source, error) {
	switch cfg.ContentSource {
	case "", config.ContentSourceNone:
		return NoneSource{}, nil
	case config.ContentSourceFile:
		return NewFileSource(cfg.ContentFile), nil
	case config.ContentSourcePostgres:
		if pg == nil {
			return nil, fmt.Errorf("content source %q requires DATABASE_URL", cfg.ContentSource)
		}
		return NewPostgresSource(pg, cfg.ContentKey), nil
	case config.ContentSourceGCS:
		return NewGCSSource(ctx, cfg.GCSContentBucket, cfg.GCSContentObject)
	case config.ContentSourceFirebase:
		return NewFirebaseSource(ctx, cfg.FirebaseKeyPath, cfg.FirebaseDatabase, cfg.ContentKey)
	default:
		return nil, fmt.Errorf("unknown content source %q", cfg.ContentSource)
	}
}

// LoadCatalog reads the blob and builds the catalog from it. Any failure,
// including an unreachable source, falls back to the defaults.
func LoadCatalog(ctx context.Context, src Source) *catalog.Catalog {
	data, err := src.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load site content, using default catalog")
		return catalog.Default()
	}
	return catalog.Load(data)
}
