package content

import "context"

// SiteContentGetter is satisfied by state.PostgresStore.
type SiteContentGetter interface {
	GetSiteContent(ctx context.Context, key string) ([]byte, error)
}

type PostgresSource struct {
	store SiteContentGetter
	key   string
}

func NewPostgresSource(store SiteContentGetter, key string) *PostgresSource {
	return &PostgresSource{store: store, key: key}
}

func (s *PostgresSource) Load(ctx context.Context) ([]byte, error) {
	return s.store.GetSiteContent(ctx, s.key)
}
