package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/whiteboardproductions/site/go/internal/db"
	"github.com/whiteboardproductions/site/go/internal/models"
)

type PostgresStore struct {
	db *bun.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	bunDB := db.NewBunPostgresClient(connectionString)

	store := &PostgresStore{db: bunDB}

	ctx := context.Background()
	if err := store.InitializeDatabase(ctx); err != nil {
		bunDB.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// NewPostgresStoreFromDB wraps an existing handle without touching the schema.
func NewPostgresStoreFromDB(bunDB *bun.DB) *PostgresStore {
	return &PostgresStore{db: bunDB}
}

func (s *PostgresStore) DB() *bun.DB {
	return s.db
}

func (s *PostgresStore) InitializeDatabase(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*models.OrderDB)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}

	_, err = s.db.NewCreateTable().
		Model((*models.SiteContentDB)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create site_content table: %w", err)
	}

	_, err = s.db.NewCreateIndex().
		Model((*models.OrderDB)(nil)).
		Index("idx_orders_created_at").
		Column("created_at").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create created_at index: %w", err)
	}

	_, err = s.db.NewCreateIndex().
		Model((*models.OrderDB)(nil)).
		Index("idx_orders_plan").
		Column("plan").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create plan index: %w", err)
	}

	return nil
}

func (s *PostgresStore) SaveOrder(ctx context.Context, order *models.OrderDB) error {
	_, err := s.db.NewInsert().
		Model(order).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save order %s: %w", order.ID, err)
	}
	return nil
}

func (s *PostgresStore) GetOrder(ctx context.Context, id uuid.UUID) (*models.OrderDB, error) {
	order := new(models.OrderDB)
	err := s.db.NewSelect().
		Model(order).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *PostgresStore) ListOrders(ctx context.Context, offset, limit int) ([]*models.OrderDB, error) {
	var orders []*models.OrderDB
	err := s.db.NewSelect().
		Model(&orders).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetSiteContent returns the raw JSON stored under key in site_content.
func (s *PostgresStore) GetSiteContent(ctx context.Context, key string) ([]byte, error) {
	row := new(models.SiteContentDB)
	err := s.db.NewSelect().
		Model(row).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get site content %q: %w", key, err)
	}
	return row.Value, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
