package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Rows are scoped by instance so several deployments can share a database.
type PostgresStore struct {
	pool     *pgxpool.Pool
	instance string
}

// NewPostgresStore creates a new PostgresStore with connection pooling. The
// pool size comes from pool_max_conns in connString.
func NewPostgresStore(ctx context.Context, connString string, opts ...Option) (*PostgresStore, error) {
	o := buildOptions(opts)

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool, instance: o.instance}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := RunMigrations(ctx, s.pool)
	return err
}

// GetCredential returns the stored credential or domain.ErrNoCredential.
func (s *PostgresStore) GetCredential(ctx context.Context) (*domain.Credential, error) {
	c := &domain.Credential{}
	err := s.pool.QueryRow(ctx, queryGetCredential, s.instance).Scan(
		&c.AccessToken, &c.RefreshToken, &c.ExpiresAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoCredential
	}
	if err != nil {
		return nil, fmt.Errorf("querying credential: %w", err)
	}
	return c, nil
}

// SaveCredential replaces the stored credential in a single statement.
func (s *PostgresStore) SaveCredential(ctx context.Context, c *domain.Credential) error {
	args := pgx.NamedArgs{
		"instance":      s.instance,
		"access_token":  c.AccessToken,
		"refresh_token": c.RefreshToken,
		"expires_at":    c.ExpiresAt,
	}
	if err := s.pool.QueryRow(ctx, queryUpsertCredential, args).Scan(&c.UpdatedAt); err != nil {
		return fmt.Errorf("upserting credential: %w", err)
	}
	return nil
}

// DeleteCredential removes the stored credential, if any.
func (s *PostgresStore) DeleteCredential(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, queryDeleteCredential, s.instance); err != nil {
		return fmt.Errorf("deleting credential: %w", err)
	}
	return nil
}

// SaveLastListing appends l to the listing history.
func (s *PostgresStore) SaveLastListing(ctx context.Context, l *domain.LastListing) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	args := pgx.NamedArgs{
		"instance":   s.instance,
		"sku":        l.SKU,
		"offer_id":   l.OfferID,
		"title":      l.Title,
		"published":  l.Published,
		"created_at": l.CreatedAt,
	}
	if _, err := s.pool.Exec(ctx, queryInsertListing, args); err != nil {
		return fmt.Errorf("inserting listing: %w", err)
	}
	return nil
}

// GetLastListing returns the most recent listing or domain.ErrNoLastListing.
func (s *PostgresStore) GetLastListing(ctx context.Context) (*domain.LastListing, error) {
	l := &domain.LastListing{}
	err := scanListing(s.pool.QueryRow(ctx, queryGetLastListing, s.instance), l)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoLastListing
	}
	if err != nil {
		return nil, fmt.Errorf("querying last listing: %w", err)
	}
	return l, nil
}

// ListListings queries the listing history with optional filters, returning
// the page and the total match count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	q *ListingQuery,
) ([]domain.LastListing, int, error) {
	if q == nil {
		q = &ListingQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL(s.instance)

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	listings := []domain.LastListing{}
	for rows.Next() {
		var l domain.LastListing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, total, nil
}

func scanListing(row pgx.Row, l *domain.LastListing) error {
	return row.Scan(&l.SKU, &l.OfferID, &l.Title, &l.Published, &l.CreatedAt)
}
