package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
)

const DefaultSessionTable = "storefront_sessions"

// Connect opens a pool, pings it and logs statements at debug level.
func Connect(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newZapTracer(logger),
		LogLevel: tracelog.LogLevelWarn,
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// SessionRepo keeps session payloads as jsonb rows with an expiry.
type SessionRepo struct {
	pool  *pgxpool.Pool
	table string
	now   func() time.Time
}

func NewSessionRepo(pool *pgxpool.Pool, table string) *SessionRepo {
	if table == "" {
		table = DefaultSessionTable
	}
	return &SessionRepo{pool: pool, table: table, now: time.Now}
}

func (r *SessionRepo) qt() string { return pgx.Identifier{r.table}.Sanitize() }

func (r *SessionRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
		  id          text PRIMARY KEY,
		  data        jsonb NOT NULL,
		  expires_at  timestamptz NOT NULL,
		  updated_at  timestamptz NOT NULL DEFAULT now()
		)`, r.qt()))
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, fmt.Sprintf(
		`CREATE INDEX IF NOT EXISTS %s ON %s (expires_at)`,
		pgx.Identifier{r.table + "_expires_idx"}.Sanitize(), r.qt()))
	return err
}

// Load returns nil without error for unknown or expired sessions.
func (r *SessionRepo) Load(ctx context.Context, id string) (map[string]json.RawMessage, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT data FROM %s WHERE id=$1 AND expires_at > $2`, r.qt()), id, r.now()).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return data, nil
}

// Merge upserts the row, overlaying set keys and dropping removed ones in a
// single statement so concurrent merges of different keys both land.
func (r *SessionRepo) Merge(ctx context.Context, id string, changes map[string]json.RawMessage, ttl time.Duration) error {
	set, del := splitChanges(changes)
	raw, err := json.Marshal(set)
	if err != nil {
		return err
	}
	now := r.now()
	_, err = r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s AS s (id, data, expires_at, updated_at)
		VALUES ($1, $2::jsonb, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
		  data=(s.data - $5::text[]) || EXCLUDED.data,
		  expires_at=EXCLUDED.expires_at,
		  updated_at=EXCLUDED.updated_at
	`, r.qt()), id, raw, now.Add(ttl), now, del)
	return err
}

// splitChanges separates written keys from removed ones (nil values). del is
// never nil: jsonb minus a NULL array is NULL.
func splitChanges(changes map[string]json.RawMessage) (map[string]json.RawMessage, []string) {
	set := make(map[string]json.RawMessage, len(changes))
	del := []string{}
	for k, v := range changes {
		if v == nil {
			del = append(del, k)
			continue
		}
		set[k] = v
	}
	sort.Strings(del)
	return set, del
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, r.qt()), id)
	return err
}

// Sweep removes expired rows and reports how many were deleted.
func (r *SessionRepo) Sweep(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE expires_at <= $1`, r.qt()), r.now())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
