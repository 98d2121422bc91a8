package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cookie-consent-api/internal/config"
)

// Postgres appends records to insert-only event tables.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, cfg config.Config) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres DSN: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Postgres.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Postgres.MaxIdleConns)
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) RecordClick(ctx context.Context, rec ClickRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := p.pool.Exec(ctx, `
		INSERT INTO click_events (id, client_id, ad_id, revenue, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), rec.ClientID, rec.AdID, rec.Revenue, rec.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert click event: %w", err)
	}
	return nil
}

func (p *Postgres) RecordScan(ctx context.Context, rec ScanRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cookies, err := json.Marshal(rec.Cookies)
	if err != nil {
		return fmt.Errorf("marshal cookies: %w", err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO scan_events (id, client_id, domain, cookies, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), rec.ClientID, rec.Domain, cookies, rec.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert scan event: %w", err)
	}
	return nil
}

func (p *Postgres) RecordConsent(ctx context.Context, rec ConsentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	consent, err := json.Marshal(rec.Consent)
	if err != nil {
		return fmt.Errorf("marshal consent: %w", err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO consent_events (id, client_id, domain, consent, ip_hash, user_agent, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.NewString(), rec.ClientID, rec.Domain, consent, rec.IPHash, rec.UserAgent, rec.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert consent event: %w", err)
	}
	return nil
}

func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
