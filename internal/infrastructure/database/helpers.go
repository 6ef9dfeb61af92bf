package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrPoolNotInitialized = errors.New("database pool is not initialized")

// Ping checks the database is reachable within 5 seconds
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return ErrPoolNotInitialized
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the pool. Safe to call more than once.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}

	db.Pool.Close()
	db.Pool = nil

	log.Info().Str("component", "database").Msg("connection pool closed")
}

// PoolStats is a snapshot of pool usage
type PoolStats struct {
	AcquireCount         int64
	AcquireDuration      time.Duration
	AcquiredConns        int32
	IdleConns            int32
	TotalConns           int32
	MaxConns             int32
	EmptyAcquireCount    int64
	CanceledAcquireCount int64
	AvgAcquireDuration   time.Duration
	Utilization          float64
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, ErrPoolNotInitialized
	}

	s := db.Pool.Stat()
	stats := &PoolStats{
		AcquireCount:         s.AcquireCount(),
		AcquireDuration:      s.AcquireDuration(),
		AcquiredConns:        s.AcquiredConns(),
		IdleConns:            s.IdleConns(),
		TotalConns:           s.TotalConns(),
		MaxConns:             s.MaxConns(),
		EmptyAcquireCount:    s.EmptyAcquireCount(),
		CanceledAcquireCount: s.CanceledAcquireCount(),
		AvgAcquireDuration:   calculateAvgDuration(s.AcquireDuration(), s.AcquireCount()),
	}
	if stats.MaxConns > 0 {
		stats.Utilization = float64(stats.AcquiredConns) / float64(stats.MaxConns) * 100
	}

	return stats, nil
}

func calculateAvgDuration(total time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}

// MonitorPoolHealth logs pool stats every interval until ctx is done.
// Utilization above 80% is logged as a warning.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				log.Error().Err(err).Str("component", "database").Msg("failed to read pool stats")
				continue
			}

			event := log.Debug()
			if stats.Utilization > 80 {
				event = log.Warn()
			}
			event.Str("component", "database").
				Int32("acquired", stats.AcquiredConns).
				Int32("idle", stats.IdleConns).
				Int32("max", stats.MaxConns).
				Float64("utilization", stats.Utilization).
				Dur("avg_acquire", stats.AvgAcquireDuration).
				Msg("pool stats")
		}
	}
}
