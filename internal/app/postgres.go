package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/event-planner/internal/config"
	"github.com/adanyl0v/event-planner/migrations"
)

var globalPostgresPool *pgxpool.Pool

func postgresURL(cfg config.PostgresConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)
}

func MustConnectPostgres() {
	cfg := config.Global().Postgres

	poolCfg, err := pgxpool.ParseConfig(postgresURL(cfg))
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	globalPostgresPool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = globalPostgresPool.Ping(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("host", cfg.Host).
			Msg("failed to ping postgres")
		panic(err)
	}
	globalLogger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to postgres")
}

// MustMigratePostgres applies the embedded schema in a single transaction.
func MustMigratePostgres() {
	if !config.Global().Postgres.Migrate {
		globalLogger.Info().Msg("postgres migrations disabled")
		return
	}

	all, err := migrations.All()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load migrations")
		panic(err)
	}

	ctx := context.Background()
	tx, err := globalPostgresPool.Begin(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to begin migration transaction")
		panic(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, m := range all {
		_, err = tx.Exec(ctx, m.SQL)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Str("migration", m.Name).
				Msg("failed to apply migration")
			panic(err)
		}
		globalLogger.Debug().
			Str("migration", m.Name).
			Msg("applied migration")
	}

	err = tx.Commit(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to commit migrations")
		panic(err)
	}
	globalLogger.Info().
		Int("count", len(all)).
		Msg("migrated postgres")
}

func DisconnectPostgres() {
	globalPostgresPool.Close()
	globalLogger.Info().Msg("disconnected from postgres")
}
