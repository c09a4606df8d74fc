package pgutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"

	"github.com/etherspot/arka-sub001/pkg/config"
)

// ConnectDB opens a pooled connection to the configured database and verifies it with a ping.
func ConnectDB(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (*bun.DB, error) {
	// Functional options escape special characters in credentials
	connector := pgdriver.NewConnector(
		pgdriver.WithNetwork("tcp"),
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Database),
		pgdriver.WithInsecure(cfg.SSLMode == "disable"),
		pgdriver.WithApplicationName("arka"),
	)

	sqldb := sql.OpenDB(connector)
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
		sqldb.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database, err)
	}

	logger.Info("Connected to database",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))
	return db, nil
}
