package arkadb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/etherspot/arka-sub001/pkg/ledger"
	mghelper "github.com/etherspot/arka-sub001/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating policy_usage table...")
		return mghelper.CreateSchema(ctx, db, &ledger.UsageDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping policy_usage table...")
		return mghelper.DropTables(ctx, db, &ledger.UsageDao{})
	})
}
