package arkadb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/etherspot/arka-sub001/pkg/pgutil/migrations"
	"github.com/etherspot/arka-sub001/pkg/sponsorstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating token_prices table...")
		return mghelper.CreateSchema(ctx, db, &sponsorstore.TokenPriceDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping token_prices table...")
		return mghelper.DropTables(ctx, db, &sponsorstore.TokenPriceDao{})
	})
}
