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
		log.Println("creating api_keys table...")
		if err := mghelper.CreateSchema(ctx, db, &sponsorstore.APIKeyDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &sponsorstore.APIKeyDao{}, "wallet_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping api_keys table...")
		if err := mghelper.DropModelIndexes(ctx, db, &sponsorstore.APIKeyDao{}, "wallet_address"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &sponsorstore.APIKeyDao{})
	})
}
