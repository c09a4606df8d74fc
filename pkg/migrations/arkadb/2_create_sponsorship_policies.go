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
		log.Println("creating sponsorship_policies table...")
		if err := mghelper.CreateSchema(ctx, db, &sponsorstore.PolicyDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &sponsorstore.PolicyDao{}, "wallet_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping sponsorship_policies table...")
		if err := mghelper.DropModelIndexes(ctx, db, &sponsorstore.PolicyDao{}, "wallet_address"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &sponsorstore.PolicyDao{})
	})
}
