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
		log.Println("creating contract_whitelist table...")
		return mghelper.CreateSchema(ctx, db, &sponsorstore.ContractWhitelistDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping contract_whitelist table...")
		return mghelper.DropTables(ctx, db, &sponsorstore.ContractWhitelistDao{})
	})
}
