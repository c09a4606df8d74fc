package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/etherspot/arka-sub001/pkg/config"
	"github.com/etherspot/arka-sub001/pkg/migrations/arkadb"
	"github.com/etherspot/arka-sub001/pkg/pgutil"
	mghelper "github.com/etherspot/arka-sub001/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, zap.NewNop())
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for arka database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, arkadb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err)
	}
}
