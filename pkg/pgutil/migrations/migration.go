// Package migrations holds helpers shared by the arka schema migrations and the migrate command.
package migrations

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const usageText = `Usage:
  go run cmd/arka/migrate/main.go [-config config.yaml] <command>

Supported commands:
  - init    creates the migration bookkeeping tables
  - up      applies every pending migration
  - down    reverts the last migration group
  - status  prints applied and pending migrations

Examples:
  go run cmd/arka/migrate/main.go -config config.yaml init
  go run cmd/arka/migrate/main.go -config config.yaml up
`

// Usage prints command usage and exits.
func Usage() {
	fmt.Print(usageText)
	flag.PrintDefaults()
	os.Exit(2)
}

// Exitf prints the message followed by usage and exits.
func Exitf(s string, args ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
	Usage()
}

// CreateSchema creates a table per model when it does not exist yet.
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("Creating table for", reflect.TypeOf(model))
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// DropTables drops the table of every model, cascading to dependents.
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("Dropping table for", reflect.TypeOf(model))
		if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// CreateModelIndexes creates one index per column, named idx_<table>_<column>.
func CreateModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	for _, column := range columns {
		name, err := modelIndexName(db, model, column)
		if err != nil {
			return err
		}
		if _, err = db.NewCreateIndex().Model(model).Index(name).Column(column).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// DropModelIndexes drops the indexes created by CreateModelIndexes.
func DropModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	for _, column := range columns {
		name, err := modelIndexName(db, model, column)
		if err != nil {
			return err
		}
		if _, err = db.NewDropIndex().Model(model).Index(name).IfExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func modelIndexName(db bun.IDB, model any, column string) (string, error) {
	if model == nil {
		return "", fmt.Errorf("model cannot be nil")
	}
	table := db.NewCreateIndex().Model(model).GetTableName()
	if table == "" {
		return "", fmt.Errorf("failed to resolve table name for model %T", model)
	}
	table = strings.NewReplacer(`"`, "", ".", "_").Replace(table)
	return fmt.Sprintf("idx_%s_%s", table, column), nil
}

// RunMigrations executes a migrate command (init, up, down or status).
func RunMigrations(ctx context.Context, migrator *migrate.Migrator, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}

	switch args[0] {
	case "init":
		if err := migrator.Init(ctx); err != nil {
			return err
		}
		log.Println("migration tables created")
		return nil

	case "up", "down":
		if err := migrator.Lock(ctx); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		defer func() {
			if err := migrator.Unlock(ctx); err != nil {
				log.Printf("failed to release migration lock: %v", err)
			}
		}()

		if args[0] == "up" {
			group, err := migrator.Migrate(ctx)
			if err != nil {
				return err
			}
			if group.IsZero() {
				log.Println("no new migrations to run (database is up to date)")
			} else {
				log.Printf("migrated to %s\n", group)
			}
			return nil
		}

		group, err := migrator.Rollback(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			log.Println("no migrations to roll back")
		} else {
			log.Printf("rolled back %s\n", group)
		}
		return nil

	case "status":
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		log.Printf("migrations: %s\n", ms)
		log.Printf("unapplied migrations: %s\n", ms.Unapplied())
		log.Printf("last migration group: %s\n", ms.LastGroup())
		return nil

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}
