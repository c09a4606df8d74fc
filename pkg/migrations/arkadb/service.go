// Package arkadb holds all the migrations for the arka database
package arkadb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the arka database
var Migrations = migrate.NewMigrations()
