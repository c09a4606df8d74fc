package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/etherspot/arka-sub001/pkg/config"
)

const (
	testImage    = "postgres:15-alpine"
	testDatabase = "arka_test"
	testUser     = "arka"
	testPassword = "arka"

	connectAttempts = 10
)

// RequireDocker skips the test when no docker daemon socket is reachable.
func RequireDocker(t *testing.T) {
	t.Helper()

	if os.Getenv("DOCKER_HOST") != "" {
		return
	}

	candidates := []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}

	for _, sock := range candidates {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed tests")
}

// SetupTestDB starts a PostgreSQL testcontainer and returns a bun connection to it together with
// a cleanup func that closes the connection and terminates the container. It skips the test when
// docker is unavailable.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	RequireDocker(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		testImage,
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	terminate := func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	cfg, err := containerConfig(ctx, container)
	if err != nil {
		terminate()
		t.Fatalf("failed to read container address: %v", err)
	}

	db, err := connectWithBackoff(ctx, cfg)
	if err != nil {
		terminate()
		t.Fatalf("failed to connect to test database after %d attempts: %v", connectAttempts, err)
	}

	return db, func() {
		_ = db.Close()
		terminate()
	}
}

func containerConfig(ctx context.Context, container *postgres.PostgresContainer) (*config.DatabaseConfig, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, err
	}
	return &config.DatabaseConfig{
		Host:           host,
		Port:           port.Int(),
		User:           testUser,
		Password:       testPassword,
		Database:       testDatabase,
		SSLMode:        "disable",
		MaxOpenConns:   10,
		ConnectTimeout: 5 * time.Second,
		Ledger:         "postgres",
	}, nil
}

// connectWithBackoff retries with 100ms, 200ms, 400ms... between attempts while postgres finishes
// its restart after init.
func connectWithBackoff(ctx context.Context, cfg *config.DatabaseConfig) (*bun.DB, error) {
	var lastErr error
	for i := 0; i < connectAttempts; i++ {
		db, err := ConnectDB(ctx, cfg, zap.NewNop())
		if err == nil {
			return db, nil
		}
		lastErr = err
		time.Sleep(time.Duration(100*(1<<uint(i))) * time.Millisecond)
	}
	return nil, lastErr
}

func exists(t *testing.T, db *bun.DB, query string, args ...any) bool {
	t.Helper()

	var ok bool
	if err := db.NewSelect().ColumnExpr("EXISTS ("+query+")", args...).Scan(context.Background(), &ok); err != nil {
		t.Fatalf("existence query failed: %v", err)
	}
	return ok
}

func tableExists(t *testing.T, db *bun.DB, tableName string) bool {
	t.Helper()
	return exists(t, db,
		"SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = ?", "public", tableName)
}

// AssertTableExists fails the test when tableName is missing from the public schema
func AssertTableExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if !tableExists(t, db, tableName) {
		t.Errorf("table %s does not exist", tableName)
	}
}

// AssertTableNotExists fails the test when tableName is present in the public schema
func AssertTableNotExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if tableExists(t, db, tableName) {
		t.Errorf("table %s should not exist but it does", tableName)
	}
}

// AssertIndexExists fails the test when indexName is missing from the public schema
func AssertIndexExists(t *testing.T, db *bun.DB, indexName string) {
	t.Helper()
	if !exists(t, db, "SELECT 1 FROM pg_indexes WHERE schemaname = ? AND indexname = ?", "public", indexName) {
		t.Errorf("index %s does not exist", indexName)
	}
}

// AssertRowCount fails the test when tableName does not hold exactly expected rows
func AssertRowCount(t *testing.T, db *bun.DB, tableName string, expected int) {
	t.Helper()

	var count int
	err := db.NewSelect().
		TableExpr("?", bun.Ident(tableName)).
		ColumnExpr("COUNT(*)").
		Scan(context.Background(), &count)
	if err != nil {
		t.Fatalf("failed to count rows in table %s: %v", tableName, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", tableName, expected, count)
	}
}
