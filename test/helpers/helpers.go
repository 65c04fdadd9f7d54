// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/renewcart/buyback-be/internal/adapters/db"
	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_buyback",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_buyback",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_buyback",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Reconcile: config.ReconcileConfig{
			Schedule:     "0 3 * * *",
			ReportPrefix: "reconciliation",
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			RequestIDHeader:   "X-Request-ID",
			TenantIDHeader:    "X-Tenant-ID",
			ActorIDHeader:     "X-Actor-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestDevice creates a test device
func CreateTestDevice(tenantID uuid.UUID, overrides ...func(*domain.Device)) *domain.Device {
	device := &domain.Device{
		ID:        uuid.New(),
		TenantID:  tenantID,
		IMEI:      "356938035643809",
		Serial:    "F2LLD0AXHG04",
		Make:      "Apple",
		ModelName: "iPhone 13",
		Storage:   "128GB",
		Color:     "Midnight",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(device)
	}

	return device
}

// CreateTestGrade creates a test grade
func CreateTestGrade(tenantID uuid.UUID, overrides ...func(*domain.Grade)) *domain.Grade {
	grade := &domain.Grade{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      "A",
		Color:     "#2ecc71",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(grade)
	}

	return grade
}

// CreateTestResultFor creates a passing test result for a device
func CreateTestResultFor(device *domain.Device, overrides ...func(*domain.TestResult)) *domain.TestResult {
	result := &domain.TestResult{
		ID:            uuid.New(),
		DeviceID:      device.ID,
		TenantID:      device.TenantID,
		Make:          device.Make,
		ModelName:     device.ModelName,
		Storage:       device.Storage,
		Color:         device.Color,
		BatteryHealth: 92,
		Passed:        true,
		CreatedAt:     time.Now(),
	}

	for _, override := range overrides {
		override(result)
	}

	return result
}

// CreateTestSkuMapping creates a test SKU mapping with a derived canonical key
func CreateTestSkuMapping(tenantID uuid.UUID, sku string, conditions map[string]string) *domain.SkuMapping {
	mapping := &domain.SkuMapping{
		ID:         uuid.New(),
		TenantID:   tenantID,
		SKU:        sku,
		Conditions: conditions,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	mapping.CanonicalKey = domain.BuildCanonicalKey(conditions)
	return mapping
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"device_events",
		"stock_units",
		"stock_movements",
		"stock_levels",
		"sku_mappings",
		"device_grades",
		"grades",
		"test_results",
		"devices",
		"actors",
		"warehouses",
		"tenants",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// SeedTenant inserts a tenant row and returns its id
func SeedTenant(t *testing.T, db *pgxpool.Pool, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO tenants (id, name, created_at) VALUES ($1, $2, NOW())`, id, name)
	require.NoError(t, err, "Failed to seed tenant")

	return id
}

// SeedWarehouse inserts a warehouse row and returns its id
func SeedWarehouse(t *testing.T, db *pgxpool.Pool, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO warehouses (id, name, created_at) VALUES ($1, $2, NOW())`, id, name)
	require.NoError(t, err, "Failed to seed warehouse")

	return id
}

// SeedActor inserts an actor row and returns its id
func SeedActor(t *testing.T, db *pgxpool.Pool, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO actors (id, name, created_at) VALUES ($1, $2, NOW())`, id, name)
	require.NoError(t, err, "Failed to seed actor")

	return id
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
