package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig chứa tất cả thông tin cấu hình để kết nối PostgreSQL.
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string

	// Connection pool
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB là wrapper quản lý connection pool và lifecycle của database.
// The pool is built once at startup and handed to repositories
// explicitly through the container — no module-level singleton.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
		Pool:   nil, // Pool sẽ được set khi Connect() được gọi
	}
}

func (db *PostgresDB) buildConnectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s",
		db.Config.Username,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.DBName,
	)
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// connectWithRetry thực hiện retry logic với exponential backoff.
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		log.Printf("[DATABASE] Connection attempt %d/%d", attempt, db.Config.MaxRetries)

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if lastErr == nil {
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
				log.Printf("[DATABASE] Ping failed: %v", err)
			} else {
				log.Printf("[DATABASE] Successfully connected on attempt %d", attempt)
				return pool, nil
			}
		}

		log.Printf("[DATABASE] Attempt %d failed: %v", attempt, lastErr)

		if attempt < db.Config.MaxRetries {
			// delay = base_delay * 2^(attempt-1)
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Printf("[DATABASE] Retrying in %v...", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w",
		db.Config.MaxRetries, lastErr)
}

// Connect establish database connection: configure -> retry -> verify.
func (db *PostgresDB) Connect(ctx context.Context) error {
	log.Println("[DATABASE] Initializing PostgreSQL connection...")

	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool

	log.Println("[DATABASE] PostgreSQL connection established successfully")
	return nil
}

// HealthCheck verify database connectivity, gọi bởi health endpoint.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
