package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"booking/internal/pkg/config"
	"booking/internal/pkg/postgres"
	"booking/pkg/logger/zap_adapter"
	"booking/pkg/querier"
	"booking/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Справочник базы одинаков для всех тестов репозиториев.
const (
	SubCategoryID   = "0b8a5a8e-51a4-4e36-9b7e-1f0f2c6d7a10"
	WorkerID        = "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f"
	PaymentMethodID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	CustomerID      = "3d6f0a3e-8c1b-4f7e-9a2d-5b4c3a2e1f00"
	OtherCustomerID = "9e8d7c6b-5a49-4382-a1b0-c9d8e7f6a5b4"
	Session         = "Daily Cleaning 2h"

	CatalogSQL = `
		INSERT INTO sub_categories (id, name) VALUES
			('0b8a5a8e-51a4-4e36-9b7e-1f0f2c6d7a10', 'Daily Cleaning');

		INSERT INTO workers (id, name) VALUES
			('6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f', 'Budi');

		INSERT INTO service_sessions (session, sub_category_id, price) VALUES
			('Daily Cleaning 2h', '0b8a5a8e-51a4-4e36-9b7e-1f0f2c6d7a10', 100000.00),
			('Daily Cleaning 4h', '0b8a5a8e-51a4-4e36-9b7e-1f0f2c6d7a10', 180000.00);

		INSERT INTO payment_methods (id, name) VALUES
			('7c9e6679-7425-40de-944b-e07fc1f90ae7', 'OVO');

		INSERT INTO discounts (code, kind, value, active) VALUES
			('PROMO15', 'percentage', 15, TRUE),
			('HEMAT20', 'flat', 20000, TRUE),
			('EXPIRED', 'flat', 5000, FALSE);
	`
)

var (
	poolInstance *pgxpool.Pool
	poolOnce     sync.Once
)

func getPool() *pgxpool.Pool {
	poolOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		zapLogger, err := zap_adapter.NewZapAdapter("booking-integration-test", "warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		pool, err := postgres.NewConnPool(context.Background(), zapLogger, cfg)
		if err != nil {
			panic(err)
		}
		poolInstance = pool
	})

	return poolInstance
}

func GetQuerier() *querier.Querier {
	return querier.New(getPool(), pgxv5.DefaultCtxGetter)
}

func GetTxManager() *tx.Manager {
	return tx.New(getPool())
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

// TeardownDB чистит всё, кроме order_statuses: справочник статусов заполняет миграция.
func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE outbox, order_status_events, orders, discounts, payment_methods,
			service_sessions, workers, sub_categories RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
