//go:build integration

package repository_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"timesheet/backend/internal/repository"
	"timesheet/backend/pkg/database"
)

// TestPostgresStore 需要本地 PostgreSQL：
// TEST_DATABASE_DSN="host=localhost port=5433 user=timesheet password=timesheet dbname=timesheet_test sslmode=disable" go test -tags integration ./internal/repository/
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=timesheet password=timesheet dbname=timesheet_test sslmode=disable TimeZone=UTC"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Skipf("无法连接测试数据库: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(sqlDB, zap.NewNop()))

	runStoreContract(t, func(t *testing.T) *repository.Repository {
		// 每个子测试从空表开始
		for _, table := range []string{"time_entries", "users"} {
			require.NoError(t, db.Exec(fmt.Sprintf("TRUNCATE TABLE %s", table)).Error)
		}
		return repository.NewRepository(db)
	})
}
