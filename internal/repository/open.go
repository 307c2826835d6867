package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"timesheet/backend/config"
	"timesheet/backend/pkg/database"
)

// Open 按 store.driver 打开存储后端，必要时执行迁移与样例数据导入
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Repository, error) {
	var repo *Repository

	switch cfg.Store.Driver {
	case config.StoreMemory:
		repo = NewMemoryRepository()

	case config.StorePostgres:
		db, err := database.NewDB(&cfg.Database, logger, cfg.Log.Level == "debug")
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		repo = NewRepository(db)

	case config.StoreSQLite:
		db, err := OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		repo = NewSQLiteRepository(db)

	default:
		return nil, fmt.Errorf("未知的存储驱动: %s", cfg.Store.Driver)
	}

	logger.Info("存储后端已就绪", zap.String("driver", cfg.Store.Driver))

	if cfg.Store.Seed {
		if _, err := Seed(ctx, repo, logger); err != nil {
			_ = repo.Close()
			return nil, fmt.Errorf("导入样例数据失败: %w", err)
		}
	}
	return repo, nil
}
