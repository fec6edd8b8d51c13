package model

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"portfolio/internal/config"
	"portfolio/internal/entity"
	"portfolio/internal/model/sql"
)

// 支持的数据库类型
const (
	DBTypeMySQL    = "mysql"
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// InitRepository 按配置打开数据库、迁移表结构并返回仓库实现
func InitRepository(cfg *config.Config) (Repository, error) {
	var dialector gorm.Dialector
	switch cfg.DBType {
	case DBTypeMySQL:
		dialector = mysql.Open(mysqlDSN(cfg))
	case DBTypePostgres:
		dialector = postgres.Open(postgresDSN(cfg))
	case DBTypeSQLite:
		filePath, err := ensureSQLitePath(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		dialector = sqlite.Open(filePath)
	case "":
		return nil, fmt.Errorf("database type is not configured")
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := openGormDB(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBType, err)
	}
	if err := migrateSchema(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return sql.NewGormRepository(db), nil
}

func mysqlDSN(cfg *config.Config) string {
	if cfg.DSNURL != "" {
		return cfg.DSNURL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBAddr, cfg.DBPort, cfg.DBName)
}

func postgresDSN(cfg *config.Config) string {
	if cfg.DSNURL != "" {
		return cfg.DSNURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBAddr, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
}

// ensureSQLitePath 返回数据库文件路径并保证其父目录存在。
// SQLite 连接时会自动创建 .db 文件，但目录必须先就位。
func ensureSQLitePath(filePath string) (string, error) {
	if filePath == "" {
		filePath = "datas/portfolio.db"
	}
	if dir := filepath.Dir(filePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}
	return filePath, nil
}

func openGormDB(dialector gorm.Dialector) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second * 5,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true, // 使用单数表名
		},
	})
	if err != nil {
		return nil, err
	}

	// 连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func migrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.DbUser{},
		&entity.DbArticle{},
		&entity.DbGalleryItem{},
		&entity.DbTestimonial{},
		&entity.DbCertificate{},
		&entity.DbStatistic{},
		&entity.DbContact{},
		&entity.DbSubscriber{},
		&entity.DbService{},
		&entity.DbSlider{},
		&entity.DbComment{},
		&entity.DbVideo{},
		&entity.DbVisit{},
	)
}
