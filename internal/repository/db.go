package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/user/onmovie/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the database connection and runs migrations. The pool is
// configured on the raw database/sql handle, then wrapped by GORM.
func InitDB(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("init orm: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the owned tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.ListEntry{}, &model.Review{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Repositories bundles all data access objects.
type Repositories struct {
	DB     *gorm.DB
	User   *UserRepository
	List   *ListRepository
	Review *ReviewRepository
}

// NewRepositories creates the repository bundle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:     db,
		User:   NewUserRepository(db),
		List:   NewListRepository(db),
		Review: NewReviewRepository(db),
	}
}
