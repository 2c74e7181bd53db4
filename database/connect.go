package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"restaurant_manager/config"
)

// Connect opens the Postgres connection. TranslateError lets unique-index
// violations surface as gorm.ErrDuplicatedKey instead of driver errors.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}
