package database

import (
	"github.com/jdjewellers/storefront-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectPostgres opens the relational store and migrates the order and
// identity tables.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
		&models.UserRole{},
		&models.Profile{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
