// Package model gorm 表结构
package model

import (
	"gorm.io/gorm"
)

// AutoMigrate migrates the table registered under key.
// AutoMigrate 根据 key 迁移对应的表
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {
	case "Lead":
		return db.AutoMigrate(Lead{})
	case "Intention":
		return db.AutoMigrate(Intention{})
	}
	return nil
}

// AutoMigrateAll 迁移全部表
func AutoMigrateAll(db *gorm.DB) error {
	for _, key := range []string{"Lead", "Intention"} {
		if err := AutoMigrate(db, key); err != nil {
			return err
		}
	}
	return nil
}
