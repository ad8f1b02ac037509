package database

import (
	"fmt"
	"log"

	"membership-app/config"
	"membership-app/internal/domain/plans"
	"membership-app/internal/domain/registrations"
	"membership-app/internal/domain/students"
	"membership-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&plans.Plan{},
		&students.Student{},
		&registrations.Registration{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	// The in-process uniqueness checks are advisory; these indexes are the
	// source of truth under concurrent writes.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_plans_active_title ON plans (title) WHERE canceled_at IS NULL;`,
	).Error; err != nil {
		log.Fatal("❌ Failed to create active-title index:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
	return db
}
