package db

import (
	"fmt"
	"log"

	"github.com/spikenet-labs/serverdesk/config"
	"github.com/spikenet-labs/serverdesk/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	Migrate()

	log.Println("Database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func Migrate() {
	if err := DB.AutoMigrate(
		&models.Request{},
		&models.Notification{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	createIndexes()
	floorSequence()
}

// createIndexes adds the constraints AutoMigrate cannot express: server names
// must be unique case-insensitively, enforced by the database itself rather
// than a check-then-insert.
func createIndexes() {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_requests_servername_lower ON requests (LOWER(servername))`,
	}
	for _, stmt := range stmts {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", stmt, err)
		}
	}
}

// floorSequence makes sure the id sequence starts above the allocator's
// reserved range, so VM ids never collide with templates and infrastructure.
func floorSequence() {
	stmt := `SELECT setval(pg_get_serial_sequence('requests', 'id'),
		GREATEST(?, (SELECT COALESCE(MAX(id), 0) FROM requests)))`
	if err := DB.Exec(stmt, config.SequenceFloor).Error; err != nil {
		log.Printf("Failed to floor request id sequence: %v", err)
	}
}
